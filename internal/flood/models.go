package flood

// StationsReport is the normalized flood-stations section. Count is the true
// number of stations found; Stations is capped to the ten nearest in
// upstream order.
type StationsReport struct {
	Count      int       `json:"count"`
	Stations   []Station `json:"stations"`
	Rivers     []string  `json:"rivers"`
	Catchments []string  `json:"catchments"`
}

type Station struct {
	Label     string  `json:"label"`
	River     string  `json:"river,omitempty"`
	Town      string  `json:"town,omitempty"`
	Catchment string  `json:"catchment,omitempty"`
	Status    string  `json:"status"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Distance  float64 `json:"distance"`
}

// WarningsReport is the normalized flood-warnings section. Count is the true
// number of active warnings; Warnings is capped to five.
type WarningsReport struct {
	Count    int       `json:"count"`
	Warnings []Warning `json:"warnings"`
}

type Warning struct {
	Description string `json:"description"`
	Severity    int    `json:"severity"`
	Message     string `json:"message"`
	Area        string `json:"area"`
}
