package bathing

// Report is the normalized bathing-water section: the five nearest
// designated sites, closest first.
type Report struct {
	Sites []Site `json:"sites"`
}

type Site struct {
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	District       string  `json:"district,omitempty"`
	Classification string  `json:"classification"`
	Distance       float64 `json:"distance"`
}
