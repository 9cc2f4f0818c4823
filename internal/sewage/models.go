package sewage

// Report is the normalized storm-overflow section. Count, totals and the
// breakdowns cover every spilling site found; Overflows is capped to the
// twenty worst.
type Report struct {
	Count           int                       `json:"count"`
	Overflows       []Overflow                `json:"overflows"`
	TotalSpills     int                       `json:"totalSpills"`
	TotalHours      float64                   `json:"totalHours"`
	ReceivingWaters []string                  `json:"receivingWaters"`
	ByCompany       map[string]*CompanyTotals `json:"byCompany"`
}

type Overflow struct {
	Company        string  `json:"company"`
	Site           string  `json:"site"`
	ReceivingWater string  `json:"receivingWater,omitempty"`
	Spills         int     `json:"spills"`
	DurationHours  float64 `json:"durationHours"`
}

type CompanyTotals struct {
	Spills        int     `json:"spills"`
	DurationHours float64 `json:"durationHours"`
}
