package nature

// Report is the normalized nature-designations section. OpenAccess is true
// when any Countryside and Rights of Way access land lies within range.
type Report struct {
	SSSIs       []ProtectedSite `json:"sssis"`
	NNRs        []ProtectedSite `json:"nnrs"`
	GreenSpaces []GreenSpace    `json:"greenSpaces"`
	OpenAccess  bool            `json:"openAccess"`
}

type ProtectedSite struct {
	Name     string  `json:"name"`
	AreaHa   float64 `json:"areaHa"`
	Distance float64 `json:"distance"`
}

type GreenSpace struct {
	Name     string  `json:"name"`
	Status   string  `json:"status,omitempty"`
	AreaHa   float64 `json:"areaHa"`
	Distance float64 `json:"distance"`
}
