package floodmonitoring

type StationsAPIResponse struct {
	Items []Station `json:"items"`
}

// Station is a monitoring station record. Status is a vocabulary URI such as
// ".../statusActive" or ".../statusClosed".
type Station struct {
	Label         string  `json:"label"`
	RiverName     string  `json:"riverName"`
	Town          string  `json:"town"`
	CatchmentName string  `json:"catchmentName"`
	Status        string  `json:"status"`
	Lat           float64 `json:"lat"`
	Long          float64 `json:"long"`
}

type FloodsAPIResponse struct {
	Items []FloodWarning `json:"items"`
}

type FloodWarning struct {
	Description   string `json:"description"`
	SeverityLevel int    `json:"severityLevel"`
	Message       string `json:"message"`
	EaAreaName    string `json:"eaAreaName"`
}
