package bathingwater

type SitesAPIResponse struct {
	Result struct {
		Items []Site `json:"items"`
	} `json:"result"`
}

// Site is one bathing-water directory entry. Lat/Long are pointers because
// some inland or historic entries carry no coordinates at all.
type Site struct {
	Name                       string                `json:"name"`
	Lat                        *float64              `json:"lat"`
	Long                       *float64              `json:"long"`
	District                   *District             `json:"district"`
	LatestComplianceAssessment *ComplianceAssessment `json:"latestComplianceAssessment"`
}

type District struct {
	Name string `json:"name"`
}

type ComplianceAssessment struct {
	ComplianceClassification ComplianceClassification `json:"complianceClassification"`
}

type ComplianceClassification struct {
	Name string `json:"name"`
}
