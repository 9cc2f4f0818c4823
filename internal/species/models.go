package species

// Report is the normalized wildlife section: total occurrence records within
// the search radius, counts by taxonomic group and the most recorded species.
type Report struct {
	TotalRecords int         `json:"totalRecords"`
	Groups       []NameCount `json:"groups"`
	TopSpecies   []NameCount `json:"topSpecies"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
