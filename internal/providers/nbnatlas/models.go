package nbnatlas

type OccurrenceSearchResponse struct {
	TotalRecords int           `json:"totalRecords"`
	FacetResults []FacetResult `json:"facetResults"`
}

type FacetResult struct {
	FieldName   string       `json:"fieldName"`
	FieldResult []FacetCount `json:"fieldResult"`
}

type FacetCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
