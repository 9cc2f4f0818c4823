package landregistry

// SPARQLResultsResponse is the standard SPARQL-results JSON envelope,
// narrowed to the variables selected by the price-paid query.
type SPARQLResultsResponse struct {
	Results SPARQLResults `json:"results"`
}

type SPARQLResults struct {
	Bindings []PricePaidBinding `json:"bindings"`
}

type PricePaidBinding struct {
	Amount       *Term `json:"amount"`
	Date         *Term `json:"date"`
	PropertyType *Term `json:"propertyType"`
	Paon         *Term `json:"paon"`
	Street       *Term `json:"street"`
}

type Term struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
