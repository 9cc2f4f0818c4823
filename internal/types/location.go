package types

// Location is the canonical resolved form of a UK postcode. It is built once
// per request by the location service and never mutated afterwards.
type Location struct {
	Postcode      string  `json:"postcode"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	AdminDistrict string  `json:"admin_district"`
	Parish        string  `json:"parish,omitempty"`
	Lsoa          string  `json:"lsoa,omitempty"`
	Region        string  `json:"region,omitempty"`
	Country       string  `json:"country"`
	AdminWard     string  `json:"admin_ward,omitempty"`
}
