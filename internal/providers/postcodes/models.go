package postcodes

type LookupAPIResponse struct {
	Status int `json:"status"`
	Result struct {
		Postcode      string  `json:"postcode"`
		Latitude      float64 `json:"latitude"`
		Longitude     float64 `json:"longitude"`
		AdminDistrict string  `json:"admin_district"`
		Parish        string  `json:"parish"`
		Lsoa          string  `json:"lsoa"`
		Region        string  `json:"region"`
		Country       string  `json:"country"`
		AdminWard     string  `json:"admin_ward"`
	} `json:"result"`
}
