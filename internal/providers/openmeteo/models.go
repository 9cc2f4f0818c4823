package openmeteo

// ClimateAPIResponse is the daily climate series for one window. Values are
// nullable: the model omits days it cannot produce.
type ClimateAPIResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     struct {
		Time             []string   `json:"time"`
		Temperature2MMax []*float64 `json:"temperature_2m_max"`
		Temperature2MMin []*float64 `json:"temperature_2m_min"`
		PrecipitationSum []*float64 `json:"precipitation_sum"`
	} `json:"daily"`
}
