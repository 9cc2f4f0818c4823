package police

type Crime struct {
	Category string `json:"category"`
	Month    string `json:"month"`
}
