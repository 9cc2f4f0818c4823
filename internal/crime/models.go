package crime

// Summary is the normalized crime section of an area profile.
type Summary struct {
	Total      int             `json:"total"`
	ByCategory []CategoryCount `json:"byCategory"`
	Month      string          `json:"month"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
