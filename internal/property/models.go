package property

// Report is the normalized house-prices section: recent sales newest first
// plus the average over valid (positive) amounts.
type Report struct {
	Sales        []Sale `json:"sales"`
	AveragePrice int    `json:"averagePrice"`
	Count        int    `json:"count"`
}

type Sale struct {
	Amount  int    `json:"amount"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Address string `json:"address"`
}
