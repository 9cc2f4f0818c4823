package heritage

// Report is the normalized listed-buildings section. ExceededLimit is true
// when the layer had more matches than it returned, so Count is a floor.
type Report struct {
	Count         int            `json:"count"`
	Buildings     []Building     `json:"buildings"`
	ByGrade       map[string]int `json:"byGrade"`
	ExceededLimit bool           `json:"exceededLimit"`
}

type Building struct {
	Name       string `json:"name"`
	Grade      string `json:"grade"`
	ListEntry  int64  `json:"listEntry"`
	YearListed *int   `json:"yearListed,omitempty"`
}
