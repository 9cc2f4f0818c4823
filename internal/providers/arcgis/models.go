package arcgis

import "encoding/json"

type QueryResponse struct {
	Features              []Feature   `json:"features"`
	ExceededTransferLimit bool        `json:"exceededTransferLimit"`
	Count                 int         `json:"count"`
	Error                 *LayerError `json:"error"`
}

// Feature keeps attributes raw so each dataset adapter can unmarshal them
// into its own typed struct.
type Feature struct {
	Attributes json.RawMessage `json:"attributes"`
	Geometry   *Geometry       `json:"geometry"`
}

// Geometry is either a point (X/Y) or a polygon (Rings). Rings are
// [ring][vertex][lng lat].
type Geometry struct {
	X     float64       `json:"x"`
	Y     float64       `json:"y"`
	Rings [][][]float64 `json:"rings"`
}

type LayerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
