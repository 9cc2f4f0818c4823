package trees

import "encoding/json"

// Report is the normalized ancient-trees section. Count covers everything
// found; Trees is capped to the twenty nearest.
type Report struct {
	Count      int            `json:"count"`
	Trees      []Tree         `json:"trees"`
	ByCategory map[string]int `json:"byCategory"`
	BySpecies  []SpeciesCount `json:"bySpecies"`
}

type Tree struct {
	Species  string   `json:"species"`
	Category string   `json:"category"`
	Distance *float64 `json:"distance,omitempty"`
}

// SpeciesCount serializes as a two-element ["species", count] pair.
type SpeciesCount struct {
	Species string
	Count   int
}

func (sc SpeciesCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{sc.Species, sc.Count})
}

func (sc *SpeciesCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) > 0 {
		if err := json.Unmarshal(pair[0], &sc.Species); err != nil {
			return err
		}
	}
	if len(pair) > 1 {
		if err := json.Unmarshal(pair[1], &sc.Count); err != nil {
			return err
		}
	}
	return nil
}
