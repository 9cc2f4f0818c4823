package profile

import (
	"time"

	"area-profile/internal/bathing"
	"area-profile/internal/climate"
	"area-profile/internal/crime"
	"area-profile/internal/flood"
	"area-profile/internal/heritage"
	"area-profile/internal/nature"
	"area-profile/internal/property"
	"area-profile/internal/sewage"
	"area-profile/internal/species"
	"area-profile/internal/trees"
	"area-profile/internal/types"
)

// Report is the composite area profile. Every section except Location is a
// pointer: nil means that source failed or timed out, and one section being
// nil says nothing about any other.
type Report struct {
	Location    types.Location `json:"location"`
	GeneratedAt time.Time      `json:"generatedAt"`

	Crime           *crime.Summary        `json:"crime"`
	FloodStations   *flood.StationsReport `json:"floodStations"`
	FloodWarnings   *flood.WarningsReport `json:"floodWarnings"`
	HousePrices     *property.Report      `json:"housePrices"`
	BathingWater    *bathing.Report       `json:"bathingWater"`
	Species         *species.Report       `json:"species"`
	ListedBuildings *heritage.Report      `json:"listedBuildings"`
	AncientTrees    *trees.Report         `json:"ancientTrees"`
	NaturalEngland  *nature.Report        `json:"naturalEngland"`
	SewageOverflows *sewage.Report        `json:"sewageOverflows"`
	ClimateOutlook  *climate.Report       `json:"climateOutlook"`
}
