package main

import (
	"errors"
	"net/http"

	"area-profile/internal/location"

	"github.com/gin-gonic/gin"
)

// handleGetProfile godoc
// @Summary Get an area profile for a postcode
// @Description Resolve a UK postcode and assemble a composite profile from open data sources. Sections whose upstream source failed are null; the profile itself is still returned.
// @Tags profile
// @Produce json
// @Param postcode path string true "UK postcode, case and spacing insensitive" example(SW1A 1AA)
// @Success 200 {object} profile.Report
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile/{postcode} [get]
func (app *App) handleGetProfile(c *gin.Context) {
	postcode := c.Param("postcode")

	report, err := app.profileService.GetProfile(c.Request.Context(), postcode)
	if err != nil {
		if errors.Is(err, location.ErrPostcodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "postcode not found"})
			return
		}

		app.logger.Error("failed to get profile", "postcode", postcode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, report)
}
