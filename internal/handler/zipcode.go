package handler

import (
	"context"
	"errors"
	"net/http"

	"zipcode-jp/internal/models"
	"zipcode-jp/internal/service"

	"github.com/gin-gonic/gin"
)

// ZipCodeHandler handles zip code lookup requests
type ZipCodeHandler struct {
	service ZipCodeService
}

// ZipCodeService interface for dependency injection
type ZipCodeService interface {
	Lookup(context.Context, string) ([]models.ZipCode, error)
}

// NewZipCodeHandler creates a new zip code handler
func NewZipCodeHandler(svc ZipCodeService) *ZipCodeHandler {
	return &ZipCodeHandler{service: svc}
}

// Lookup handles GET /zipcodes/:code requests
//
//	@Summary	Look up a zip code
//	@Tags		zipcodes
//	@Produce	json
//	@Param		code	path		string	true	"7-digit zip code, hyphen optional"
//	@Success	200		{array}		models.ZipCode
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/zipcodes/{code} [get]
func (h *ZipCodeHandler) Lookup(c *gin.Context) {
	code := c.Param("code")

	zipCodes, err := h.service.Lookup(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidZipCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "zip code must be 7 digits"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(zipCodes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "zip code not found"})
		return
	}

	c.JSON(http.StatusOK, zipCodes)
}
