package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"zipcode-jp/internal/models"
	"zipcode-jp/internal/service"

	"github.com/gin-gonic/gin"
)

// PrefixHandler handles zip code prefix requests
type PrefixHandler struct {
	service PrefixService
}

// PrefixService interface for dependency injection
type PrefixService interface {
	LookupPrefix(context.Context, string) ([]models.ZipCode, error)
	LookupPrefixMinimized(context.Context, string) ([]models.Minimized, error)
}

// NewPrefixHandler creates a new prefix handler
func NewPrefixHandler(svc PrefixService) *PrefixHandler {
	return &PrefixHandler{service: svc}
}

// Prefix handles GET /prefixes/:prefix requests
//
//	@Summary		List the records of a 3-digit zip code prefix
//	@Description	Returns models.ZipCode objects by default. With min=true every item is a
//	@Description	models.Minimized array of [zip_code, prefecture, city, town] strings instead.
//	@Tags			prefixes
//	@Produce		json
//	@Param			prefix	path		string	true	"first 3 digits of the zip code"
//	@Param			min		query		bool	false	"return [zip_code, prefecture, city, town] arrays"
//	@Success		200		{array}		models.ZipCode	"full records; with min=true, models.Minimized arrays"
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/prefixes/{prefix} [get]
func (h *PrefixHandler) Prefix(c *gin.Context) {
	prefix := c.Param("prefix")

	minimized := false
	if v := c.Query("min"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'min' parameter"})
			return
		}
		minimized = b
	}

	var (
		body  any
		count int
		err   error
	)
	if minimized {
		var records []models.Minimized
		records, err = h.service.LookupPrefixMinimized(c.Request.Context(), prefix)
		body, count = records, len(records)
	} else {
		var records []models.ZipCode
		records, err = h.service.LookupPrefix(c.Request.Context(), prefix)
		body, count = records, len(records)
	}

	if err != nil {
		if errors.Is(err, service.ErrInvalidPrefix) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prefix must be 3 digits"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "prefix not found"})
		return
	}

	c.JSON(http.StatusOK, body)
}
