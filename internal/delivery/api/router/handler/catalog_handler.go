package handler

import (
	"net/http"

	"kinconnect/internal/delivery/api/response"
	"kinconnect/internal/domain/entity"
	"kinconnect/internal/domain/garment"

	"github.com/labstack/echo/v4"
)

// ColorCatalog lists the palette and which colors each garment group stocks.
type ColorCatalog struct {
	Colors []garment.Color     `json:"colors"`
	Groups map[string][]string `json:"groups"`
	Sizes  []garment.Size      `json:"sizes"`
}

// CatalogHandler serves the static style and garment catalogs.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListStyles(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Styles())
}

func (h *CatalogHandler) ListColors(c echo.Context) error {
	groups := make(map[string][]string, len(garment.Groups))
	for _, g := range garment.Groups {
		groups[string(g)] = garment.ColorsFor(g)
	}

	return response.Success(c, http.StatusOK, ColorCatalog{
		Colors: garment.Palette(),
		Groups: groups,
		Sizes:  garment.Sizes,
	})
}
