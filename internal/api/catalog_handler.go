package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/engine"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/typechart"
)

// CatalogHandler serves the static ruleset catalogs loaded from the
// config file, plus type-chart queries.
type CatalogHandler struct {
	species []game.Species
	moves   []engine.MoveSpec
}

func NewCatalogHandler(species []game.Species, moves []engine.MoveSpec) *CatalogHandler {
	return &CatalogHandler{species: species, moves: moves}
}

// ListSpecies returns the configured species catalog.
func (h *CatalogHandler) ListSpecies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"species": h.species})
}

// ListMoves returns the configured move catalog.
func (h *CatalogHandler) ListMoves(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"moves": h.moves})
}

// TypeChart returns the derived effectiveness queries for one attack
// type.
func (h *CatalogHandler) TypeChart(c *gin.Context) {
	t := c.Param("type")
	if !typechart.Known(t) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: "unknown type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"type":               t,
		"super_effective":    typechart.SuperEffectiveAgainst(t),
		"not_very_effective": typechart.NotVeryEffectiveAgainst(t),
		"no_effect":          typechart.NoEffectAgainst(t),
	})
}

// ListEncounters returns the most recently finished encounters.
func (h *BattleHandler) ListEncounters(c *gin.Context) {
	stats, err := h.svc.RecentEncounters(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEncounter})
		return
	}
	c.JSON(http.StatusOK, gin.H{"encounters": stats})
}
