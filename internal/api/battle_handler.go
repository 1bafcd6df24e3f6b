package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/game"
	"github.com/Dorely/beastbound/internal/service"
)

// BattleHandler exposes the battle service over HTTP. It holds no state
// beyond the service reference.
type BattleHandler struct {
	svc *service.BattleService
}

func NewBattleHandler(svc *service.BattleService) *BattleHandler {
	return &BattleHandler{svc: svc}
}

// StartBattleRequest is the JSON shape of a battle-start call.
// Participants use the tagged-union envelope: exactly one of the
// "creature"/"handler" keys per participant.
type StartBattleRequest struct {
	Kind              game.BattleKind         `json:"kind"`
	Participants      []*game.Participant     `json:"participants"`
	BattlefieldName   string                  `json:"battlefield_name"`
	Weather           game.Weather            `json:"weather"`
	VictoryConditions []game.VictoryCondition `json:"victory_conditions"`
}

// StartBattle opens a new encounter.
func (h *BattleHandler) StartBattle(c *gin.Context) {
	var req StartBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	st, err := h.svc.StartBattle(service.StartBattleRequest{
		Kind:              req.Kind,
		Participants:      req.Participants,
		BattlefieldName:   req.BattlefieldName,
		Weather:           req.Weather,
		VictoryConditions: req.VictoryConditions,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// EndBattleRequest carries the reason the encounter ends.
type EndBattleRequest struct {
	Reason string `json:"reason"`
}

// EndBattle deactivates the current encounter.
func (h *BattleHandler) EndBattle(c *gin.Context) {
	var req EndBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.svc.EndBattle(req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Battle ended"})
}

// GetActiveBattle returns the full current battle state.
func (h *BattleHandler) GetActiveBattle(c *gin.Context) {
	st, err := h.svc.ActiveBattle()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
