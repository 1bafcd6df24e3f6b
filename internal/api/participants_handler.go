package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/game"
)

// AddParticipant inserts a battler into the running encounter. The
// roster change triggers a full initiative recompute.
func (h *BattleHandler) AddParticipant(c *gin.Context) {
	var p game.Participant
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	st, err := h.svc.AddParticipant(&p)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: "Participant added",
		"turn_order":             st.TurnOrder,
	})
}

// RemoveParticipant drops a battler from the running encounter.
func (h *BattleHandler) RemoveParticipant(c *gin.Context) {
	id := c.Param("id")
	st, err := h.svc.RemoveParticipant(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMessage: "Participant removed",
		"turn_order":             st.TurnOrder,
	})
}

// VigorRequest forces a participant's vigor to a new value.
type VigorRequest struct {
	NewVigor int    `json:"new_vigor"`
	Reason   string `json:"reason"`
}

// UpdateVigor sets a participant's vigor, clamped into [0, max].
func (h *BattleHandler) UpdateVigor(c *gin.Context) {
	var req VigorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	update, err := h.svc.UpdateVigor(c.Param("id"), req.NewVigor, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

// ApplyStatusEffect adds or replaces a named status effect.
func (h *BattleHandler) ApplyStatusEffect(c *gin.Context) {
	var effect game.StatusEffect
	if err := c.ShouldBindJSON(&effect); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.svc.ApplyStatusEffect(c.Param("id"), effect); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Status effect applied"})
}

// RemoveStatusEffect removes a named status effect; removing an absent
// effect reports removed=false rather than an error.
func (h *BattleHandler) RemoveStatusEffect(c *gin.Context) {
	removed, err := h.svc.RemoveStatusEffect(c.Param("id"), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
