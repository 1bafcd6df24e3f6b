package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/engine"
)

// ActionRequest is the JSON shape of an action submission. For attacks
// the move may carry full metadata or just a name to resolve against
// the configured move catalog.
type ActionRequest struct {
	ActorID   string          `json:"actor_id"`
	Kind      string          `json:"kind"`
	TargetIDs []string        `json:"target_ids"`
	Move      engine.MoveSpec `json:"move"`
}

// SubmitAction resolves one action against the battle state.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	results, err := h.svc.ResolveAction(req.ActorID, engine.ActionKind(req.Kind), req.TargetIDs, req.Move)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// AdvancePhase moves the battle one step through the phase cycle.
func (h *BattleHandler) AdvancePhase(c *gin.Context) {
	status, err := h.svc.AdvancePhase()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// EvaluateVictory reports the any-met victory evaluation.
func (h *BattleHandler) EvaluateVictory(c *gin.Context) {
	report, err := h.svc.EvaluateVictory()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetLog returns trailing battle-log entries. Query params: count
// (trailing entries, default all) and actor (filter by actor id).
func (h *BattleHandler) GetLog(c *gin.Context) {
	count := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		count = n
	}
	entries, err := h.svc.GetLog(count, c.Query("actor"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
