package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dorely/beastbound/internal/constants"
	"github.com/Dorely/beastbound/internal/logging"
	"github.com/Dorely/beastbound/internal/service"
)

// respondServiceError translates service sentinel errors onto HTTP
// statuses: validation to 400, not-found to 404, state conflicts to
// 409, everything else to 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoActiveBattle):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNoActiveBattle})
	case errors.Is(err, service.ErrBattleAlreadyActive):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyActive})
	case errors.Is(err, service.ErrActorDefeated):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrParticipantNotFound})
	case errors.Is(err, service.ErrUnknownMove):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrInvalidBattleKind),
		errors.Is(err, service.ErrNoParticipants),
		errors.Is(err, service.ErrDuplicateParticipant),
		errors.Is(err, service.ErrInvalidParticipant),
		errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidStatusEffect),
		errors.Is(err, service.ErrNoVigorPool):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		logging.Error("Unhandled service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPersistBattle})
	}
}
