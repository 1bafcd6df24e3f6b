package constants

// Centralized constants for headers, routes and shared messages.
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Routes used by the backend router.
const (
	RouteAPIPrefix = "/api"

	RouteVersion    = "/version"
	RouteSpecies    = "/species"
	RouteMoves      = "/moves"
	RouteTypeChart  = "/typechart/:type"
	RouteEncounters = "/encounters"

	RouteBattleStart   = "/battle/start"
	RouteBattleEnd     = "/battle/end"
	RouteBattleActive  = "/battle"
	RouteParticipants  = "/battle/participants"
	RouteParticipant   = "/battle/participants/:id"
	RouteVigor         = "/battle/participants/:id/vigor"
	RouteStatusEffects = "/battle/participants/:id/status-effects"
	RouteStatusEffect  = "/battle/participants/:id/status-effects/:name"
	RouteAction        = "/battle/actions"
	RoutePhaseAdvance  = "/battle/phase/advance"
	RouteVictory       = "/battle/victory"
	RouteLog           = "/battle/log"
)

// Common JSON response keys.
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers.
const (
	ErrInvalidRequest       = "Invalid request"
	ErrAuthRequired         = "Authentication required"
	ErrInvalidToken         = "Invalid token"
	ErrNoActiveBattle       = "No active battle"
	ErrBattleAlreadyActive  = "A battle is already active"
	ErrParticipantNotFound  = "Participant not found"
	ErrFailedPersistBattle  = "Failed to persist battle"
	ErrFailedFetchEncounter = "Failed to fetch encounters"
)

// Logging field names.
const (
	LogFieldBattleID    = "battle_id"
	LogFieldActorID     = "actor_id"
	LogFieldTurn        = "turn"
	LogFieldPhase       = "phase"
	LogFieldAddr        = "addr"
	LogFieldReason      = "reason"
	LogFieldParticipant = "participant_id"
)
