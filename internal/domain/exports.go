package domain

import (
	interfaces "quatex/internal/domain/interfaces"
	types "quatex/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionName  = types.SessionName
	Fingerprint  = types.Fingerprint
	Role         = types.Role
	EventKind    = types.EventKind
	Event        = types.Event
	Session      = types.Session
	Summary      = types.Summary
	Simulation   = types.Simulation
	Turn         = types.Turn
	Transcript   = types.Transcript
	SurveyReport = types.SurveyReport
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionService  = interfaces.SessionService
	SurveyService   = interfaces.SurveyService
	TutorService    = interfaces.TutorService
	Assistant       = interfaces.Assistant
	SessionStore    = interfaces.SessionStore
	TranscriptStore = interfaces.TranscriptStore
)

// Role and event constants re-exported for callers that only import domain.
const (
	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant
	RoleSystem    = types.RoleSystem

	EventGenerated = types.EventGenerated
	EventExchanged = types.EventExchanged
	EventDerived   = types.EventDerived
	EventRejected  = types.EventRejected
)
