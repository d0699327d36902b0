package domain

// UserState represents a chat's current interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingSource      UserState = "waiting_source"
	StateWaitingTranslation UserState = "waiting_translation"
	StateWaitingDelete      UserState = "waiting_delete"
)

// StateData holds temporary data for a chat's current state
type StateData struct {
	State         UserState
	PendingSource string
}
