package domain

// State identifies where a chat currently sits in the decode conversation.
type State int

const (
	// StateAwaitingVIN means the bot is waiting for the user to send a VIN.
	StateAwaitingVIN State = iota
	// StateAwaitingAgain means a decode attempt finished and the bot asked
	// whether the user wants to check another VIN.
	StateAwaitingAgain
	// StateEnded is terminal: the conversation is over until /start.
	StateEnded
)

// String returns a readable state name for logging.
func (s State) String() string {
	switch s {
	case StateAwaitingVIN:
		return "awaiting_vin"
	case StateAwaitingAgain:
		return "awaiting_again"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session holds per-chat conversational state. Sessions are transient:
// created on /start, dropped once the conversation ends. Nothing here
// survives a process restart.
type Session struct {
	ChatID int64
	State  State
}

// Ended reports whether the session reached its terminal state.
func (s *Session) Ended() bool {
	return s.State == StateEnded
}
