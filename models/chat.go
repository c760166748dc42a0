package models

// Turn roles in a conversation session.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single message in a conversation session.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat response statuses, as surfaced on /api/chat.
const (
	ChatStatusGreeting    = "greeting"
	ChatStatusIncomplete  = "incomplete"
	ChatStatusUnavailable = "unavailable"
	ChatStatusReserved    = "reserved"
	ChatStatusChat        = "chat"
	ChatStatusError       = "error"
)

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Status    string   `json:"status"`
	Reply     string   `json:"reply"`
	BookingID string   `json:"booking_id,omitempty"`
	Booking   *Booking `json:"booking,omitempty"`
	// Alternatives carries the free times for the requested date when the
	// slot was taken, so the frontend can offer them directly.
	Alternatives []string `json:"alternatives,omitempty"`
}
