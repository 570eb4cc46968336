package sse

// Event is one message on a game's notification stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// sessionRef picks the session id out of any game event payload
type sessionRef struct {
	SessionID string `json:"session_id"`
}
