package driver

import "time"

// Session is the persisted record of a running driver process and the
// browser session negotiated on it. It is everything a later invocation
// needs to reattach: which port to talk to, which session id to scope
// commands under, and which pid to check and eventually stop.
type Session struct {
	Port      int       `json:"port"`
	SessionID string    `json:"sessionId"`
	PID       int       `json:"pid"`
	StartedAt time.Time `json:"startedAt"`
}
