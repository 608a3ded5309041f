package webdriver

import (
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the failure layers a command can die in. Callers
// branch on it instead of parsing message text.
type Kind string

const (
	// KindConnection covers transport failures: the driver endpoint was
	// unreachable, refused the connection, or timed out.
	KindConnection Kind = "connection"

	// KindHTTP covers responses whose body is not a protocol envelope,
	// such as a plain 404 page from something that is not a driver.
	KindHTTP Kind = "http"

	// KindProtocol covers well-formed error envelopes from the driver
	// itself, carrying a standard error code.
	KindProtocol Kind = "protocol"
)

// CodeInvalidSessionID is the protocol error code the driver returns once
// it no longer recognizes a session, typically because the process was
// restarted or the browser window was closed.
const CodeInvalidSessionID = "invalid session id"

// Error is the single error type produced by this package. Kind selects
// which of the remaining fields are meaningful.
type Error struct {
	Kind Kind

	// Message is human-readable detail, taken from the driver when the
	// envelope supplies one.
	Message string

	// Code is the protocol error code. Set only for KindProtocol.
	Code string

	// Status is the HTTP status code. Set for KindHTTP and KindProtocol.
	Status int

	// Addr is the endpoint that could not be reached. Set for
	// KindConnection.
	Addr string

	// Body is the raw response body for KindHTTP, truncated for display.
	Body string

	// Err is the underlying transport error for KindConnection.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindConnection:
		if e.Err != nil {
			return fmt.Sprintf("webdriver: connect %s: %v", e.Addr, e.Err)
		}
		return fmt.Sprintf("webdriver: connect %s: %s", e.Addr, e.Message)
	case KindHTTP:
		body := strings.TrimSpace(e.Body)
		if body == "" {
			return fmt.Sprintf("webdriver: endpoint returned HTTP %d", e.Status)
		}
		return fmt.Sprintf("webdriver: endpoint returned HTTP %d: %s", e.Status, body)
	case KindProtocol:
		if e.Code != "" && e.Code != e.Message {
			return fmt.Sprintf("webdriver: %s: %s", e.Code, e.Message)
		}
		return fmt.Sprintf("webdriver: %s", e.Message)
	}
	return "webdriver: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts the typed command error from err's chain.
func AsError(err error) (*Error, bool) {
	var werr *Error
	if errors.As(err, &werr) {
		return werr, true
	}
	return nil, false
}

// IsInvalidSessionID reports whether err is the driver telling us the
// session it was asked about no longer exists. Callers treat this as a
// signal to discard persisted session state.
func IsInvalidSessionID(err error) bool {
	werr, ok := AsError(err)
	return ok && werr.Kind == KindProtocol && werr.Code == CodeInvalidSessionID
}

// IsConnection reports whether err is a transport-level failure, meaning
// nothing was listening or the endpoint could not be reached.
func IsConnection(err error) bool {
	werr, ok := AsError(err)
	return ok && werr.Kind == KindConnection
}
