package driver

import "errors"

// ErrNoSession means no session record is persisted. Commands that need a
// session treat this as a terminal precondition failure rather than
// something to retry.
var ErrNoSession = errors.New("no active session")

// ErrStartupTimeout means a freshly launched driver process never
// answered its status probe inside the startup window. The process has
// already been killed by the time this error is returned.
var ErrStartupTimeout = errors.New("driver did not become ready in time")
