package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TamasNo1/safari-cli/pkg/retry"
	"github.com/TamasNo1/safari-cli/pkg/webdriver"
)

// Startup defaults, overridable through Options.
const (
	DefaultStartupTimeout = 30 * time.Second
	DefaultPollInterval   = 250 * time.Millisecond
)

// Options configures a Manager. Zero or nil fields fall back to working
// defaults; only Store and Process are required.
type Options struct {
	Store   *Store
	Process ProcessControl

	// NewClient builds the protocol client for a port. Tests substitute
	// one pointed at a local stub server.
	NewClient func(port int) *webdriver.Client

	Logger         logrus.FieldLogger
	StartupTimeout time.Duration
	PollInterval   time.Duration
}

// Manager owns the driver process and the persisted session record. It
// is the only component that spawns or stops the process and the only
// writer of session state. Managers hold no session state in memory;
// every operation re-reads the store.
type Manager struct {
	store          *Store
	process        ProcessControl
	newClient      func(port int) *webdriver.Client
	log            logrus.FieldLogger
	startupTimeout time.Duration
	pollInterval   time.Duration
}

// NewManager builds a Manager from opts.
func NewManager(opts Options) *Manager {
	m := &Manager{
		store:          opts.Store,
		process:        opts.Process,
		newClient:      opts.NewClient,
		log:            opts.Logger,
		startupTimeout: opts.StartupTimeout,
		pollInterval:   opts.PollInterval,
	}
	if m.newClient == nil {
		m.newClient = func(port int) *webdriver.Client {
			return webdriver.NewForPort(port)
		}
	}
	if m.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		m.log = quiet
	}
	if m.startupTimeout <= 0 {
		m.startupTimeout = DefaultStartupTimeout
	}
	if m.pollInterval <= 0 {
		m.pollInterval = DefaultPollInterval
	}
	return m
}

// StartOrReuse returns the active session, launching a driver process
// and negotiating a fresh browser session when none is usable. Calling
// it with a session already active is a no-op that reports the existing
// one; reused tells the two apart.
func (m *Manager) StartOrReuse(ctx context.Context, port int) (sess *Session, reused bool, err error) {
	existing, err := m.store.Load()
	switch {
	case err == nil:
		if m.process.Alive(existing.PID) {
			m.log.WithFields(logrus.Fields{
				"session": existing.SessionID,
				"pid":     existing.PID,
				"port":    existing.Port,
			}).Debug("reusing active session")
			return existing, true, nil
		}
		m.log.WithField("pid", existing.PID).Info("recorded driver process is gone, clearing stale session")
		if cerr := m.store.Clear(); cerr != nil {
			return nil, false, fmt.Errorf("clear stale session record: %w", cerr)
		}
	case errors.Is(err, ErrNoSession):
		// Nothing persisted; start from scratch.
	default:
		// An unreadable record is not silently discarded here: it may
		// still name a live process, and stop is the recovery path.
		return nil, false, err
	}

	sess, err = m.start(ctx, port)
	return sess, false, err
}

// start launches the driver, waits for readiness, negotiates a session,
// and persists the record. Any failure past the launch kills the process
// again so nothing untracked is left running.
func (m *Manager) start(ctx context.Context, port int) (*Session, error) {
	pid, err := m.process.Launch(port)
	if err != nil {
		return nil, err
	}
	m.log.WithFields(logrus.Fields{"pid": pid, "port": port}).Debug("driver process launched")

	client := m.newClient(port)
	probe := func(ctx context.Context) error {
		st, perr := client.Status(ctx)
		if perr != nil {
			return perr
		}
		if !st.Ready {
			return fmt.Errorf("driver not ready: %s", st.Message)
		}
		return nil
	}
	if err := retry.Poll(ctx, m.pollInterval, m.startupTimeout, probe); err != nil {
		_ = m.process.Kill(pid)
		if errors.Is(err, retry.ErrDeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrStartupTimeout, err)
		}
		return nil, err
	}

	wd, err := client.NewSession(ctx)
	if err != nil {
		_ = m.process.Kill(pid)
		return nil, fmt.Errorf("negotiate browser session: %w", err)
	}

	sess := &Session{
		Port:      port,
		SessionID: wd.ID(),
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
	if err := m.store.Save(sess); err != nil {
		_ = wd.Delete(ctx)
		_ = m.process.Kill(pid)
		return nil, fmt.Errorf("persist session record: %w", err)
	}
	m.log.WithFields(logrus.Fields{
		"session": sess.SessionID,
		"pid":     pid,
		"port":    port,
	}).Info("browser session started")
	return sess, nil
}

// RequireActive loads the persisted session for a command that needs
// one. It does not probe liveness; a dead or forgotten session surfaces
// through the next protocol call instead, keeping the common path to a
// single file read.
func (m *Manager) RequireActive() (*Session, error) {
	return m.store.Load()
}

// Health is the result of an explicit status probe.
type Health struct {
	Session       *Session
	ProcessAlive  bool
	DriverReady   bool
	DriverMessage string
}

// Status loads the persisted session and upgrades to explicit process
// and driver probes. Probe failures are reported inside Health rather
// than as errors; only a missing or unreadable record fails.
func (m *Manager) Status(ctx context.Context) (*Health, error) {
	sess, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	h := &Health{Session: sess}
	h.ProcessAlive = m.process.Alive(sess.PID)
	if !h.ProcessAlive {
		h.DriverMessage = "driver process is not running"
		return h, nil
	}
	st, err := m.newClient(sess.Port).Status(ctx)
	if err != nil {
		h.DriverMessage = err.Error()
		return h, nil
	}
	// A driver with one session active reports ready=false; reachable is
	// what matters here.
	h.DriverReady = true
	h.DriverMessage = st.Message
	return h, nil
}

// Teardown ends the browser session, stops the driver process, and
// clears the persisted record. The protocol delete and the termination
// are best-effort: a driver that already died must not keep the state
// file pinned. Clearing the record always happens last, unconditionally.
func (m *Manager) Teardown(ctx context.Context) (*Session, error) {
	sess, err := m.store.Load()
	if errors.Is(err, ErrNoSession) {
		return nil, err
	}
	if err != nil {
		m.log.WithError(err).Warn("session record unreadable, discarding it; a driver process may still be running")
		return nil, m.store.Clear()
	}

	if derr := m.newClient(sess.Port).Session(sess.SessionID).Delete(ctx); derr != nil {
		m.log.WithError(derr).Debug("session delete failed during teardown")
	}
	if m.process.Alive(sess.PID) {
		if terr := m.process.Terminate(sess.PID); terr != nil {
			m.log.WithError(terr).Debug("driver process termination failed")
		}
	}
	if cerr := m.store.Clear(); cerr != nil {
		return sess, cerr
	}
	m.log.WithFields(logrus.Fields{"session": sess.SessionID, "pid": sess.PID}).Info("session stopped")
	return sess, nil
}

// Invalidate discards the persisted record without touching the driver.
// The top-level handler calls this when a command comes back with an
// invalid-session-id protocol error.
func (m *Manager) Invalidate() error {
	return m.store.Clear()
}
