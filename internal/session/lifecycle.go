package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	"github.com/mindfool/mindfool/internal/mood"
	"github.com/mindfool/mindfool/internal/practice"
)

// MaxNotesLength is the longest reflection kept on a record, in characters.
const MaxNotesLength = 200

var (
	// ErrNoActiveSession is returned by End when no session was started.
	ErrNoActiveSession = errors.New("no active session")

	// ErrSessionCompleted is returned by End when the active session has
	// already been ended and not yet reset.
	ErrSessionCompleted = errors.New("session already completed")
)

// State is the lifecycle phase of the in-progress session.
type State int

const (
	StateIdle      State = iota // nothing in progress
	StateActive                 // started, waiting for End
	StateCompleted              // ended, record emitted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Recorder receives finished records. It is the write side of the history
// collaborator.
type Recorder interface {
	AddSession(ctx context.Context, rec Record) error
}

// Config wires a Lifecycle to its collaborators. Nil fields get defaults.
type Config struct {
	Clock    Clock
	IDs      IDSource
	Recorder Recorder

	// Logger receives misuse and collaborator-failure diagnostics.
	Logger hclog.Logger

	// DefaultMode is used by Start when no mode is given. It should match the
	// default reported by the settings service.
	DefaultMode practice.Mode
}

// Lifecycle tracks the single in-progress practice session and turns it into
// a Record when it ends.
//
// A Lifecycle is owned by one goroutine (the UI event loop) and is not safe
// for concurrent use.
type Lifecycle struct {
	clock       Clock
	ids         IDSource
	recorder    Recorder
	logger      hclog.Logger
	defaultMode practice.Mode

	state     State
	sessionID string
	preScore  int
	postScore int
	startTime time.Time
	endTime   time.Time
	mode      practice.Mode
}

// NewLifecycle creates an idle Lifecycle.
func NewLifecycle(cfg Config) *Lifecycle {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.IDs == nil {
		cfg.IDs = UUIDs
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if !cfg.DefaultMode.Valid() {
		cfg.DefaultMode = practice.DefaultMode
	}
	return &Lifecycle{
		clock:       cfg.Clock,
		ids:         cfg.IDs,
		recorder:    cfg.Recorder,
		logger:      cfg.Logger.Named("session"),
		defaultMode: cfg.DefaultMode,
		mode:        cfg.DefaultMode,
	}
}

// Start begins a new session with the given pre-session score. An empty mode
// selects the default mode. Any unfinished or completed session is discarded
// without warning.
func (l *Lifecycle) Start(preScore int, mode practice.Mode) error {
	if err := mood.Validate(preScore); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	if mode == "" {
		mode = l.defaultMode
	}
	if !mode.Valid() {
		return fmt.Errorf("start session: unknown practice %q", mode)
	}

	l.sessionID = l.ids.NewID()
	l.preScore = preScore
	l.postScore = 0
	l.startTime = l.clock.Now()
	l.endTime = time.Time{}
	l.mode = mode
	l.state = StateActive
	return nil
}

// End finishes the active session, builds its Record and hands it to the
// Recorder exactly once. Calling End with no active session, or a second time
// before Reset, logs a warning and returns an error without creating a record.
// Recorder failures are logged and do not fail End.
func (l *Lifecycle) End(ctx context.Context, postScore int, notes string) (*Record, error) {
	switch l.state {
	case StateIdle:
		l.logger.Warn("cannot end session: session not started")
		return nil, ErrNoActiveSession
	case StateCompleted:
		l.logger.Warn("cannot end session: already completed", "session_id", l.sessionID)
		return nil, ErrSessionCompleted
	}
	if err := mood.Validate(postScore); err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}

	l.endTime = l.clock.Now()
	l.postScore = postScore
	l.state = StateCompleted

	duration := l.endTime.Sub(l.startTime)
	if duration < 0 {
		duration = 0
	}

	rec := Record{
		ID:              l.sessionID,
		Mode:            l.mode,
		PreScore:        l.preScore,
		PostScore:       postScore,
		Delta:           mood.Delta(l.preScore, postScore),
		Duration:        duration,
		CyclesCompleted: 0,
		Notes:           trimNotes(notes),
		Timestamp:       l.endTime,
	}

	if l.recorder != nil {
		if err := l.recorder.AddSession(ctx, rec); err != nil {
			l.logger.Error("failed to save session to history", "session_id", rec.ID, "error", err)
		}
	}
	return &rec, nil
}

// Reset discards the in-progress session. History is not touched.
func (l *Lifecycle) Reset() {
	l.sessionID = ""
	l.preScore = 0
	l.postScore = 0
	l.startTime = time.Time{}
	l.endTime = time.Time{}
	l.mode = l.defaultMode
	l.state = StateIdle
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State { return l.state }

// SessionID returns the id of the current session, or "" when idle.
func (l *Lifecycle) SessionID() string { return l.sessionID }

// Mode returns the practice of the current session, or the default when idle.
func (l *Lifecycle) Mode() practice.Mode { return l.mode }

// PreScore returns the pre-session score and whether one is set.
func (l *Lifecycle) PreScore() (int, bool) {
	if l.state == StateIdle {
		return 0, false
	}
	return l.preScore, true
}

// PostScore returns the post-session score and whether the session has ended.
func (l *Lifecycle) PostScore() (int, bool) {
	if l.state != StateCompleted {
		return 0, false
	}
	return l.postScore, true
}

// StartTime returns when the session started; zero when idle.
func (l *Lifecycle) StartTime() time.Time { return l.startTime }

// EndTime returns when the session ended; zero until End succeeds.
func (l *Lifecycle) EndTime() time.Time { return l.endTime }

// Elapsed returns the running time of an active session, or the final
// duration of a completed one.
func (l *Lifecycle) Elapsed() time.Duration {
	var d time.Duration
	switch l.state {
	case StateActive:
		d = l.clock.Now().Sub(l.startTime)
	case StateCompleted:
		d = l.endTime.Sub(l.startTime)
	}
	if d < 0 {
		return 0
	}
	return d
}

func trimNotes(notes string) string {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) <= MaxNotesLength {
		return notes
	}
	runes := []rune(notes)
	return strings.TrimSpace(string(runes[:MaxNotesLength]))
}
