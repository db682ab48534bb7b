// Package services bundles the collaborators that terminal screens share.
package services

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/mindfool/mindfool/internal/history"
	"github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/settings"
	"github.com/mindfool/mindfool/internal/streak"
)

// Services is passed by value to every screen constructor.
type Services struct {
	Lifecycle *session.Lifecycle
	History   history.Repo
	Streaks   *streak.Engine
	Settings  *settings.Service
	Logger    hclog.Logger
}

// Snapshot is the streak and last-session data shown on the home screen and
// in the header.
type Snapshot struct {
	Info           streak.Info
	PracticedToday bool
	Last           *session.Record
}

// Load reads history and derives a Snapshot. Read failures are logged and
// produce an empty Snapshot.
func (s Services) Load(ctx context.Context) Snapshot {
	if s.History == nil {
		return Snapshot{}
	}
	records, err := s.History.Sessions(ctx)
	if err != nil {
		s.logger().Error("failed to load history", "error", err)
		return Snapshot{}
	}
	snap := Snapshot{
		Info:           s.Streaks.Calculate(records),
		PracticedToday: s.Streaks.PracticedToday(records),
	}
	if len(records) > 0 {
		last := records[0]
		snap.Last = &last
	}
	return snap
}

func (s Services) logger() hclog.Logger {
	if s.Logger == nil {
		return hclog.NewNullLogger()
	}
	return s.Logger
}
