package session

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// IDSource hands out unique session ids.
type IDSource interface {
	NewID() string
}

// IDFunc adapts a function to IDSource.
type IDFunc func() string

func (f IDFunc) NewID() string { return f() }

// UUIDs returns time-ordered UUIDv7 ids, falling back to a random UUID if the
// v7 generator fails.
var UUIDs IDSource = IDFunc(func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
})

// TimestampIDs returns ids made of the clock's Unix milliseconds. Sessions are
// user-paced, so collisions do not happen in practice.
func TimestampIDs(c Clock) IDSource {
	return IDFunc(func() string {
		return strconv.FormatInt(c.Now().UnixMilli(), 10)
	})
}
