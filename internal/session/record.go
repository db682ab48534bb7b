package session

import (
	"encoding/json"
	"time"

	"github.com/mindfool/mindfool/internal/practice"
)

// Record is a finished practice session. Records are built only by
// Lifecycle.End and are never modified afterwards.
type Record struct {
	ID        string
	Mode      practice.Mode
	PreScore  int
	PostScore int

	// Delta is PostScore - PreScore; positive means calmer.
	Delta int

	// Duration is the time between Start and End.
	Duration time.Duration

	// CyclesCompleted is kept for compatibility with exported history and is
	// always zero.
	CyclesCompleted int

	Notes string

	// Timestamp is the moment the session ended.
	Timestamp time.Time
}

// recordJSON is the wire form shared by JSON and YAML exports. Durations are
// whole milliseconds.
type recordJSON struct {
	ID              string        `json:"id" yaml:"id"`
	Mode            practice.Mode `json:"mode" yaml:"mode"`
	PreScore        int           `json:"preScore" yaml:"preScore"`
	PostScore       int           `json:"postScore" yaml:"postScore"`
	Delta           int           `json:"delta" yaml:"delta"`
	Duration        int64         `json:"duration" yaml:"duration"`
	CyclesCompleted int           `json:"cyclesCompleted" yaml:"cyclesCompleted"`
	Notes           string        `json:"notes,omitempty" yaml:"notes,omitempty"`
	Timestamp       time.Time     `json:"timestamp" yaml:"timestamp"`
}

func (r Record) wire() recordJSON {
	return recordJSON{
		ID:              r.ID,
		Mode:            r.Mode,
		PreScore:        r.PreScore,
		PostScore:       r.PostScore,
		Delta:           r.Delta,
		Duration:        r.Duration.Milliseconds(),
		CyclesCompleted: r.CyclesCompleted,
		Notes:           r.Notes,
		Timestamp:       r.Timestamp,
	}
}

func (w recordJSON) record() Record {
	return Record{
		ID:              w.ID,
		Mode:            w.Mode,
		PreScore:        w.PreScore,
		PostScore:       w.PostScore,
		Delta:           w.Delta,
		Duration:        time.Duration(w.Duration) * time.Millisecond,
		CyclesCompleted: w.CyclesCompleted,
		Notes:           w.Notes,
		Timestamp:       w.Timestamp,
	}
}

// MarshalJSON encodes the record with millisecond durations.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = w.record()
	return nil
}

// MarshalYAML encodes the record for gopkg.in/yaml.v3 using the same field
// names as the JSON form.
func (r Record) MarshalYAML() (any, error) {
	return r.wire(), nil
}
