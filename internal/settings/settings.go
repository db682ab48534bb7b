// Package settings holds user preferences and persists them as a single
// JSON document.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/mindfool/mindfool/internal/practice"
)

// StorageKey is the key under which settings are persisted.
const StorageKey = "mindfool-settings"

// Settings are the user's preferences.
type Settings struct {
	SkipPostFeedback bool          `json:"skipPostFeedback"`
	HapticFeedback   bool          `json:"hapticFeedback"`
	SoundEffects     bool          `json:"soundEffects"`
	DefaultMode      practice.Mode `json:"defaultMode"`

	// OnboardingComplete is set once the first-run introduction is dismissed.
	OnboardingComplete bool `json:"onboardingComplete"`
}

// Defaults returns the settings used before anything has been saved.
func Defaults() Settings {
	return Settings{
		SkipPostFeedback: false,
		HapticFeedback:   true,
		SoundEffects:     true,
		DefaultMode:      practice.DefaultMode,
	}
}

// Keys lists the names accepted by Set, in display order.
var Keys = []string{"skip-post-feedback", "haptic-feedback", "sound-effects", "default-mode"}

// KV is the document store settings are persisted in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Service loads and saves settings. It is safe for concurrent use.
type Service struct {
	mu     sync.RWMutex
	kv     KV
	logger hclog.Logger
	cur    Settings
}

// NewService creates a Service holding defaults. Call Load to read persisted
// values. A nil kv keeps settings in memory only.
func NewService(kv KV, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{
		kv:     kv,
		logger: logger.Named("settings"),
		cur:    Defaults(),
	}
}

// Load reads persisted settings. Missing or unreadable data leaves the
// defaults in place; failures are logged, never returned.
func (s *Service) Load(ctx context.Context) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv == nil {
		return s.cur
	}
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error("failed to load settings", "error", err)
		return s.cur
	}
	if !ok {
		return s.cur
	}

	loaded := Defaults()
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.logger.Error("failed to decode settings", "error", err)
		return s.cur
	}
	if !loaded.DefaultMode.Valid() {
		s.logger.Warn("ignoring unknown default mode", "mode", loaded.DefaultMode)
		loaded.DefaultMode = practice.DefaultMode
	}
	s.cur = loaded
	return s.cur
}

// Get returns the current settings.
func (s *Service) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Update applies fn to a copy of the current settings and persists the
// result. The in-memory value changes even if persisting fails.
func (s *Service) Update(ctx context.Context, fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	fn(&next)
	s.cur = next

	if s.kv == nil {
		return nil
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, raw); err != nil {
		s.logger.Error("failed to save settings", "error", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Service) SetSkipPostFeedback(ctx context.Context, v bool) error {
	return s.Update(ctx, func(st *Settings) { st.SkipPostFeedback = v })
}

func (s *Service) SetHapticFeedback(ctx context.Context, v bool) error {
	return s.Update(ctx, func(st *Settings) { st.HapticFeedback = v })
}

func (s *Service) SetSoundEffects(ctx context.Context, v bool) error {
	return s.Update(ctx, func(st *Settings) { st.SoundEffects = v })
}

func (s *Service) SetOnboardingComplete(ctx context.Context, v bool) error {
	return s.Update(ctx, func(st *Settings) { st.OnboardingComplete = v })
}

func (s *Service) SetDefaultMode(ctx context.Context, m practice.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("unknown practice mode %q", m)
	}
	return s.Update(ctx, func(st *Settings) { st.DefaultMode = m })
}

// Set assigns a setting by its command-line name.
func (s *Service) Set(ctx context.Context, key, value string) error {
	switch strings.ToLower(key) {
	case "skip-post-feedback":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return s.SetSkipPostFeedback(ctx, b)
	case "haptic-feedback":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return s.SetHapticFeedback(ctx, b)
	case "sound-effects":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return s.SetSoundEffects(ctx, b)
	case "default-mode":
		m, err := practice.ParseMode(value)
		if err != nil {
			return err
		}
		return s.SetDefaultMode(ctx, m)
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
	}
}

// Value returns the display value of a setting by its command-line name.
func (st Settings) Value(key string) (string, bool) {
	switch key {
	case "skip-post-feedback":
		return strconv.FormatBool(st.SkipPostFeedback), true
	case "haptic-feedback":
		return strconv.FormatBool(st.HapticFeedback), true
	case "sound-effects":
		return strconv.FormatBool(st.SoundEffects), true
	case "default-mode":
		return string(st.DefaultMode), true
	}
	return "", false
}
