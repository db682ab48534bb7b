package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfool/mindfool/internal/practice"
)

type memKV struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

func TestDefaults(t *testing.T) {
	s := NewService(nil, nil)
	got := s.Load(context.Background())

	assert.False(t, got.SkipPostFeedback)
	assert.True(t, got.HapticFeedback)
	assert.True(t, got.SoundEffects)
	assert.Equal(t, practice.ModeBalloonBreathing, got.DefaultMode)
	assert.False(t, got.OnboardingComplete)
}

func TestPersistAndReload(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	s := NewService(kv, nil)
	require.NoError(t, s.SetSkipPostFeedback(ctx, true))
	require.NoError(t, s.SetSoundEffects(ctx, false))
	require.NoError(t, s.SetDefaultMode(ctx, practice.ModeBoxBreathing))
	assert.Contains(t, kv.data, StorageKey)

	reloaded := NewService(kv, nil).Load(ctx)
	assert.True(t, reloaded.SkipPostFeedback)
	assert.True(t, reloaded.HapticFeedback)
	assert.False(t, reloaded.SoundEffects)
	assert.Equal(t, practice.ModeBoxBreathing, reloaded.DefaultMode)
}

func TestLoadKeepsDefaultsOnBadData(t *testing.T) {
	ctx := context.Background()

	t.Run("store error", func(t *testing.T) {
		kv := newMemKV()
		kv.getErr = errors.New("disk gone")
		got := NewService(kv, nil).Load(ctx)
		assert.Equal(t, Defaults(), got)
	})

	t.Run("corrupt json", func(t *testing.T) {
		kv := newMemKV()
		kv.data[StorageKey] = []byte("{not json")
		got := NewService(kv, nil).Load(ctx)
		assert.Equal(t, Defaults(), got)
	})

	t.Run("partial document", func(t *testing.T) {
		kv := newMemKV()
		kv.data[StorageKey] = []byte(`{"skipPostFeedback":true}`)
		got := NewService(kv, nil).Load(ctx)
		assert.True(t, got.SkipPostFeedback)
		assert.True(t, got.HapticFeedback)
		assert.Equal(t, practice.DefaultMode, got.DefaultMode)
	})

	t.Run("unknown mode", func(t *testing.T) {
		kv := newMemKV()
		kv.data[StorageKey] = []byte(`{"defaultMode":"juggling"}`)
		got := NewService(kv, nil).Load(ctx)
		assert.Equal(t, practice.DefaultMode, got.DefaultMode)
	})
}

func TestUpdateKeepsMemoryValueWhenSaveFails(t *testing.T) {
	kv := newMemKV()
	kv.putErr = errors.New("read-only")
	s := NewService(kv, nil)

	err := s.SetHapticFeedback(context.Background(), false)
	require.Error(t, err)
	assert.False(t, s.Get().HapticFeedback)
}

func TestSetByKey(t *testing.T) {
	ctx := context.Background()
	s := NewService(newMemKV(), nil)

	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"skip-post-feedback", "true", false},
		{"haptic-feedback", "false", false},
		{"sound-effects", "0", false},
		{"default-mode", "478-breathing", false},
		{"default-mode", "juggling", true},
		{"sound-effects", "loud", true},
		{"volume", "11", true},
	}
	for _, tt := range tests {
		err := s.Set(ctx, tt.key, tt.value)
		if tt.wantErr {
			assert.Error(t, err, "%s=%s", tt.key, tt.value)
		} else {
			assert.NoError(t, err, "%s=%s", tt.key, tt.value)
		}
	}

	got := s.Get()
	assert.True(t, got.SkipPostFeedback)
	assert.False(t, got.HapticFeedback)
	assert.False(t, got.SoundEffects)
	assert.Equal(t, practice.Mode478Breathing, got.DefaultMode)

	for _, k := range Keys {
		_, ok := got.Value(k)
		assert.True(t, ok, k)
	}
	_, ok := got.Value("volume")
	assert.False(t, ok)
}

func TestOnboardingCompletePersists(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()

	require.NoError(t, NewService(kv, nil).SetOnboardingComplete(ctx, true))
	assert.Contains(t, string(kv.data[StorageKey]), `"onboardingComplete":true`)

	got := NewService(kv, nil).Load(ctx)
	assert.True(t, got.OnboardingComplete)
	assert.Equal(t, practice.DefaultMode, got.DefaultMode)

	_, ok := got.Value("onboarding-complete")
	assert.False(t, ok, "onboarding flag is not user-settable")
}
