package sound

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/logging"
)

type fakeOutput struct {
	played []beep.Streamer
}

func (f *fakeOutput) Play(s beep.Streamer) {
	f.played = append(f.played, s)
}

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	s, err := Tone(SampleRate, Cue{Freq: 440, Duration: 10 * time.Millisecond, Volume: 1})
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(10*time.Millisecond), drain(s))

	_, err = Tone(SampleRate, Cue{Freq: 30000, Duration: time.Millisecond, Volume: 1})
	assert.Error(t, err)
}

func TestEffectsReactToEvents(t *testing.T) {
	out := &fakeOutput{}
	fx := NewEffects(out, SampleRate, nil)

	fx.OnEvent(event.Event{Type: event.ProjectileFired, Data: event.Shot{Kind: component.CategoryProjectilePlayer}})
	fx.OnEvent(event.Event{Type: event.ProjectileFired, Data: event.Shot{Kind: component.CategoryProjectileHostile}})
	fx.OnEvent(event.Event{Type: event.HostileDestroyed, Data: event.Kill{Points: 10}})
	fx.OnEvent(event.Event{Type: event.PlayerHit, Data: event.Hit{Penalty: 5}})
	fx.OnEvent(event.Event{Type: event.GameStopped, Data: event.Report{}})

	require.Len(t, out.played, 3)
	assert.Equal(t, SampleRate.N(HitCue.Duration), drain(out.played[2]))
}

func TestEffectsLogUnplayableCue(t *testing.T) {
	var buf bytes.Buffer
	out := &fakeOutput{}
	// При 1 кГц выше 500 Гц синус не построить: выстрел (880 Гц) не звучит, попадание (110 Гц) звучит.
	fx := NewEffects(out, beep.SampleRate(1000), logging.New(&buf, slog.LevelDebug))

	fx.OnEvent(event.Event{Type: event.ProjectileFired, Data: event.Shot{Kind: component.CategoryProjectilePlayer}})
	fx.OnEvent(event.Event{Type: event.PlayerHit, Data: event.Hit{Penalty: 5}})

	assert.Len(t, out.played, 1)
	assert.Contains(t, buf.String(), "sound cue skipped")
	assert.Contains(t, buf.String(), "freq=880")
}
