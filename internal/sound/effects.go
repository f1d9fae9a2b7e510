// internal/sound/effects.go
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/logging"
)

const SampleRate = beep.SampleRate(44100)

// Output проигрывает готовый поток. Реализация для колонок — device.Speaker.
type Output interface {
	Play(s beep.Streamer)
}

// Cue — короткий звуковой сигнал.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // 1 — без изменений
}

var (
	ShotCue = Cue{Freq: 880, Duration: 40 * time.Millisecond, Volume: 0.3}
	KillCue = Cue{Freq: 440, Duration: 90 * time.Millisecond, Volume: 0.6}
	HitCue  = Cue{Freq: 110, Duration: 150 * time.Millisecond, Volume: 0.8}
)

// Effects озвучивает игровые события.
type Effects struct {
	out  Output
	rate beep.SampleRate
	log  *logging.Logger
}

// NewEffects — log может быть nil.
func NewEffects(out Output, rate beep.SampleRate, log *logging.Logger) *Effects {
	if log == nil {
		log = logging.Discard()
	}
	return &Effects{out: out, rate: rate, log: log}
}

func (e *Effects) OnEvent(ev event.Event) {
	var cue Cue
	switch data := ev.Data.(type) {
	case event.Shot:
		if data.Kind != component.CategoryProjectilePlayer {
			return
		}
		cue = ShotCue
	case event.Kill:
		cue = KillCue
	case event.Hit:
		cue = HitCue
	default:
		return
	}
	s, err := Tone(e.rate, cue)
	if err != nil {
		e.log.Warn("sound cue skipped", "event", ev.Type, "freq", cue.Freq, "error", err)
		return
	}
	e.out.Play(s)
}

// Tone — синус частоты cue.Freq длиной cue.Duration.
func Tone(rate beep.SampleRate, cue Cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, cue.Freq)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Take(rate.N(cue.Duration), sine), cue.Volume), nil
}

// math.Log2(0) = -Inf, поэтому нулевую громкость делаем тишиной.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
