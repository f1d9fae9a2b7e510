package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/input"
)

type frameSink struct {
	frames []uint64
	failAt uint64
}

func (s *frameSink) Render(snap Snapshot) error {
	s.frames = append(s.frames, snap.Frame)
	if s.failAt != 0 && snap.Frame == s.failAt {
		return errors.New("screen gone")
	}
	return nil
}

func TestRunnerFrameLimit(t *testing.T) {
	g, rec := newTestGame(t, 11)
	sink := &frameSink{}
	r := &Runner{Game: g, Input: input.Idle{}, Output: sink, MaxFrames: 50}

	score, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, g.Score(), score)
	assert.Equal(t, uint64(50), g.Frame())
	assert.Len(t, sink.frames, 50)
	assert.Equal(t, component.Stopped, g.Status())
	assert.Equal(t, 1, rec.count(event.GameStopped))
}

func TestRunnerStopsWhenScriptEnds(t *testing.T) {
	g, rec := newTestGame(t, 12)
	script := input.NewScript(input.Repeat(input.Intent{MoveRight: true}, 30)...)
	r := &Runner{Game: g, Input: script}

	_, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(30), g.Frame())
	assert.Equal(t, 550.0, g.Snapshot().Player.Y)
	assert.Equal(t, 550.0, g.Snapshot().Player.X)
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, ReasonInput, last.Data.(event.Report).Reason)
}

func TestRunnerTerminateIntent(t *testing.T) {
	g, _ := newTestGame(t, 13)
	frames := append(input.Repeat(input.Intent{}, 5), input.Intent{Terminate: true}, input.Intent{})
	r := &Runner{Game: g, Input: input.NewScript(frames...)}

	_, err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(5), g.Frame())
	assert.Equal(t, component.Stopped, g.Status())
}

func TestRunnerContextCanceled(t *testing.T) {
	g, rec := newTestGame(t, 14)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Game: g, TPS: 1}

	_, err := r.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(0), g.Frame())
	assert.Equal(t, ReasonCanceled, rec.events[len(rec.events)-1].Data.(event.Report).Reason)
}

func TestRunnerRenderError(t *testing.T) {
	g, _ := newTestGame(t, 15)
	r := &Runner{Game: g, Output: &frameSink{failAt: 3}}

	_, err := r.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "render frame 3")
	assert.Equal(t, component.Stopped, g.Status())
}
