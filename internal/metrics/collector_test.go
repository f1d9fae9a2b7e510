package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sky-shooter/internal/component"
	"go-sky-shooter/internal/event"
	"go-sky-shooter/internal/types"
)

func TestCollectorCountsEvents(t *testing.T) {
	c := NewCollector()

	c.OnEvent(event.Event{Type: event.HostileSpawned, Data: event.Spawn{Kind: component.CategoryHostileFast}})
	c.OnEvent(event.Event{Type: event.HostileSpawned, Data: event.Spawn{Kind: component.CategoryHostileBasic}})
	c.OnEvent(event.Event{Type: event.ProjectileFired, Data: event.Shot{Kind: component.CategoryProjectilePlayer}})
	c.OnEvent(event.Event{Type: event.HostileDestroyed, Data: event.Kill{Kind: component.CategoryHostileFast, Points: 15}})
	c.OnEvent(event.Event{Type: event.PlayerHit, Data: event.Hit{Penalty: 5}})
	c.OnEvent(event.Event{Type: event.ProjectileExpired, Data: types.EntityID(4)})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.spawned.WithLabelValues("hostile_fast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.killed.WithLabelValues("hostile_fast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fired.WithLabelValues("projectile_player")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.expired))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.score))

	c.OnEvent(event.Event{Type: event.GameStopped, Data: event.Report{Score: 25, Frames: 300}})
	assert.Equal(t, 25.0, testutil.ToFloat64(c.score))
	assert.Equal(t, 300.0, testutil.ToFloat64(c.frames))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector()
	c.OnEvent(event.Event{Type: event.PlayerHit, Data: event.Hit{Penalty: 5}})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "sky_player_hits_total 1"))
	assert.Equal(t, 1, testutil.CollectAndCount(c.hits))
}
