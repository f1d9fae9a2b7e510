// internal/metrics/collector.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-sky-shooter/internal/event"
)

const namespace = "sky"

// Collector переводит игровые события в Prometheus-метрики.
// Регистр свой, а не глобальный: в тестах можно держать несколько игр сразу.
type Collector struct {
	registry *prometheus.Registry

	spawned *prometheus.CounterVec
	fired   *prometheus.CounterVec
	killed  *prometheus.CounterVec
	hits    prometheus.Counter
	expired prometheus.Counter
	escaped prometheus.Counter
	score   prometheus.Gauge
	frames  prometheus.Gauge
	stopped prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hostiles_spawned_total",
			Help:      "Появившиеся враги по виду.",
		}, []string{"kind"}),
		fired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_fired_total",
			Help:      "Выпущенные снаряды по владельцу.",
		}, []string{"kind"}),
		killed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hostiles_destroyed_total",
			Help:      "Сбитые враги по виду.",
		}, []string{"kind"}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_hits_total",
			Help:      "Попадания вражеских снарядов в игрока.",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_expired_total",
			Help:      "Снаряды, покинувшие арену.",
		}),
		escaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hostiles_escaped_total",
			Help:      "Враги, удалённые ниже арены.",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Текущий счёт игрока.",
		}),
		frames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frames",
			Help:      "Кадров в последней завершённой игре.",
		}),
		stopped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_stopped_total",
			Help:      "Завершённые игры.",
		}),
	}
	c.registry.MustRegister(c.spawned, c.fired, c.killed, c.hits, c.expired, c.escaped, c.score, c.frames, c.stopped)
	return c
}

// OnEvent реализует event.Listener.
func (c *Collector) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Spawn:
		c.spawned.WithLabelValues(data.Kind.String()).Inc()
	case event.Shot:
		c.fired.WithLabelValues(data.Kind.String()).Inc()
	case event.Kill:
		c.killed.WithLabelValues(data.Kind.String()).Inc()
		c.score.Add(float64(data.Points))
	case event.Hit:
		c.hits.Inc()
		c.score.Sub(float64(data.Penalty))
	case event.Report:
		c.score.Set(float64(data.Score))
		c.frames.Set(float64(data.Frames))
		c.stopped.Inc()
	default:
		switch e.Type {
		case event.ProjectileExpired:
			c.expired.Inc()
		case event.HostileEscaped:
			c.escaped.Inc()
		}
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler отдаёт метрики в формате Prometheus для /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
