// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60

	PlayerWidth        = 50
	PlayerHeight       = 50
	PlayerSpeed        = 5.0
	PlayerStartX       = 400
	PlayerStartY       = 550
	PlayerFireCooldown = 10

	HostileWidth     = 30
	HostileHeight    = 30
	HostileCap       = 5
	SpawnOneIn       = 50 // Шанс появления врага за кадр: 1/50
	FastOneIn        = 4  // Доля быстрых среди появившихся: 1/4
	BasicSpeedMin    = 3
	BasicSpeedMax    = 5
	FastSpeed        = 7.0
	ReloadMin        = 30
	ReloadMax        = 90
	SpawnYMin        = -100
	SpawnYMax        = -30
	ProjectileW      = 10
	ProjectileH      = 5
	PlayerShotSpeed  = 5.0
	HostileShotSpeed = 3.0

	BasicKillScore = 10
	FastKillScore  = 15
	HitPenalty     = 5

	DefaultDebugAddr = "localhost:6060"
)

var (
	BackgroundColor        = color.RGBA{10, 10, 25, 255}
	PlayerColor            = color.RGBA{80, 200, 255, 255}
	BasicHostileColor      = color.RGBA{220, 60, 60, 255}
	FastHostileColor       = color.RGBA{255, 160, 40, 255}
	PlayerProjectileColor  = color.RGBA{255, 255, 120, 255}
	HostileProjectileColor = color.RGBA{255, 80, 200, 255}
	TextLightColor         = color.RGBA{240, 240, 240, 255}
	StarColor              = color.RGBA{200, 200, 255, 255}
)

// Config корневая структура конфигурации игры.
type Config struct {
	Seed        int64            `yaml:"seed"`
	Arena       ArenaConfig      `yaml:"arena"`
	Player      PlayerConfig     `yaml:"player"`
	Hostiles    HostileConfig    `yaml:"hostiles"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Scoring     ScoringConfig    `yaml:"scoring"`
	Debug       DebugConfig      `yaml:"debug"`
	Audio       AudioConfig      `yaml:"audio"`
}

type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	TPS    int     `yaml:"tps"`
}

type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	FireCooldown int     `yaml:"fire_cooldown"`
}

type HostileConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Cap           int     `yaml:"cap"`
	SpawnOneIn    int     `yaml:"spawn_one_in"`
	FastOneIn     int     `yaml:"fast_one_in"`
	BasicSpeedMin int     `yaml:"basic_speed_min"`
	BasicSpeedMax int     `yaml:"basic_speed_max"`
	FastSpeed     float64 `yaml:"fast_speed"`
	ReloadMin     int     `yaml:"reload_min"`
	ReloadMax     int     `yaml:"reload_max"`
	SpawnYMin     int     `yaml:"spawn_y_min"`
	SpawnYMax     int     `yaml:"spawn_y_max"`
	// Удалять врагов, целиком ушедших ниже арены. По умолчанию выключено:
	// такие враги продолжают занимать место в лимите популяции.
	DespawnBelowArena bool `yaml:"despawn_below_arena"`
}

type ProjectileConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	HostileSpeed float64 `yaml:"hostile_speed"`
}

type ScoringConfig struct {
	BasicKill  int `yaml:"basic_kill"`
	FastKill   int `yaml:"fast_kill"`
	HitPenalty int `yaml:"hit_penalty"`
}

type DebugConfig struct {
	Addr    string `yaml:"addr"` // pprof и /metrics; пусто — не запускать
	Metrics bool   `yaml:"metrics"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{Width: ScreenWidth, Height: ScreenHeight, TPS: TPS},
		Player: PlayerConfig{
			Width:        PlayerWidth,
			Height:       PlayerHeight,
			Speed:        PlayerSpeed,
			StartX:       PlayerStartX,
			StartY:       PlayerStartY,
			FireCooldown: PlayerFireCooldown,
		},
		Hostiles: HostileConfig{
			Width:         HostileWidth,
			Height:        HostileHeight,
			Cap:           HostileCap,
			SpawnOneIn:    SpawnOneIn,
			FastOneIn:     FastOneIn,
			BasicSpeedMin: BasicSpeedMin,
			BasicSpeedMax: BasicSpeedMax,
			FastSpeed:     FastSpeed,
			ReloadMin:     ReloadMin,
			ReloadMax:     ReloadMax,
			SpawnYMin:     SpawnYMin,
			SpawnYMax:     SpawnYMax,
		},
		Projectiles: ProjectileConfig{
			Width:        ProjectileW,
			Height:       ProjectileH,
			PlayerSpeed:  PlayerShotSpeed,
			HostileSpeed: HostileShotSpeed,
		},
		Scoring: ScoringConfig{
			BasicKill:  BasicKillScore,
			FastKill:   FastKillScore,
			HitPenalty: HitPenalty,
		},
		Debug: DebugConfig{Addr: DefaultDebugAddr, Metrics: true},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается взять путь из ENV SKY_CONFIG; если и его нет — возвращает Default().
// ENV SKY_SEED переопределяет сид из файла.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("SKY_CONFIG")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if envSeed := os.Getenv("SKY_SEED"); envSeed != "" {
		seed, err := strconv.ParseInt(envSeed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SKY_SEED %q: %w", envSeed, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid оборачивает все ошибки валидации.
var ErrInvalid = errors.New("invalid config")

// Validate проверяет, что из конфигурации можно построить корректную арену.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	ordered := func(name string, min, max int) {
		if min > max {
			errs = append(errs, fmt.Errorf("%s range is inverted: [%d, %d]", name, min, max))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("hostiles.width", c.Hostiles.Width)
	positive("hostiles.height", c.Hostiles.Height)
	positive("projectiles.width", c.Projectiles.Width)
	positive("projectiles.height", c.Projectiles.Height)
	positive("hostiles.spawn_one_in", float64(c.Hostiles.SpawnOneIn))
	positive("hostiles.fast_one_in", float64(c.Hostiles.FastOneIn))
	ordered("hostiles.basic_speed", c.Hostiles.BasicSpeedMin, c.Hostiles.BasicSpeedMax)
	ordered("hostiles.reload", c.Hostiles.ReloadMin, c.Hostiles.ReloadMax)
	ordered("hostiles.spawn_y", c.Hostiles.SpawnYMin, c.Hostiles.SpawnYMax)

	if c.Arena.TPS < 0 {
		errs = append(errs, fmt.Errorf("arena.tps must not be negative, got %d", c.Arena.TPS))
	}
	if c.Hostiles.Cap < 0 {
		errs = append(errs, fmt.Errorf("hostiles.cap must not be negative, got %d", c.Hostiles.Cap))
	}
	if c.Hostiles.ReloadMin < 0 || c.Player.FireCooldown < 0 {
		errs = append(errs, errors.New("cooldowns must not be negative"))
	}
	if c.Player.Width > c.Arena.Width || c.Hostiles.Width > c.Arena.Width {
		errs = append(errs, errors.New("entities must be narrower than the arena"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
