// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/paulmach/orb"

	"go-mining-sim/internal/field"
	"go-mining-sim/internal/types"
)

const (
	ScreenWidth   = 1200
	ScreenHeight  = 800
	WindowTitle   = "Multi-Agent System Simulation"
	FPS           = 30
	MinerSpeed    = 5.0 // пикселей за тик
	ResourceCount = 100
	SpawnMargin   = 50
	MinYield      = 1
	MaxYield      = 5

	DepotRadius    = 20.0
	MinerRadius    = 10.0
	ResourceRadius = 10.0

	MineFlashDuration  = 12.0 // тиков
	MineFlashMaxRadius = 24.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	PauseButtonX     = 70
	PauseButtonSize  = 8.0
	ProgressOffsetX  = 150
	ProgressY        = 50
	HUDFontSize      = 14
	HUDLineHeight    = 18
	HUDOffsetX       = 12
	HUDOffsetY       = 22

	ToneSampleRate = 44100
	MineToneHz     = 660.0
	DeliverToneHz  = 880.0
	ToneMillis     = 60
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	DepotColor      = color.RGBA{255, 0, 0, 255}
	MinerColor      = color.RGBA{0, 0, 255, 255}
	ResourceColor   = color.RGBA{0, 255, 0, 255}
	FlashColor      = color.RGBA{255, 165, 0, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	RunningColor    = color.RGBA{50, 205, 50, 255}
	PausedColor     = color.RGBA{194, 178, 128, 255}
	FinishedColor   = color.RGBA{128, 128, 128, 255}
	IndicatorStroke = color.RGBA{20, 20, 30, 255}
	StrokeWidth     = 2.0
)

// MinerSpec описывает одного майнера в ростере.
type MinerSpec struct {
	Strategy types.Strategy
	Color    color.RGBA
	Start    *orb.Point // nil: старт на депо
}

// Config собирает все параметры запуска. Строится только в коде.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Title        string
	FPS          int
	MinerSpeed   float64
	Miners       []MinerSpec

	ResourceCount int
	SpawnMargin   int
	// Resources задаёт раскладку явно; nil означает случайное рассеивание.
	Resources []orb.Point
	// Depot по умолчанию в центре экрана.
	Depot *orb.Point

	MinYield    int
	MaxYield    int
	Reservation field.ReservationPolicy
	Seed        int64 // 0: от текущего времени
}

// DefaultRoster is the original four-miner line-up.
func DefaultRoster() []MinerSpec {
	strategies := []types.Strategy{
		types.StrategyRandom,
		types.StrategyClosest,
		types.StrategyRandom,
		types.StrategyClosest,
	}
	roster := make([]MinerSpec, len(strategies))
	for i, s := range strategies {
		roster[i] = MinerSpec{Strategy: s, Color: MinerColor}
	}
	return roster
}

// DefaultConfig returns the configuration the binaries run with.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   ScreenWidth,
		ScreenHeight:  ScreenHeight,
		Title:         WindowTitle,
		FPS:           FPS,
		MinerSpeed:    MinerSpeed,
		Miners:        DefaultRoster(),
		ResourceCount: ResourceCount,
		SpawnMargin:   SpawnMargin,
		MinYield:      MinYield,
		MaxYield:      MaxYield,
		Reservation:   field.ReserveAll,
	}
}

// DepotPoint возвращает позицию депо.
func (c Config) DepotPoint() orb.Point {
	if c.Depot != nil {
		return *c.Depot
	}
	return orb.Point{float64(c.ScreenWidth / 2), float64(c.ScreenHeight / 2)}
}

// MinerCount is the roster size.
func (c Config) MinerCount() int { return len(c.Miners) }

var errConfig = errors.New("invalid config")

// Validate проверяет конфигурацию до старта симуляции.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d", errConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", errConfig, c.FPS)
	}
	if c.MinerSpeed <= 0 {
		return fmt.Errorf("%w: miner speed %v", errConfig, c.MinerSpeed)
	}
	if len(c.Miners) == 0 {
		return fmt.Errorf("%w: empty miner roster", errConfig)
	}
	for i, m := range c.Miners {
		if _, err := types.ParseStrategy(string(m.Strategy)); err != nil {
			return fmt.Errorf("miner %d: %w", i, err)
		}
	}
	if c.MinYield < 1 || c.MaxYield < c.MinYield {
		return fmt.Errorf("%w: yield range [%d, %d]", errConfig, c.MinYield, c.MaxYield)
	}
	if !c.Reservation.Valid() {
		return fmt.Errorf("%w: reservation policy %q", errConfig, string(c.Reservation))
	}
	if c.Resources == nil {
		if c.ResourceCount < 0 {
			return fmt.Errorf("%w: resource count %d", errConfig, c.ResourceCount)
		}
		spanX := c.ScreenWidth - 2*c.SpawnMargin + 1
		spanY := c.ScreenHeight - 2*c.SpawnMargin + 1
		if c.ResourceCount > 0 && (spanX <= 0 || spanY <= 0 || c.ResourceCount > spanX*spanY) {
			return fmt.Errorf("%w: %d resources do not fit margin %d", errConfig, c.ResourceCount, c.SpawnMargin)
		}
	}
	return nil
}

// IsConfigError сообщает, что err пришла из Validate.
func IsConfigError(err error) bool {
	return errors.Is(err, errConfig) || errors.Is(err, types.ErrInvalidStrategy)
}
