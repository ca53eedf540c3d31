// internal/types/types.go
package types

import (
	"errors"
	"fmt"
)

// EntityID идентифицирует сущность в ECS.
type EntityID uint64

// Strategy определяет, как майнер выбирает следующий ресурс.
type Strategy string

const (
	StrategyRandom  Strategy = "random"
	StrategyClosest Strategy = "closest"
)

// ErrInvalidStrategy is the only validated failure in the simulation.
var ErrInvalidStrategy = errors.New("invalid strategy")

// Valid сообщает, известна ли стратегия.
func (s Strategy) Valid() bool {
	return s == StrategyRandom || s == StrategyClosest
}

// ParseStrategy превращает строковый тег в Strategy.
func ParseStrategy(tag string) (Strategy, error) {
	s := Strategy(tag)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, tag)
	}
	return s, nil
}
