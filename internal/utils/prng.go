// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService оборачивает генератор случайных чисел, чтобы вся симуляция
// тянула случайность из одного (при желании детерминированного) источника.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// IntRange возвращает случайное целое в замкнутом диапазоне [lo, hi].
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
