// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-td-sim/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы вся игра
// использовала один предсказуемый (seeded) источник.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// ChooseEnemy выполняет взвешенный выбор типа врага из состава волны.
// Пустая таблица даёт пустую строку.
func (s *PRNGService) ChooseEnemy(entries []defs.SpawnWeight) string {
	if len(entries) == 0 {
		return ""
	}
	if len(entries) == 1 {
		return entries[0].EnemyID
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].EnemyID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.EnemyID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].EnemyID
}
