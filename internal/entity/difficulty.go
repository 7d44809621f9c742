package entity

import (
	"errors"
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty - accepts easy, medium or hard in any case.
func ParseDifficulty(value string) (Difficulty, error) {
	switch level := Difficulty(strings.ToLower(strings.TrimSpace(value))); level {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

func (that Difficulty) IsValid() bool {
	return that == DifficultyEasy || that == DifficultyMedium || that == DifficultyHard
}
