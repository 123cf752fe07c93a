package domain

import "strings"

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty; unknown labels are Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// Direction is one of the four axis-aligned jump directions.
type Direction struct {
	DRow, DCol int
}

// Directions lists jump directions in generation order: right, left, down, up.
var Directions = [4]Direction{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
}
