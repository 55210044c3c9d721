package game

// Difficulty is the tier of a round. It selects the number of pairs, the
// board layout and the best-score slot.
type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

var Difficulties = []Difficulty{Easy, Hard}

// ParseDifficulty maps a selector value to a tier. Anything other than
// "hard" plays as easy.
func ParseDifficulty(s string) Difficulty {
	if Difficulty(s) == Hard {
		return Hard
	}
	return Easy
}

// Pairs is the number of icon pairs dealt for the tier, capped by the
// catalog size.
func (d Difficulty) Pairs() int {
	n := 6
	if d == Hard {
		n = 12
	}
	return min(n, len(Icons))
}

// Columns is the board width used to lay out the tiles.
func (d Difficulty) Columns() int {
	if d == Hard {
		return 6
	}
	return 4
}
