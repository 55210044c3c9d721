package game

import "math/rand/v2"

// Tile is one card on the board. Once Matched it stays face up for the rest
// of the round.
type Tile struct {
	Index    int    `json:"index"`
	Icon     string `json:"icon"`
	Revealed bool   `json:"revealed"`
	Matched  bool   `json:"matched"`
}

// Deal picks d.Pairs() distinct icons, doubles them and shuffles the result.
func Deal(d Difficulty, rng *rand.Rand) []Tile {
	catalog := append([]string(nil), Icons...)
	rng.Shuffle(len(catalog), func(i, j int) {
		catalog[i], catalog[j] = catalog[j], catalog[i]
	})
	picked := catalog[:d.Pairs()]

	icons := make([]string, 0, 2*len(picked))
	icons = append(icons, picked...)
	icons = append(icons, picked...)
	shuffle(icons, rng)

	tiles := make([]Tile, len(icons))
	for i, icon := range icons {
		tiles[i] = Tile{Index: i, Icon: icon}
	}
	return tiles
}

// shuffle is a Fisher-Yates pass over s.
func shuffle(s []string, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
