package cubegame

import (
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

// Game is one line of the puzzle input.
type Game struct {
	ID    int
	Draws []Draw
}

// observation is a single "<count> <Color>" token of a draw.
type observation struct {
	color Color
	n     int
}

// ParseGame parses a line of the form
//
//	Game <id>: <count> <Color>, ...; <count> <Color>, ...
//
// It reports false if the line has no "Game <id>: " header. Tokens within
// a draw that don't parse are dropped; they don't invalidate the line.
//
// ParseGame is an aoc.ParseFunc.
func ParseGame(line string) (Game, bool) {
	rest, ok := strings.CutPrefix(line, "Game ")
	if !ok {
		return Game{}, false
	}
	id, draws, ok := strings.Cut(rest, ": ")
	if !ok {
		return Game{}, false
	}
	n, ok := parseUint(id)
	if !ok {
		return Game{}, false
	}
	g := Game{ID: n}
	// An empty draws text is still one (empty) draw.
	for _, seg := range strings.Split(draws, "; ") {
		g.Draws = append(g.Draws, parseDraw(seg))
	}
	return g, true
}

func parseDraw(seg string) Draw {
	var obs []observation
	for _, tok := range strings.Split(seg, ", ") {
		num, label, ok := strings.Cut(tok, " ")
		if !ok {
			continue
		}
		n, ok := parseCount(num)
		if !ok {
			continue
		}
		c, ok := ParseColor(label)
		if !ok {
			continue
		}
		obs = append(obs, observation{color: c, n: n})
	}
	return aoc.Fold(obs, func(d Draw, o observation) Draw {
		return d.With(o.color, o.n)
	}, Draw{})
}

// parseCount parses a cube count: a non-negative decimal int with an
// optional leading '+'.
func parseCount(s string) (int, bool) {
	return parseUint(strings.TrimPrefix(s, "+"))
}

// parseUint parses a non-negative decimal int. Signs are not accepted.
func parseUint(s string) (int, bool) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// String formats g the way ParseGame expects it.
func (g Game) String() string {
	draws := make([]string, len(g.Draws))
	for i, d := range g.Draws {
		draws[i] = d.String()
	}
	return "Game " + strconv.Itoa(g.ID) + ": " + strings.Join(draws, "; ")
}
