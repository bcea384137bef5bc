// The aoc2023 command solves Advent of Code 2023 puzzles.
//
// Each part is checked against the sample in its doc comment, then run on
// the embedded input; the answers are printed one per line. Run with -v to
// see timings.
package main

import (
	"embed"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/cubegame"
)

func main() {
	aoc.Run(2023, source, inputs, &solver{})
}

//go:embed main.go
var source []byte

//go:embed input
var inputs embed.FS

type solver struct {
	*aoc.Puzzle
}

func (s solver) games() []cubegame.Game {
	games := aoc.Parse(s.Puzzle, cubegame.ParseGame)
	s.Debugf("day %d: %d games", s.Day(), len(games))
	s.Debug(games)
	return games
}

/*
want=8

Game 1: 3 Blue, 4 Red; 1 Red, 2 Green, 6 Blue; 2 Green
Game 2: 1 Blue, 2 Green; 3 Green, 4 Blue, 1 Red; 1 Green, 1 Blue
Game 3: 8 Green, 6 Blue, 20 Red; 5 Blue, 4 Red, 13 Green; 5 Green, 1 Red
Game 4: 1 Green, 3 Red, 6 Blue; 3 Green, 6 Red; 3 Green, 15 Blue, 14 Red
Game 5: 6 Red, 1 Blue, 3 Green; 2 Blue, 1 Red, 2 Green
*/
func (s solver) D2p1() any {
	return cubegame.SumFeasible(s.games())
}

// want=2286
func (s solver) D2p2() any {
	return cubegame.SumPower(s.games())
}
