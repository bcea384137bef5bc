package cubegame

import aoc "github.com/maisem/aoc2023"

// Feasible reports whether every draw of g fits in the bag, that is, no
// draw shows more cubes of a color than its Threshold.
func (g Game) Feasible() bool {
	for _, c := range Colors() {
		for _, d := range g.Draws {
			if n, ok := d.Get(c); ok && n > c.Threshold() {
				return false
			}
		}
	}
	return true
}

// Max returns the largest count of c shown in any draw of g, or 0 if c was
// never shown.
func (g Game) Max(c Color) int {
	m := 0
	for _, d := range g.Draws {
		if n, ok := d.Get(c); ok && n > m {
			m = n
		}
	}
	return m
}

// Power returns the product of Max over all colors: the number of cubes in
// the smallest bag g could have been played with, multiplied together.
func (g Game) Power() int {
	maxes := make([]int, 0, numColors)
	for _, c := range Colors() {
		maxes = append(maxes, g.Max(c))
	}
	return aoc.Product(maxes...)
}

// SumFeasible returns the sum of the IDs of the feasible games.
func SumFeasible(games []Game) int {
	return aoc.Fold(games, func(sum int, g Game) int {
		if g.Feasible() {
			return sum + g.ID
		}
		return sum
	}, 0)
}

// SumPower returns the sum of the powers of games.
func SumPower(games []Game) int {
	powers := make([]int, len(games))
	for i, g := range games {
		powers[i] = g.Power()
	}
	return aoc.Sum(powers...)
}
