// Package cubegame solves the cube game of Advent of Code 2023, day 2.
//
// Each game records handfuls of colored cubes drawn from a bag. A game
// line looks like
//
//	Game 3: 8 Green, 6 Blue, 20 Red; 5 Blue, 4 Red, 13 Green
//
// where each "; "-separated segment is one Draw.
package cubegame

import "fmt"

// Color is a cube color.
type Color int

const (
	Blue Color = iota
	Red
	Green

	numColors = 3
)

// Colors returns every color, in the order Blue, Red, Green.
func Colors() []Color {
	return []Color{Blue, Red, Green}
}

// Threshold returns how many cubes of color c the bag holds.
func (c Color) Threshold() int {
	switch c {
	case Blue:
		return 14
	case Red:
		return 12
	case Green:
		return 13
	}
	panic(fmt.Sprintf("bad color %d", int(c)))
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	case Green:
		return "Green"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor returns the color whose label is exactly s.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "Blue":
		return Blue, true
	case "Red":
		return Red, true
	case "Green":
		return Green, true
	}
	return 0, false
}
