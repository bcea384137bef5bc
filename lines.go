package aoc

// ParseFunc parses one line of input, without its line terminator, into a
// record. It reports false when the line does not hold a record; it never
// returns a partial record.
type ParseFunc[T any] func(line string) (T, bool)

// ParseLines parses each line of text with parse and returns the records in
// input order. Lines that parse reports false for are skipped.
func ParseLines[T any](text string, parse ParseFunc[T]) []T {
	var out []T
	forLines(newScanner([]byte(text)), func(_ int, line string) {
		if v, ok := parse(line); ok {
			out = append(out, v)
		}
	})
	return out
}

// Parse is ParseLines over the puzzle's current input.
func Parse[T any](p *Puzzle, parse ParseFunc[T]) []T {
	return ParseLines(string(p.Input()), parse)
}
