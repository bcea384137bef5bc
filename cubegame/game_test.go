package cubegame

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/aoc2023"
	"tailscale.com/util/deephash"
)

const sample = `Game 1: 3 Blue, 4 Red; 1 Red, 2 Green, 6 Blue; 2 Green
Game 2: 1 Blue, 2 Green; 3 Green, 4 Blue, 1 Red; 1 Green, 1 Blue
Game 3: 8 Green, 6 Blue, 20 Red; 5 Blue, 4 Red, 13 Green; 5 Green, 1 Red
Game 4: 1 Green, 3 Red, 6 Blue; 3 Green, 6 Red; 3 Green, 15 Blue, 14 Red
Game 5: 6 Red, 1 Blue, 3 Green; 2 Blue, 1 Red, 2 Green
`

var cmpOpts = cmp.AllowUnexported(Draw{})

func draw(obs ...observation) Draw {
	var d Draw
	for _, o := range obs {
		d = d.With(o.color, o.n)
	}
	return d
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		line   string
		want   Game
		wantOK bool
	}{
		{
			line: "Game 1: 3 Blue, 4 Red; 1 Red, 2 Green, 6 Blue; 2 Green",
			want: Game{ID: 1, Draws: []Draw{
				draw(observation{Blue, 3}, observation{Red, 4}),
				draw(observation{Red, 1}, observation{Green, 2}, observation{Blue, 6}),
				draw(observation{Green, 2}),
			}},
			wantOK: true,
		},
		{
			line:   "Game 100: 3 Blue",
			want:   Game{ID: 100, Draws: []Draw{draw(observation{Blue, 3})}},
			wantOK: true,
		},
		{
			// Empty draws text is a single empty draw.
			line:   "Game 4: ",
			want:   Game{ID: 4, Draws: []Draw{{}}},
			wantOK: true,
		},
		{
			line:   "Game 4: ; ",
			want:   Game{ID: 4, Draws: []Draw{{}, {}}},
			wantOK: true,
		},
		{
			// Repeated colors within a draw: last wins.
			line:   "Game 2: 3 Red, 5 Red",
			want:   Game{ID: 2, Draws: []Draw{draw(observation{Red, 5})}},
			wantOK: true,
		},
		{
			line:   "Game 2: abc Blue, 2 Red",
			want:   Game{ID: 2, Draws: []Draw{draw(observation{Red, 2})}},
			wantOK: true,
		},
		{
			// Counts may carry a '+'; the game ID may not.
			line:   "Game 1: +3 Blue, 2 Red; ++4 Green; + Red",
			want:   Game{ID: 1, Draws: []Draw{draw(observation{Blue, 3}, observation{Red, 2}), {}, {}}},
			wantOK: true,
		},
		{line: "Game +1: 3 Blue"},
		{
			line:   "Game 2: 1 Purple; -3 Red; 4Green; 5 green; 6  Blue",
			want:   Game{ID: 2, Draws: []Draw{{}, {}, {}, {}, {}}},
			wantOK: true,
		},
		{
			line:   "Game 0: 0 Red",
			want:   Game{ID: 0, Draws: []Draw{draw(observation{Red, 0})}},
			wantOK: true,
		},
		{line: "Game 7 3 Blue"},
		{line: "Game 7:3 Blue"},
		{line: "Game 7:"},
		{line: "Game x: 3 Blue"},
		{line: "Game -7: 3 Blue"},
		{line: "Game : 3 Blue"},
		{line: "game 7: 3 Blue"},
		{line: "Match 7: 3 Blue"},
		{line: "Game"},
		{line: "Gam"},
		{line: ""},
	}
	for _, tt := range tests {
		got, ok := ParseGame(tt.line)
		if ok != tt.wantOK {
			t.Errorf("ParseGame(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmpOpts); diff != "" {
			t.Errorf("ParseGame(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseLinesSkipsBadLines(t *testing.T) {
	in := strings.Join([]string{
		"Game 1: 3 Blue",
		"",
		"Game 7 3 Blue",
		"garbage",
		"Game 2: 4 Red\r",
		"Game 3: abc Blue, 1 Green",
	}, "\n")
	games := aoc.ParseLines(in, ParseGame)
	want := []Game{
		{ID: 1, Draws: []Draw{draw(observation{Blue, 3})}},
		{ID: 2, Draws: []Draw{draw(observation{Red, 4})}},
		{ID: 3, Draws: []Draw{draw(observation{Green, 1})}},
	}
	if diff := cmp.Diff(want, games, cmpOpts); diff != "" {
		t.Errorf("ParseLines mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLinesNothingParses(t *testing.T) {
	games := aoc.ParseLines("foo\nbar\n\nGame 7 3 Blue\n", ParseGame)
	if len(games) != 0 {
		t.Fatalf("got %d games, want 0", len(games))
	}
	if got := SumFeasible(games); got != 0 {
		t.Errorf("SumFeasible = %v, want 0", got)
	}
	if got := SumPower(games); got != 0 {
		t.Errorf("SumPower = %v, want 0", got)
	}
}

func TestGameStringRoundTrip(t *testing.T) {
	in := sample + strings.Join([]string{
		"Game 6: 3 Red, 5 Red, 1 Blue",
		"Game 7: ",
		"Game 8: nope; 2 Green, 0 Blue; ",
		"Game 009: 1 Red",
	}, "\n")
	games := aoc.ParseLines(in, ParseGame)
	if len(games) != 9 {
		t.Fatalf("parsed %d games, want 9", len(games))
	}

	var sb strings.Builder
	for _, g := range games {
		sb.WriteString(g.String())
		sb.WriteByte('\n')
	}
	reparsed := aoc.ParseLines(sb.String(), ParseGame)
	if deephash.Hash(&games) != deephash.Hash(&reparsed) {
		t.Errorf("round trip changed games:\n%s", cmp.Diff(games, reparsed, cmpOpts))
	}
}

func TestGameString(t *testing.T) {
	g, ok := ParseGame("Game 3: 8 Green, 6 Blue, 20 Red; 5 Blue, 4 Red, 13 Green; 5 Green, 1 Red")
	if !ok {
		t.Fatal("ParseGame failed")
	}
	const want = "Game 3: 6 Blue, 20 Red, 8 Green; 5 Blue, 4 Red, 13 Green; 1 Red, 5 Green"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
