// Package aoc is a small harness for solving Advent of Code puzzles.
// (forked from maisem/aoc, itself forked from bradfitz/aoc)
//
// A solver is a struct embedding *Puzzle whose methods are named
// D{day}p{part}. Each method may carry a sample in its doc comment:
//
//	/*
//	want=42
//
//	sample input
//	*/
//
// Run checks every part against its sample before running it on the real
// input, and prints each real answer on its own line.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kr/pretty"
	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous sample in the file.
func extractSamples(src []byte) map[string]sample {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is the state of the part being solved. Solvers embed it to reach
// their input.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	inputs  fs.FS
	input   []byte // real input, loaded once per day
	logf    logger.Logf
}

func (p *Puzzle) Year() int {
	return p.year
}

// Day returns the day number of the puzzle.
func (p *Puzzle) Day() int {
	return p.day.day
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = readInput(p.inputs, p.day.day)
	}
	return p.input
}

func inputPath(day int) string {
	return path.Join("input", strconv.Itoa(day)+".txt")
}

func readInput(inputs fs.FS, day int) []byte {
	if inputs == nil {
		log.Fatalf("no inputs for day %d", day)
	}
	b, err := fs.ReadFile(inputs, inputPath(day))
	if err != nil {
		log.Fatalf("reading input for day %d: %v", day, err)
	}
	return b
}

// Scanner returns a line scanner over Input.
func (p *Puzzle) Scanner() *bufio.Scanner {
	return newScanner(p.Input())
}

func newScanner(b []byte) *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(b))
	s.Buffer(nil, max(len(b)+1, bufio.MaxScanTokenSize))
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	forLines(p.Scanner(), onLine)
}

func forLines(s *bufio.Scanner, onLine func(int, string)) {
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// debugOut is where Debug and Debugf print.
var debugOut io.Writer = os.Stderr

// Debug pretty-prints v in debug mode.
func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Fprintln(debugOut, pretty.Sprint(v...))
	}
}

// Debugf is like Debug but only prints while solving the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		pretty.Fprintf(debugOut, format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of the struct x points to that are
// named D{day}p{part} and have the signature func() any, grouped by day
// and sorted by part.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagVerbose    bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.BoolVar(&flagVerbose, "v", false, "log progress and timings to stderr")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runner runs the registered days of one solver.
type runner struct {
	year    int
	inputs  fs.FS
	samples map[string]sample
	out     io.Writer   // answers
	logf    logger.Logf // progress
	errf    logger.Logf // sample verdicts
}

func (r *runner) runDay(slvr any, day day) {
	p := Puzzle{
		year:    r.year,
		day:     day,
		samples: r.samples,
		inputs:  r.inputs,
		logf:    logger.WithPrefix(r.logf, fmt.Sprintf("day %d: ", day.day)),
	}
	p.logf("running")
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
parts:
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					r.errf("day %d part %s: %v ❌; want %v", day.day, ps.Part, got, sample.want)
					continue parts
				}
				r.errf("day %d part %s sample: %v ✅ (%v)", day.day, ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintln(r.out, got)
				p.logf("part %s: %v (took %v)", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
}

func (r *runner) run(slvr any, days map[int]day) {
	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		r.runDay(slvr, day)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		r.runDay(slvr, days[day])
	}
}

// Run solves the days registered on slvr, a pointer to a struct embedding
// *Puzzle. src is the solver's source, from which samples are extracted,
// and inputs holds the real inputs as input/{day}.txt.
func Run(year int, src []byte, inputs fs.FS, slvr any) {
	initFlags()
	stderr := log.New(os.Stderr, "", 0).Printf
	r := &runner{
		year:    year,
		inputs:  inputs,
		samples: extractSamples(src),
		out:     os.Stdout,
		logf:    logger.Discard,
		errf:    stderr,
	}
	if flagVerbose {
		r.logf = stderr
	}
	r.run(slvr, extractMethods(slvr))
}
