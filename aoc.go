// Package aoc is a small harness for solving Advent of Code puzzles.
// (forked from maisem/aoc, itself forked from bradfitz/aoc)
//
// Solvers are methods named D{day}p{part} on a struct that embeds *Puzzle:
//
//	type solver struct {
//		*aoc.Puzzle
//	}
//
//	/*
//	want=142
//
//	1abc2
//	...
//	*/
//	func (s solver) D1p1() (any, error)
//
// The doc comment of each solver holds the worked sample from the puzzle
// text. It is checked before the real input is run.
package aoc

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
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
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	var samples map[string]sample
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				if s.input == "" {
					s.input = lastInput
				}
				mak.Set(&samples, fd.Name.Name, s)
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is the state of the day being solved. Solvers reach it through
// their embedded *Puzzle field.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	ctx     context.Context
	opts    Options
	log     *zap.SugaredLogger
	solver  partSolver
	samples map[string]sample
}

// Day returns the day number being solved.
func (p *Puzzle) Day() int { return p.day.day }

// Part returns the part being solved, e.g. "1".
func (p *Puzzle) Part() string { return p.solver.Part }

// Lines returns the non-empty lines of the input.
func (p *Puzzle) Lines() ([]string, error) {
	b, err := p.Input()
	if err != nil {
		return nil, err
	}
	return Lines(string(b)), nil
}

// ForLinesY calls onLine for each non-empty line of input. The y value is
// the row number, starting with 0. An error from onLine stops the iteration
// and is returned as a ParseError for that line.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	for y, line := range lines {
		if err := onLine(y, line); err != nil {
			return AtLine(err, y+1, line)
		}
	}
	return nil
}

// ForLines calls onLine for each non-empty line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

// Debugf logs at debug level. It is silent unless --debug is set.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debugf(format, args...)
}

// Sample returns the worked sample of the current solver.
func (p *Puzzle) Sample() (sample, error) {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		return sample{}, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return s, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	if !rv.Elem().FieldByName("Puzzle").IsValid() {
		return nil, fmt.Errorf("solver: %T does not embed *aoc.Puzzle", x)
	}
	vt := rv.Elem().Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if _, ok := rv.Elem().Method(i).Interface().(func() (any, error)); !ok {
			return nil, fmt.Errorf("solver: %s has type %v; want func() (any, error)", mn, vt.Method(i).Type)
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("solver: %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
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
	return days, nil
}

func callSolver(slvr any, name string) (any, error) {
	m := reflect.ValueOf(slvr).Elem().MethodByName(name)
	return m.Interface().(func() (any, error))()
}

func runDay(ctx context.Context, opts Options, log *zap.SugaredLogger, slvr any, year int, day day, samples map[string]sample) error {
	p := &Puzzle{
		year:    year,
		day:     day,
		ctx:     ctx,
		opts:    opts,
		log:     log,
		samples: samples,
	}
	log.Infof("running day %d", day.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range day.parts {
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}
		p.solver = ps

		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching is not timed.
				if _, err := p.Input(); err != nil {
					return err
				}
			}
			t0 := time.Now()
			got, err := callSolver(slvr, ps.Name)
			if err != nil {
				if sm {
					return fmt.Errorf("%s sample: %w", ps.Name, err)
				}
				return fmt.Errorf("%s: %w", ps.Name, err)
			}
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				s, err := p.Sample()
				if err != nil {
					return err
				}
				if fmt.Sprint(got) != s.want {
					return &SampleError{Solver: ps.Name, Got: fmt.Sprint(got), Want: s.want}
				}
				log.Infof("part %s sample: %v ✅ (%v)", ps.Part, got, took)
				continue
			}
			log.Infof("part %s: %v (took %v)", ps.Part, got, took)
			fmt.Fprintln(opts.stdout(), got)
		}
	}
	return nil
}

func run(ctx context.Context, opts Options, log *zap.SugaredLogger, year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if opts.Day > 0 {
		day, ok := days[opts.Day]
		if !ok {
			return fmt.Errorf("no day %d", opts.Day)
		}
		return runDay(ctx, opts, log, slvr, year, day, samples)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(ctx, opts, log, slvr, year, days[d], samples); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) stdout() io.Writer {
	if o.Stdout == nil {
		return io.Discard
	}
	return o.Stdout
}
