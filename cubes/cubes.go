// Package cubes checks games of cubes drawn from a bag (Advent of Code 2023,
// day 2).
//
// Each input line records one game:
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// The draws are separated by ';' and each draw lists how many cubes of each
// colour were revealed.
package cubes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

// Color is the colour of a cube.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Colors lists every colour.
var Colors = [...]Color{Red, Green, Blue}

var colorNames = map[string]Color{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// ParseColor returns the colour named s.
func ParseColor(s string) (Color, bool) {
	c, ok := colorNames[s]
	return c, ok
}

// Cubes is a number of cubes of one colour.
type Cubes struct {
	Count int
	Color Color
}

// Draw is the cubes revealed at once. A colour may appear more than once.
type Draw []Cubes

// Game is a recorded game.
type Game struct {
	ID    int
	Draws []Draw
}

// CubeSet holds a count per colour.
type CubeSet struct {
	Red, Green, Blue int
}

// Limits returns the number of cubes of each colour in the bag.
func Limits() CubeSet {
	return CubeSet{Red: 12, Green: 13, Blue: 14}
}

func (s *CubeSet) count(c Color) *int {
	switch c {
	case Red:
		return &s.Red
	case Green:
		return &s.Green
	case Blue:
		return &s.Blue
	}
	panic(fmt.Sprintf("bad color %v", c))
}

// Count returns the number of cubes of colour c.
func (s CubeSet) Count(c Color) int {
	return *s.count(c)
}

// Raise sets the count of c to n if n is larger.
func (s *CubeSet) Raise(c Color, n int) {
	p := s.count(c)
	*p = max(*p, n)
}

// Power returns the product of the counts.
func (s CubeSet) Power() int {
	return aoc.Product(s.Red, s.Green, s.Blue)
}

// Possible reports whether every draw of the game could have come from a bag
// holding limits.
func (g Game) Possible(limits CubeSet) bool {
	for _, d := range g.Draws {
		for _, c := range d {
			if c.Count > limits.Count(c.Color) {
				return false
			}
		}
	}
	return true
}

// MinimumSet returns the fewest cubes of each colour the bag must have held
// for the game to be possible.
func (g Game) MinimumSet() CubeSet {
	var need CubeSet
	for _, d := range g.Draws {
		for _, c := range d {
			need.Raise(c.Color, c.Count)
		}
	}
	return need
}

// ParseGame parses a line of the form
//
//	Game <id>: <count> <color>, ...; <count> <color>, ...
//
// Errors are of type *aoc.ParseError and name the offending text.
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, aoc.Errorf(line, "missing ':' after game header")
	}
	idText, ok := strings.CutPrefix(strings.TrimSpace(header), "Game ")
	if !ok {
		return Game{}, aoc.Errorf(header, `bad game header, want "Game <id>"`)
	}
	id, err := aoc.Int(idText)
	if err != nil || id <= 0 {
		return Game{}, &aoc.ParseError{Text: header, Msg: "bad game id", Err: err}
	}
	g := Game{ID: id}
	for _, text := range strings.Split(body, ";") {
		if strings.TrimSpace(text) == "" {
			return Game{}, aoc.Errorf(line, "empty draw")
		}
		d, err := parseDraw(strings.TrimSpace(text))
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

func parseDraw(text string) (Draw, error) {
	var d Draw
	for _, pair := range strings.Split(text, ",") {
		f := strings.Fields(pair)
		if len(f) != 2 {
			return nil, aoc.Errorf(text, "bad cubes %q, want <count> <color>", strings.TrimSpace(pair))
		}
		n, err := strconv.ParseUint(f[0], 10, 31)
		if err != nil {
			return nil, &aoc.ParseError{Text: text, Msg: fmt.Sprintf("bad count %q", f[0]), Err: err}
		}
		c, ok := ParseColor(f[1])
		if !ok {
			return nil, aoc.Errorf(text, "unknown color %q", f[1])
		}
		d = append(d, Cubes{Count: int(n), Color: c})
	}
	return d, nil
}

// ParseGames parses one game per line. Lines are parsed concurrently; on
// failure the error of the first bad line is returned, with its 1-based
// line number.
func ParseGames(lines []string) ([]Game, error) {
	return aoc.Parallel(lines, func(i int, line string) (Game, error) {
		g, err := ParseGame(line)
		return g, aoc.AtLine(err, i+1, line)
	})
}

// SumPossibleIDs returns the sum of the IDs of the games possible with
// limits.
func SumPossibleIDs(games []Game, limits CubeSet) int {
	var sum int
	for _, g := range games {
		if g.Possible(limits) {
			sum += g.ID
		}
	}
	return sum
}

// SumPowers returns the sum of the powers of the minimum sets of the games.
func SumPowers(games []Game) int {
	return aoc.Fold(games, func(sum int, g Game) int {
		return sum + g.MinimumSet().Power()
	}, 0)
}
