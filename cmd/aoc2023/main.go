// Command aoc2023 solves the first days of Advent of Code 2023.
//
// Run it from a directory holding the cached inputs (2023/<day>.input), or
// point it at an input file:
//
//	aoc2023 --day 2 --part 2 --input input.txt
package main

import (
	_ "embed"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/calibration"
	"github.com/maisem/aoc2023/cubes"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() (any, error) {
	return s.calibrate(false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() (any, error) {
	return s.calibrate(true)
}

func (s solver) calibrate(spelled bool) (int, error) {
	var sum int
	err := s.ForLinesY(func(y int, line string) error {
		v, err := calibration.Value(line, spelled)
		if err != nil {
			return err
		}
		s.Debugf("%d: %s -> %d", y, line, v)
		sum += v
		return nil
	})
	return sum, err
}

var parsedGames aoc.Memo[[]string, []cubes.Game]

func (s solver) games() ([]cubes.Game, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	return parsedGames.Get(lines, cubes.ParseGames)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() (any, error) {
	gs, err := s.games()
	if err != nil {
		return nil, err
	}
	return cubes.SumPossibleIDs(gs, cubes.Limits()), nil
}

// want=2286
func (s solver) D2p2() (any, error) {
	gs, err := s.games()
	if err != nil {
		return nil, err
	}
	for _, g := range gs {
		s.Debugf("game %d: minimum %+v", g.ID, g.MinimumSet())
	}
	return cubes.SumPowers(gs), nil
}
