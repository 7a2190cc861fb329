// Package calibration recovers trebuchet calibration values (Advent of Code
// 2023, day 1).
//
// A calibration value is the two-digit number formed by the first and last
// digit of a line. Digits may be written as characters or, when spelled is
// set, as the words one through nine. Spelled-out words may share letters:
// "twone" holds both 2 and 1.
package calibration

import (
	"strings"

	"github.com/maisem/aoc2023"
)

// Words maps the spelled-out digits to their values.
var Words = [...]string{
	1: "one",
	2: "two",
	3: "three",
	4: "four",
	5: "five",
	6: "six",
	7: "seven",
	8: "eight",
	9: "nine",
}

// DigitSequence is the digits found in a line, left to right.
type DigitSequence []int

// Digits returns the digits of line in order. At every position it records a
// decimal digit, or with spelled set, the value of a digit word starting
// there. Words are matched at every position independently so that
// overlapping words each count.
func Digits(line string, spelled bool) DigitSequence {
	var ds DigitSequence
	for i := 0; i < len(line); i++ {
		if d, ok := aoc.Digit(rune(line[i])); ok {
			ds = append(ds, d)
			continue
		}
		if !spelled {
			continue
		}
		rest := line[i:]
		for d := 1; d < len(Words); d++ {
			if strings.HasPrefix(rest, Words[d]) {
				ds = append(ds, d)
				break
			}
		}
	}
	return ds
}

// Value returns the calibration value of the sequence. ok is false if it is
// empty.
func (ds DigitSequence) Value() (v int, ok bool) {
	if len(ds) == 0 {
		return 0, false
	}
	return 10*ds[0] + ds[len(ds)-1], true
}

// Value returns the calibration value of line. A line with a single digit
// uses it twice. A line without digits is a *aoc.ParseError.
func Value(line string, spelled bool) (int, error) {
	v, ok := Digits(line, spelled).Value()
	if !ok {
		return 0, aoc.Errorf(line, "no digit in line")
	}
	return v, nil
}

// Sum returns the sum of the calibration values of lines. The first line
// without a digit aborts the sum with a *aoc.ParseError carrying its 1-based
// line number.
func Sum(lines []string, spelled bool) (int, error) {
	var sum int
	for i, line := range lines {
		v, err := Value(line, spelled)
		if err != nil {
			return 0, aoc.AtLine(err, i+1, line)
		}
		sum += v
	}
	return sum, nil
}
