package calibration

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maisem/aoc2023"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
	}{
		{"1abc2", false, 12},
		{"pqr3stu8vwx", false, 38},
		{"a1b2c3d4e5f", false, 15},
		{"treb7uchet", false, 77},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"abcone2threexyz", true, 13},
		{"xtwone3four", true, 24},
		{"4nineeightseven2", true, 42},
		{"zoneight234", true, 14},
		{"7pqrstsixteen", true, 76},
		{"5", true, 55},
		{"5", false, 55},
		{"twone", true, 21},
		{"oneight", true, 18},
		{"eightwo", true, 82},
		{"sevenine", true, 79},
		// Words are ignored without spelled.
		{"two1nine", false, 11},
	}
	for _, tt := range tests {
		got, err := Value(tt.line, tt.spelled)
		if err != nil {
			t.Errorf("Value(%q, %v): %v", tt.line, tt.spelled, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Value(%q, %v) = %v, want %v", tt.line, tt.spelled, got, tt.want)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		line string
		want DigitSequence
	}{
		{"xtwone3four", DigitSequence{2, 1, 3, 4}},
		{"zoneight234", DigitSequence{1, 8, 2, 3, 4}},
		{"eighthree", DigitSequence{8, 3}},
		{"0zero", DigitSequence{0}},
		{"abc", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Digits(tt.line, true)); diff != "" {
			t.Errorf("Digits(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

// sandwich rewrites every digit word w with value d as w+d+w, one word
// after the other, which is another way to let overlapping words each
// produce a digit.
func sandwich(line string) string {
	for d := 1; d < len(Words); d++ {
		w := Words[d]
		line = strings.ReplaceAll(line, w, w+string(rune('0'+d))+w)
	}
	return line
}

func TestDigitsMatchesSandwich(t *testing.T) {
	lines := []string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
		"oneightwoneine",
		"threeightwone9sevenine",
		"fivefoursix",
	}
	for _, line := range lines {
		want := Digits(sandwich(line), false)
		got := Digits(line, true)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Digits(%q) mismatch (-sandwich +scan):\n%s", line, diff)
		}
	}
}

func TestSum(t *testing.T) {
	part1 := []string{"1abc2", "pqr3stu8vwx", "a1b2c3d4e5f", "treb7uchet"}
	part2 := []string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
	}
	tests := []struct {
		lines   []string
		spelled bool
		want    int
	}{
		{part1, false, 142},
		{part1, true, 142},
		{part2, true, 281},
		{nil, true, 0},
	}
	for _, tt := range tests {
		got, err := Sum(tt.lines, tt.spelled)
		if err != nil {
			t.Errorf("Sum(%q): %v", tt.lines, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Sum(%q, %v) = %v, want %v", tt.lines, tt.spelled, got, tt.want)
		}
		again, _ := Sum(tt.lines, tt.spelled)
		if again != got {
			t.Errorf("Sum(%q) not stable: %v then %v", tt.lines, got, again)
		}
	}
}

func TestSumNoDigit(t *testing.T) {
	_, err := Sum([]string{"two1nine", "abcdef", "7"}, true)
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)
	require.Equal(t, "abcdef", pe.Text)

	// Part 1 has no digits in an all-words line.
	_, err = Sum([]string{"two1nine", "eightwothree"}, false)
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Line)
}
