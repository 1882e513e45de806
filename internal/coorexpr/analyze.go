// Package coorexpr parses seat coordinate expressions such as "12A",
// "A12" or "23F:73Q" and expands them into the seats they denote.
//
// Rows are typed 1-based ("1".."99") and columns as a single letter
// ("A".."Z"); the returned coordinates are zero-based.  Both functions are
// pure and safe for concurrent use.
package coorexpr

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Limits on the house bounds accepted by Analyze.
const (
	MinBound = 1
	MaxBound = 99
)

// Coordinate is a zero-based (row, column) seat position.
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// String renders the coordinate the way users type it, row first: (11,0) -> "12A".
func (c Coordinate) String() string {
	return strconv.Itoa(c.Row+1) + string(rune('A'+c.Column))
}

// Less orders coordinates by row, then column.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Column < o.Column
}

// Analyze parses expr against a house of nRow rows and nColumn columns and
// returns one coordinate (a single seat) or two (the corners of a range, in
// the order typed).  The first failing check wins; see Kind for the set of
// failures.
func Analyze(expr string, nRow, nColumn int) ([]Coordinate, error) {
	if nRow < MinBound || nRow > MaxBound || nColumn < MinBound || nColumn > MaxBound {
		return nil, &Error{Kind: OutOfRange}
	}

	s := normalize(expr)
	fail := func(k Kind) ([]Coordinate, error) { return nil, &Error{Kind: k, Expr: s} }

	if s == "" {
		return fail(EmptyCoordinate)
	}
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) && !isDigit(s[i]) && s[i] != ':' {
			return fail(InvalidCharacter)
		}
	}
	if s[0] == ':' {
		return fail(NoStartingCoordinate)
	}
	if s[len(s)-1] == ':' {
		return fail(NoEndingCoordinate)
	}

	var tokens []string
	switch strings.Count(s, ":") {
	case 0:
		tokens = []string{s}
	case 1:
		tokens = strings.SplitN(s, ":", 2)
	default:
		return fail(MoreThanOneColon)
	}

	type raw struct {
		row    int
		column byte
	}
	parsed := make([]raw, 0, len(tokens))
	for _, tok := range tokens {
		row, col, k := parseToken(tok)
		if k != 0 {
			return fail(k)
		}
		parsed = append(parsed, raw{row: row, column: col})
	}

	coords := make([]Coordinate, 0, len(parsed))
	for _, p := range parsed {
		if p.row == 0 {
			return fail(RowNumberIsZero)
		}
		coords = append(coords, Coordinate{Row: p.row - 1, Column: int(p.column - 'A')})
	}

	if len(coords) == 2 {
		start, end := coords[0], coords[1]
		if start == end {
			return fail(SameCoordinates)
		}
		if start.Row > end.Row || (start.Row == end.Row && start.Column > end.Column) {
			return fail(CoordinatesWrongOrder)
		}
	}

	for _, c := range coords {
		if c.Row > nRow-1 {
			return fail(RowNumberOutOfRange)
		}
		if c.Column > nColumn-1 {
			return fail(ColumnNumberOutOfRange)
		}
	}
	return coords, nil
}

// normalize trims, drops interior spaces and tabs, and upper-cases with the
// full Unicode mappings, so "ß" becomes "SS".
func normalize(expr string) string {
	s := strings.TrimFunc(expr, isTrimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\t", "")
	return cases.Upper(language.Und).String(s)
}

// isTrimmed reports Unicode white space and the ASCII information
// separators U+001C..U+001F.
func isTrimmed(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// parseToken splits a single-seat token into its 1-based row and column
// letter.  A non-zero Kind reports the first shape violation.
func parseToken(tok string) (int, byte, Kind) {
	allLetters, allDigits := true, true
	for i := 0; i < len(tok); i++ {
		if !isUpper(tok[i]) {
			allLetters = false
		}
		if !isDigit(tok[i]) {
			allDigits = false
		}
	}
	first, last := tok[0], tok[len(tok)-1]
	switch {
	case allLetters:
		return 0, 0, NoRowCoordinate
	case allDigits:
		return 0, 0, NoColumnCoordinate
	case isUpper(first) && isUpper(last):
		return 0, 0, ColumnCoordinatesAtTwoSide
	case isDigit(first) && isDigit(last):
		return 0, 0, RowCoordinatesAtTwoSide
	}

	var column byte
	var rowDigits string
	if isDigit(first) { // row first
		column, rowDigits = last, tok[:len(tok)-1]
	} else { // column first
		column, rowDigits = first, tok[1:]
	}
	for i := 0; i < len(rowDigits); i++ {
		if isUpper(rowDigits[i]) {
			return 0, 0, AlphabetCharacterInRowNumber
		}
	}
	return atoiSaturating(rowDigits), column, 0
}

// atoiSaturating parses an all-digit string, clamping at math.MaxInt.
func atoiSaturating(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
