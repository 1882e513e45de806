package coorexpr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_SingleCoordinate(t *testing.T) {
	cases := []struct {
		expr          string
		nRow, nColumn int
		want          Coordinate
	}{
		{"A1", 99, 26, Coordinate{0, 0}},
		{"1A", 99, 26, Coordinate{0, 0}},
		{"2B", 99, 26, Coordinate{1, 1}},
		{"B2", 99, 26, Coordinate{1, 1}},
		{"99Z", 99, 26, Coordinate{98, 25}},
		{"Z99", 99, 26, Coordinate{98, 25}},
		{"17M", 99, 26, Coordinate{16, 12}},
		{"o8", 99, 26, Coordinate{7, 14}},
		{"23Q", 84, 26, Coordinate{22, 16}},
		{"Q90", 90, 26, Coordinate{89, 16}},
		{"1z", 1, 26, Coordinate{0, 25}},
		{"23Q", 99, 25, Coordinate{22, 16}},
		{"23Q", 99, 17, Coordinate{22, 16}},
		{"1A", 1, 1, Coordinate{0, 0}},
		{"23Q", 99, 84, Coordinate{22, 16}},
		{"23Q", 84, 98, Coordinate{22, 16}},
		{"012A", 99, 26, Coordinate{11, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Analyze(tc.expr, tc.nRow, tc.nColumn)
			require.NoError(t, err)
			assert.Equal(t, []Coordinate{tc.want}, got)
		})
	}
}

func TestAnalyze_OrientationInvariant(t *testing.T) {
	a, err := Analyze("12A", 99, 26)
	require.NoError(t, err)
	b, err := Analyze("A12", 99, 26)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []Coordinate{{11, 0}}, a)
}

func TestAnalyze_TwoCoordinates(t *testing.T) {
	cases := []struct {
		expr          string
		nRow, nColumn int
		want          []Coordinate
	}{
		{"A1:A2", 99, 26, []Coordinate{{0, 0}, {1, 0}}},
		{"1A:2A", 99, 26, []Coordinate{{0, 0}, {1, 0}}},
		{"1A:A2", 99, 26, []Coordinate{{0, 0}, {1, 0}}},
		{"A1:2A", 99, 26, []Coordinate{{0, 0}, {1, 0}}},
		{"1A:99Z", 99, 26, []Coordinate{{0, 0}, {98, 25}}},
		{"q5:13u", 99, 26, []Coordinate{{4, 16}, {12, 20}}},
		{"8C:74I", 99, 26, []Coordinate{{7, 2}, {73, 8}}},
		{"1A:1B", 23, 26, []Coordinate{{0, 0}, {0, 1}}},
		{"1A:1B", 1, 26, []Coordinate{{0, 0}, {0, 1}}},
		{"7D:88Y", 99, 95, []Coordinate{{6, 3}, {87, 24}}},
		{"7D:88Y", 99, 88, []Coordinate{{6, 3}, {87, 24}}},
		{"23F:73Q", 87, 25, []Coordinate{{22, 5}, {72, 16}}},
		{"23F:73Q", 73, 17, []Coordinate{{22, 5}, {72, 16}}},
		{"5V:6A", 99, 26, []Coordinate{{4, 21}, {5, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Analyze(tc.expr, tc.nRow, tc.nColumn)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAnalyze_Whitespace(t *testing.T) {
	a, err := Analyze("    1 a    ", 99, 26)
	require.NoError(t, err)
	b, err := Analyze("1A", 99, 26)
	require.NoError(t, err)
	assert.Equal(t, b, a)

	got, err := Analyze("  A  1: B2  ", 99, 26)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{0, 0}, {1, 1}}, got)

	got, err = Analyze("\t12\tc ", 99, 26)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{11, 2}}, got)
}

func TestAnalyze_UnicodeNormalization(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want []Coordinate
		err  *Error
	}{
		{"file separator trimmed", "\x1c1A", []Coordinate{{0, 0}}, nil},
		{"unit separator trimmed", "1A\x1f", []Coordinate{{0, 0}}, nil},
		{"no-break space trimmed", "\u00a02b\u3000", []Coordinate{{1, 1}}, nil},
		{"sharp s upper-cases to SS", "ß1", nil, ErrAlphabetCharacterInRowNumber},
		{"ligature upper-cases to FI", "1ﬁ", nil, ErrAlphabetCharacterInRowNumber},
		{"interior separator kept", "1\x1cA", nil, ErrInvalidCharacter},
		{"interior no-break space kept", "1\u00a0A", nil, ErrInvalidCharacter},
		{"accented letter", "1É", nil, ErrInvalidCharacter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Analyze(tc.expr, 99, 26)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAnalyze_Bounds(t *testing.T) {
	for _, b := range [][2]int{{99, 0}, {0, 26}, {99, 100}, {100, 26}, {23, 0}, {12345, 4}, {-1, 5}} {
		_, err := Analyze("A1", b[0], b[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "bounds %v", b)
	}
	_, err := Analyze("A1", 99, 99)
	assert.NoError(t, err)
}

func TestAnalyze_SingleInvalidSyntax(t *testing.T) {
	cases := []struct {
		expr string
		want *Error
	}{
		{"", ErrEmptyCoordinate},
		{"   \t ", ErrEmptyCoordinate},
		{"(^^)", ErrInvalidCharacter},
		{"45.5Aqua", ErrInvalidCharacter},
		{"A1-B2", ErrInvalidCharacter},
		{"1A\n", nil}, // trailing newline is trimmed
		{"Ä1", ErrInvalidCharacter},
		{":Z99", ErrNoStartingCoordinate},
		{"G34:", ErrNoEndingCoordinate},
		{":", ErrNoStartingCoordinate},
		{"12", ErrNoColumnCoordinate},
		{"Q", ErrNoRowCoordinate},
		{"HIJKL", ErrNoRowCoordinate},
		{"12345", ErrNoColumnCoordinate},
		{"1", ErrNoColumnCoordinate},
		{"12A23", ErrRowCoordinatesAtTwoSide},
		{"111R111R111", ErrRowCoordinatesAtTwoSide},
		{"Q55Q", ErrColumnCoordinatesAtTwoSide},
		{"JFDK324jpd345dsfk", ErrColumnCoordinatesAtTwoSide},
		{"A1B2", ErrAlphabetCharacterInRowNumber},
		{"C11RR22", ErrAlphabetCharacterInRowNumber},
		{"12r34R", ErrAlphabetCharacterInRowNumber},
		{"0A", ErrRowNumberIsZero},
		{"0Z", ErrRowNumberIsZero},
		{"A0", ErrRowNumberIsZero},
		{"A000", ErrRowNumberIsZero},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.expr), func(t *testing.T) {
			_, err := Analyze(tc.expr, 99, 26)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyze_MultipleInvalidSyntax(t *testing.T) {
	cases := []struct {
		expr string
		want *Error
	}{
		{"7Y::6C", ErrMoreThanOneColon},
		{"42B:99K:6C", ErrMoreThanOneColon},
		{"4:5P", ErrNoColumnCoordinate},
		{"43L:32", ErrNoColumnCoordinate},
		{"35P:P", ErrNoRowCoordinate},
		{"J:8E", ErrNoRowCoordinate},
		{"12G6:42P", ErrRowCoordinatesAtTwoSide},
		{"G6:42P24", ErrRowCoordinatesAtTwoSide},
		{"12G6:42P24", ErrRowCoordinatesAtTwoSide},
		{"T20T:T23T", ErrColumnCoordinatesAtTwoSide},
		{"T20:T23T", ErrColumnCoordinatesAtTwoSide},
		{"T20T:T23", ErrColumnCoordinatesAtTwoSide},
		{"34QW:43Y", ErrAlphabetCharacterInRowNumber},
		{"34Q:43YY", ErrAlphabetCharacterInRowNumber},
		{"34QW:5jkl3Y", ErrAlphabetCharacterInRowNumber},
		{"32M:PP21", ErrAlphabetCharacterInRowNumber},
		{"31A:0T", ErrRowNumberIsZero},
		{"0A:0Z", ErrRowNumberIsZero},
		{"0A:1A", ErrRowNumberIsZero},
		{"0A:ZZ", ErrNoRowCoordinate},
		{"0A:Z5Z", ErrColumnCoordinatesAtTwoSide},
		{"0A:44", ErrNoColumnCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := Analyze(tc.expr, 99, 26)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyze_RangeChecks(t *testing.T) {
	cases := []struct {
		expr          string
		nRow, nColumn int
		want          *Error
	}{
		{"35P:35P", 99, 26, ErrSameCoordinates},
		{"P35:P35", 99, 26, ErrSameCoordinates},
		{"35P:P35", 99, 26, ErrSameCoordinates},
		{"p45:45P", 99, 26, ErrSameCoordinates},
		{"78T:32D", 99, 26, ErrCoordinatesWrongOrder},
		{"99C:98F", 99, 26, ErrCoordinatesWrongOrder},
		{"32D:u18", 99, 26, ErrCoordinatesWrongOrder},
		{"1b:1A", 99, 26, ErrCoordinatesWrongOrder},
		{"w87:87h", 99, 26, ErrCoordinatesWrongOrder},
		{"5V:1A", 99, 26, ErrCoordinatesWrongOrder},
		{"99Z", 13, 26, ErrRowNumberOutOfRange},
		{"36c", 23, 9, ErrRowNumberOutOfRange},
		{"1A:56L", 35, 26, ErrRowNumberOutOfRange},
		{"23d:34k", 1, 1, ErrRowNumberOutOfRange},
		{"A123456789012345678901234567890", 99, 26, ErrRowNumberOutOfRange},
		{"1a:99Z", 99, 23, ErrColumnNumberOutOfRange},
		{"23o", 99, 14, ErrColumnNumberOutOfRange},
		{"78q", 87, 10, ErrColumnNumberOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := Analyze(tc.expr, tc.nRow, tc.nColumn)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyze_SameCoordinatesBeforeBounds(t *testing.T) {
	// same-coordinate detection happens before the bounds check
	_, err := Analyze("50A:50A", 10, 26)
	assert.ErrorIs(t, err, ErrSameCoordinates)
}

func TestError_KindAndMessage(t *testing.T) {
	_, err := Analyze("7Y::6C", 99, 26)
	require.Error(t, err)

	k, ok := KindOf(fmt.Errorf("override: %w", err))
	require.True(t, ok)
	assert.Equal(t, MoreThanOneColon, k)
	assert.Equal(t, "range", CoordinatesWrongOrder.Class())
	assert.Equal(t, "syntax", k.Class())
	assert.Equal(t, "argument", OutOfRange.Class())
	assert.Contains(t, err.Error(), "MoreThanOneColon")
	assert.Contains(t, err.Error(), "7Y::6C")

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, errors.Is(err, ErrSameCoordinates))
}

func TestKinds_AllNamed(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 17)
	seen := map[string]bool{}
	for _, k := range kinds {
		name := k.String()
		assert.NotContains(t, name, "Kind(")
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "12A", Coordinate{11, 0}.String())
	assert.Equal(t, "99Z", Coordinate{98, 25}.String())
	assert.True(t, Coordinate{0, 5}.Less(Coordinate{1, 0}))
	assert.True(t, Coordinate{1, 0}.Less(Coordinate{1, 1}))
	assert.False(t, Coordinate{1, 1}.Less(Coordinate{1, 1}))
}
