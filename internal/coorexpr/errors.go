package coorexpr

import (
	"errors"
	"fmt"
)

// Kind identifies why a coordinate expression was rejected.  The set is
// closed; callers switch on it to pick a user-facing message.
type Kind int

const (
	// argument-contract failures
	InvalidArgument Kind = iota + 1
	OutOfRange

	// syntax failures
	EmptyCoordinate
	InvalidCharacter
	NoStartingCoordinate
	NoEndingCoordinate
	MoreThanOneColon
	NoRowCoordinate
	NoColumnCoordinate
	ColumnCoordinatesAtTwoSide
	RowCoordinatesAtTwoSide
	AlphabetCharacterInRowNumber
	RowNumberIsZero

	// semantic / range failures
	SameCoordinates
	CoordinatesWrongOrder
	RowNumberOutOfRange
	ColumnNumberOutOfRange
)

var kindNames = map[Kind]string{
	InvalidArgument:              "InvalidArgument",
	OutOfRange:                   "OutOfRange",
	EmptyCoordinate:              "EmptyCoordinate",
	InvalidCharacter:             "InvalidCharacter",
	NoStartingCoordinate:         "NoStartingCoordinate",
	NoEndingCoordinate:           "NoEndingCoordinate",
	MoreThanOneColon:             "MoreThanOneColon",
	NoRowCoordinate:              "NoRowCoordinate",
	NoColumnCoordinate:           "NoColumnCoordinate",
	ColumnCoordinatesAtTwoSide:   "ColumnCoordinatesAtTwoSide",
	RowCoordinatesAtTwoSide:      "RowCoordinatesAtTwoSide",
	AlphabetCharacterInRowNumber: "AlphabetCharacterInRowNumber",
	RowNumberIsZero:              "RowNumberIsZero",
	SameCoordinates:              "SameCoordinates",
	CoordinatesWrongOrder:        "CoordinatesWrongOrder",
	RowNumberOutOfRange:          "RowNumberOutOfRange",
	ColumnNumberOutOfRange:       "ColumnNumberOutOfRange",
}

// Kinds lists every error kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames))
	for k := InvalidArgument; k <= ColumnNumberOutOfRange; k++ {
		out = append(out, k)
	}
	return out
}

// String returns the stable identifier of the kind, e.g. "EmptyCoordinate".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Class groups kinds into "argument", "syntax" and "range".
func (k Kind) Class() string {
	switch {
	case k == InvalidArgument || k == OutOfRange:
		return "argument"
	case k >= EmptyCoordinate && k <= RowNumberIsZero:
		return "syntax"
	case k >= SameCoordinates && k <= ColumnNumberOutOfRange:
		return "range"
	}
	return "unknown"
}

// Error is returned by Analyze, Expand and Seats.  Expr holds the
// normalized expression when one was available.
type Error struct {
	Kind Kind
	Expr string
}

func (e *Error) Error() string {
	if e.Expr == "" {
		return "coordinate expression: " + e.Kind.String()
	}
	return fmt.Sprintf("coordinate expression %q: %s", e.Expr, e.Kind)
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrSameCoordinates) works regardless of Expr.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the kind from err or anything it wraps.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidArgument              = &Error{Kind: InvalidArgument}
	ErrOutOfRange                   = &Error{Kind: OutOfRange}
	ErrEmptyCoordinate              = &Error{Kind: EmptyCoordinate}
	ErrInvalidCharacter             = &Error{Kind: InvalidCharacter}
	ErrNoStartingCoordinate         = &Error{Kind: NoStartingCoordinate}
	ErrNoEndingCoordinate           = &Error{Kind: NoEndingCoordinate}
	ErrMoreThanOneColon             = &Error{Kind: MoreThanOneColon}
	ErrNoRowCoordinate              = &Error{Kind: NoRowCoordinate}
	ErrNoColumnCoordinate           = &Error{Kind: NoColumnCoordinate}
	ErrColumnCoordinatesAtTwoSide   = &Error{Kind: ColumnCoordinatesAtTwoSide}
	ErrRowCoordinatesAtTwoSide      = &Error{Kind: RowCoordinatesAtTwoSide}
	ErrAlphabetCharacterInRowNumber = &Error{Kind: AlphabetCharacterInRowNumber}
	ErrRowNumberIsZero              = &Error{Kind: RowNumberIsZero}
	ErrSameCoordinates              = &Error{Kind: SameCoordinates}
	ErrCoordinatesWrongOrder        = &Error{Kind: CoordinatesWrongOrder}
	ErrRowNumberOutOfRange          = &Error{Kind: RowNumberOutOfRange}
	ErrColumnNumberOutOfRange       = &Error{Kind: ColumnNumberOutOfRange}
)
