package repository

import (
	"strings"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
)

// seatTupleClause builds "(row_index, column_index) IN ((?,?),(?,?)...)" and
// its arguments for the given coordinates.
func seatTupleClause(seats []coorexpr.Coordinate) (string, []interface{}) {
	var b strings.Builder
	args := make([]interface{}, 0, len(seats)*2)
	b.WriteString("(row_index, column_index) IN (")
	for i, s := range seats {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(?, ?)")
		args = append(args, s.Row, s.Column)
	}
	b.WriteString(")")
	return b.String(), args
}

// dedupe drops repeated coordinates while keeping the first occurrence order.
func dedupe(seats []coorexpr.Coordinate) []coorexpr.Coordinate {
	seen := make(map[coorexpr.Coordinate]bool, len(seats))
	out := make([]coorexpr.Coordinate, 0, len(seats))
	for _, s := range seats {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
