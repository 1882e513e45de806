package coorexpr

// Expand turns the result of Analyze into every seat it covers, in row-major
// order.  A single coordinate comes back as is.  Two coordinates describe a
// row segment, a column segment or a rectangular block; a block typed from
// top-right to bottom-left is normalized to top-left / bottom-right first.
//
// Expand relies on Analyze having checked order and bounds; it only rejects
// inputs that are not one or two coordinates long.
func Expand(coords []Coordinate) ([]Coordinate, error) {
	switch len(coords) {
	case 1:
		return []Coordinate{coords[0]}, nil
	case 2:
	default:
		return nil, &Error{Kind: InvalidArgument}
	}

	start, end := coords[0], coords[1]

	if start.Row == end.Row {
		out := make([]Coordinate, 0, end.Column-start.Column+1)
		for c := start.Column; c <= end.Column; c++ {
			out = append(out, Coordinate{Row: start.Row, Column: c})
		}
		return out, nil
	}

	if start.Column == end.Column {
		out := make([]Coordinate, 0, end.Row-start.Row+1)
		for r := start.Row; r <= end.Row; r++ {
			out = append(out, Coordinate{Row: r, Column: start.Column})
		}
		return out, nil
	}

	if start.Column > end.Column {
		start.Column, end.Column = end.Column, start.Column
	}
	out := make([]Coordinate, 0, (end.Row-start.Row+1)*(end.Column-start.Column+1))
	for r := start.Row; r <= end.Row; r++ {
		for c := start.Column; c <= end.Column; c++ {
			out = append(out, Coordinate{Row: r, Column: c})
		}
	}
	return out, nil
}

// Seats analyzes expr and expands it in one step.
func Seats(expr string, nRow, nColumn int) ([]Coordinate, error) {
	coords, err := Analyze(expr, nRow, nColumn)
	if err != nil {
		return nil, err
	}
	return Expand(coords)
}
