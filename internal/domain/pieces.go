package domain

// Pieces lists the eight physical pieces in fixed solve order: seven
// pentominoes plus the 2x3 rectangle hexomino. Together they cover the 41
// cells left after blocking and exposing.
var Pieces = []PieceShape{
	{Name: 'A', Cells: []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},         // V
	{Name: 'B', Cells: []Cell{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}}},         // Z
	{Name: 'C', Cells: []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 2}}},         // Y
	{Name: 'D', Cells: []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}},         // L
	{Name: 'E', Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}}},         // U
	{Name: 'F', Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}}},         // P
	{Name: 'G', Cells: []Cell{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}}},         // N
	{Name: 'H', Cells: []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}}, // 2x3 rectangle
}

// PieceByName looks a piece up by its letter.
func PieceByName(name Label) (PieceShape, bool) {
	for _, p := range Pieces {
		if p.Name == name {
			return p, true
		}
	}
	return PieceShape{}, false
}
