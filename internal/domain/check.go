package domain

// FindKing returns the square of the given side's king, if present.
func FindKing(pos *Position, c Color) (Square, bool) {
	for f := 1; f <= 9; f++ {
		for r := 1; r <= 9; r++ {
			pc := pos.Board[f][r]
			if pc != nil && pc.Color == c && pc.Kind == 'K' {
				return Square{File: f, Rank: r}, true
			}
		}
	}
	return Square{}, false
}

// IsInCheck reports whether c's king is attacked by any opposing piece.
// A board without that king is never in check.
func IsInCheck(pos *Position, c Color) bool {
	kingSq, ok := FindKing(pos, c)
	if !ok {
		return false
	}
	for f := 1; f <= 9; f++ {
		for r := 1; r <= 9; r++ {
			pc := pos.Board[f][r]
			if pc == nil || pc.Color == c {
				continue
			}
			if CanReach(pos, Square{File: f, Rank: r}, kingSq, *pc) {
				return true
			}
		}
	}
	return false
}
