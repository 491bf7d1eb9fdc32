package domain

// forwardStep is the rank direction a piece of this color advances in:
// Black moves toward rank 1, White toward rank 9.
func forwardStep(c Color) int {
	if c == Black {
		return -1
	}
	return 1
}

// CanReach reports whether the piece standing on from could reach to by its
// movement pattern alone. It is purely geometric: destination occupancy by
// the mover's own piece and king safety are the legality checker's job.
func CanReach(pos *Position, from, to Square, pc Piece) bool {
	if !from.InBoard() || !to.InBoard() || from == to {
		return false
	}
	df := to.File - from.File
	dr := to.Rank - from.Rank
	fwd := forwardStep(pc.Color)

	kind := pc.Kind
	if pc.Prom {
		switch kind {
		case 'P', 'L', 'N', 'S':
			// と・成香・成桂・成銀 move as gold
			return goldStep(df, dr, fwd)
		case 'B':
			// 馬: bishop plus one orthogonal step
			if abs(df)+abs(dr) == 1 {
				return true
			}
			return diagonalReach(pos, from, to, df, dr)
		case 'R':
			// 龍: rook plus one diagonal step
			if abs(df) == 1 && abs(dr) == 1 {
				return true
			}
			return orthogonalReach(pos, from, to, df, dr)
		}
	}

	switch kind {
	case 'P':
		return df == 0 && dr == fwd
	case 'L':
		if df != 0 || dr*fwd <= 0 {
			return false
		}
		return !hasObstacle(pos, from, to)
	case 'N':
		// jumps, no path check
		return dr == 2*fwd && abs(df) == 1
	case 'S':
		if abs(df) > 1 || abs(dr) > 1 {
			return false
		}
		// forward, or either diagonal; never sideways or straight back
		return dr == fwd || (abs(df) == 1 && abs(dr) == 1)
	case 'G':
		return goldStep(df, dr, fwd)
	case 'B':
		return diagonalReach(pos, from, to, df, dr)
	case 'R':
		return orthogonalReach(pos, from, to, df, dr)
	case 'K':
		return abs(df) <= 1 && abs(dr) <= 1
	}
	return false
}

// goldStep: one step in the 4 orthogonal directions or the 2 forward
// diagonals. The two backward diagonals are out.
func goldStep(df, dr, fwd int) bool {
	if abs(df) > 1 || abs(dr) > 1 {
		return false
	}
	if abs(df) == 1 && dr == -fwd {
		return false
	}
	return true
}

func diagonalReach(pos *Position, from, to Square, df, dr int) bool {
	if abs(df) != abs(dr) || df == 0 {
		return false
	}
	return !hasObstacle(pos, from, to)
}

func orthogonalReach(pos *Position, from, to Square, df, dr int) bool {
	if df != 0 && dr != 0 {
		return false
	}
	return !hasObstacle(pos, from, to)
}

// hasObstacle walks the straight or diagonal path between from and to,
// exclusive of both endpoints, and reports any occupied square.
func hasObstacle(pos *Position, from, to Square) bool {
	stepF := sign(to.File - from.File)
	stepR := sign(to.Rank - from.Rank)
	f := from.File + stepF
	r := from.Rank + stepR
	for f != to.File || r != to.Rank {
		if pos.Board[f][r] != nil {
			return true
		}
		f += stepF
		r += stepR
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
