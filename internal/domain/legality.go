package domain

// IsLegal reports whether mover may play m in pos. Illegality is an
// ordinary false result, never an error: out-of-range coordinates, empty
// origins and the rest are all plain control flow.
//
// checkNoPawnMate enables the pawn-drop-checkmate exclusion (打ち歩詰め).
// The enumeration used to test that exclusion calls back into IsLegal with
// the flag off; without the guard the test would recurse forever.
func IsLegal(pos *Position, mover Color, m Move, checkNoPawnMate bool) bool {
	if !m.To.InBoard() {
		return false
	}
	if dest := pos.PieceAt(m.To); dest != nil && dest.Color == mover {
		return false
	}

	if m.IsDrop() {
		if !isLegalDrop(pos, mover, m) {
			return false
		}
	} else {
		if !isLegalBoardMove(pos, mover, m) {
			return false
		}
	}

	next := Apply(*pos, m, mover)
	if IsInCheck(&next, mover) {
		return false
	}

	if checkNoPawnMate && m.IsDrop() && m.Kind == 'P' {
		opp := mover.Opponent()
		if IsInCheck(&next, opp) && !HasAnyLegalMove(&next, opp) {
			return false
		}
	}
	return true
}

func isLegalDrop(pos *Position, mover Color, m Move) bool {
	if m.Promote {
		return false
	}
	if pos.PieceAt(m.To) != nil {
		return false
	}
	if pos.HandCount(mover, m.Kind) < 1 {
		return false
	}
	// 二歩
	if m.Kind == 'P' && hasUnpromotedPawnOnFile(pos, mover, m.To.File) {
		return false
	}
	// 行き所のない駒は打てない
	return !isDeadSquare(m.Kind, m.To.Rank, mover)
}

func isLegalBoardMove(pos *Position, mover Color, m Move) bool {
	if !m.From.InBoard() {
		return false
	}
	pc := pos.PieceAt(*m.From)
	if pc == nil || pc.Color != mover {
		return false
	}
	if !CanReach(pos, *m.From, m.To, *pc) {
		return false
	}
	switch PromotionStatus(*pc, *m.From, m.To) {
	case PromoteMust:
		if !m.Promote {
			return false
		}
	case PromoteNone:
		if m.Promote {
			return false
		}
	}
	return true
}

func hasUnpromotedPawnOnFile(pos *Position, c Color, file int) bool {
	for r := 1; r <= 9; r++ {
		pc := pos.Board[file][r]
		if pc != nil && pc.Color == c && pc.Kind == 'P' && !pc.Prom {
			return true
		}
	}
	return false
}

// isDeadSquare reports whether an unpromoted piece of this kind would have
// no legal move left from rank: P/L on the farthest rank, N on the farthest
// two ranks.
func isDeadSquare(kind PieceKind, rank int, c Color) bool {
	last, secondLast := 1, 2
	if c == White {
		last, secondLast = 9, 8
	}
	switch kind {
	case 'P', 'L':
		return rank == last
	case 'N':
		return rank == last || rank == secondLast
	}
	return false
}

// HasAnyLegalMove tries every board move (with and without promotion) and
// every drop for c, and reports whether at least one is legal. The pawn-drop
// mate exclusion is off for the candidates: this function is what that
// exclusion itself is defined in terms of.
func HasAnyLegalMove(pos *Position, c Color) bool {
	for f := 1; f <= 9; f++ {
		for r := 1; r <= 9; r++ {
			pc := pos.Board[f][r]
			if pc == nil || pc.Color != c {
				continue
			}
			from := Square{File: f, Rank: r}
			for tf := 1; tf <= 9; tf++ {
				for tr := 1; tr <= 9; tr++ {
					to := Square{File: tf, Rank: tr}
					if IsLegal(pos, c, NewBoardMove(pc.Kind, from, to, false), false) {
						return true
					}
					if IsLegal(pos, c, NewBoardMove(pc.Kind, from, to, true), false) {
						return true
					}
				}
			}
		}
	}
	for _, kind := range DroppableKinds {
		if pos.HandCount(c, kind) < 1 {
			continue
		}
		for tf := 1; tf <= 9; tf++ {
			for tr := 1; tr <= 9; tr++ {
				if IsLegal(pos, c, NewDrop(kind, Square{File: tf, Rank: tr}), false) {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate: in check with no legal response. Shogi has no separate
// stalemate state; a side with no moves while not in check is simply not
// mated.
func IsCheckmate(pos *Position, c Color) bool {
	return IsInCheck(pos, c) && !HasAnyLegalMove(pos, c)
}
