package domain

var promotable = map[PieceKind]bool{
	'P': true, 'L': true, 'N': true, 'S': true, 'B': true, 'R': true,
}

// Apply plays move for mover and returns the resulting position. It is pure
// and total: pos is left untouched, and shape-valid but illegal input yields
// a well-formed (if meaningless) position rather than a panic. Callers are
// expected to run IsLegal first.
func Apply(pos Position, m Move, mover Color) Position {
	next := pos.Clone()

	if m.IsDrop() {
		if n := next.HandCount(mover, m.Kind); n > 0 {
			next.SetHand(mover, m.Kind, n-1)
		}
		next.SetPieceAt(m.To, &Piece{Color: mover, Kind: m.Kind, Prom: false})
		next.Turn = mover.Opponent()
		return next
	}

	pc := next.PieceAt(*m.From)
	if pc == nil {
		next.Turn = mover.Opponent()
		return next
	}

	// capture: the piece changes owner and reverts to its base kind
	if dest := next.PieceAt(m.To); dest != nil && dest.Color != mover {
		next.SetHand(mover, dest.Kind, next.HandCount(mover, dest.Kind)+1)
	}

	moved := *pc
	if m.Promote && promotable[moved.Kind] {
		moved.Prom = true
	}
	// promotion is one-way: an already promoted piece stays promoted
	next.SetPieceAt(*m.From, nil)
	next.SetPieceAt(m.To, &moved)
	next.Turn = mover.Opponent()
	return next
}
