package domain

// NyugyokuState is the entering-king declaration tally for one side.
type NyugyokuState struct {
	Score         int
	PiecesInZone  int // non-king pieces on the board inside the zone
	KingInZone    bool
	CanDeclare    bool
	RequiredScore int
}

// 大駒（飛角とその成駒）は5点、玉以外のその他は1点
func pieceValue(kind PieceKind) int {
	switch kind {
	case 'R', 'B':
		return 5
	default:
		return 1
	}
}

// Nyugyoku computes declaration eligibility and score for c. Scoring only:
// turn and check gating for an actual declared win is the caller's job.
func Nyugyoku(pos *Position, c Color) NyugyokuState {
	st := NyugyokuState{RequiredScore: 27}
	if c == Black {
		st.RequiredScore = 28
	}

	zoneLo, zoneHi := 1, 3
	if c == White {
		zoneLo, zoneHi = 7, 9
	}

	for f := 1; f <= 9; f++ {
		for r := zoneLo; r <= zoneHi; r++ {
			pc := pos.Board[f][r]
			if pc == nil || pc.Color != c {
				continue
			}
			if pc.Kind == 'K' {
				st.KingInZone = true
				continue
			}
			st.Score += pieceValue(pc.Kind)
			st.PiecesInZone++
		}
	}

	// hand pieces count toward the score only
	for kind, n := range pos.Hands[c] {
		st.Score += n * pieceValue(kind)
	}

	st.CanDeclare = st.KingInZone && st.PiecesInZone >= 10 && st.Score >= st.RequiredScore
	return st
}
