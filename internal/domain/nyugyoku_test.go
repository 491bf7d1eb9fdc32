package domain

import "testing"

// senteEnteringKing: king on 5一, a rook, a bishop and eight pawns inside
// the zone (10 non-king pieces, 18 points on the board), plus pawns in hand.
func senteEnteringKing(handPawns int) Position {
	pos := NewPositionEmpty()
	pos.SetPieceAt(Square{File: 5, Rank: 1}, &Piece{Color: Black, Kind: 'K'})
	pos.SetPieceAt(Square{File: 1, Rank: 2}, &Piece{Color: Black, Kind: 'R'})
	pos.SetPieceAt(Square{File: 2, Rank: 2}, &Piece{Color: Black, Kind: 'B'})
	for f := 1; f <= 8; f++ {
		pos.SetPieceAt(Square{File: f, Rank: 3}, &Piece{Color: Black, Kind: 'P'})
	}
	pos.SetPieceAt(Square{File: 5, Rank: 9}, &Piece{Color: White, Kind: 'K'})
	pos.SetHand(Black, 'P', handPawns)
	return pos
}

func TestNyugyoku_SenteThreshold(t *testing.T) {
	// 18 board points + 9 hand pawns = 27: one short of sente's 28
	pos := senteEnteringKing(9)
	st := Nyugyoku(&pos, Black)

	if st.RequiredScore != 28 {
		t.Fatalf("sente requires 28, got %d", st.RequiredScore)
	}
	if st.Score != 27 {
		t.Fatalf("score: got %d, want 27", st.Score)
	}
	if st.PiecesInZone != 10 {
		t.Fatalf("piecesInZone: got %d, want 10", st.PiecesInZone)
	}
	if !st.KingInZone {
		t.Fatal("king is inside the zone")
	}
	if st.CanDeclare {
		t.Fatal("27 points must not be declarable for sente")
	}

	// one more hand pawn crosses the bar
	pos = senteEnteringKing(10)
	st = Nyugyoku(&pos, Black)
	if st.Score != 28 || !st.CanDeclare {
		t.Fatalf("28 points must be declarable, got score=%d declare=%v", st.Score, st.CanDeclare)
	}
}

func TestNyugyoku_GoteThreshold(t *testing.T) {
	// mirrored position: gote's bar is 27
	pos := NewPositionEmpty()
	pos.SetPieceAt(Square{File: 5, Rank: 9}, &Piece{Color: White, Kind: 'K'})
	pos.SetPieceAt(Square{File: 1, Rank: 8}, &Piece{Color: White, Kind: 'R'})
	pos.SetPieceAt(Square{File: 2, Rank: 8}, &Piece{Color: White, Kind: 'B'})
	for f := 1; f <= 8; f++ {
		pos.SetPieceAt(Square{File: f, Rank: 7}, &Piece{Color: White, Kind: 'P'})
	}
	pos.SetPieceAt(Square{File: 5, Rank: 1}, &Piece{Color: Black, Kind: 'K'})
	pos.SetHand(White, 'P', 9)

	st := Nyugyoku(&pos, White)
	if st.RequiredScore != 27 {
		t.Fatalf("gote requires 27, got %d", st.RequiredScore)
	}
	if st.Score != 27 || !st.CanDeclare {
		t.Fatalf("27 points must be declarable for gote, got score=%d declare=%v", st.Score, st.CanDeclare)
	}

	pos.SetHand(White, 'P', 8)
	st = Nyugyoku(&pos, White)
	if st.CanDeclare {
		t.Fatal("26 points must not be declarable for gote")
	}
}

func TestNyugyoku_KingOutsideZone(t *testing.T) {
	pos := senteEnteringKing(10)
	pos.SetPieceAt(Square{File: 5, Rank: 1}, nil)
	pos.SetPieceAt(Square{File: 5, Rank: 4}, &Piece{Color: Black, Kind: 'K'})

	st := Nyugyoku(&pos, Black)
	if st.KingInZone || st.CanDeclare {
		t.Fatal("no declaration while the king is outside the zone")
	}
}

func TestNyugyoku_PiecesOutsideZoneDoNotCount(t *testing.T) {
	pos := senteEnteringKing(10)
	// a dragon outside the zone contributes nothing
	pos.SetPieceAt(Square{File: 9, Rank: 5}, &Piece{Color: Black, Kind: 'R', Prom: true})

	st := Nyugyoku(&pos, Black)
	if st.Score != 28 || st.PiecesInZone != 10 {
		t.Fatalf("outside pieces must not count: score=%d pieces=%d", st.Score, st.PiecesInZone)
	}
}

func TestNyugyoku_PromotedMajorsAreFivePoints(t *testing.T) {
	pos := NewPositionEmpty()
	pos.SetPieceAt(Square{File: 5, Rank: 1}, &Piece{Color: Black, Kind: 'K'})
	pos.SetPieceAt(Square{File: 4, Rank: 2}, &Piece{Color: Black, Kind: 'R', Prom: true})
	pos.SetPieceAt(Square{File: 6, Rank: 2}, &Piece{Color: Black, Kind: 'B', Prom: true})

	st := Nyugyoku(&pos, Black)
	if st.Score != 10 {
		t.Fatalf("馬+龍 in zone: got %d, want 10", st.Score)
	}
}

func TestNyugyoku_HandPiecesScoreOnly(t *testing.T) {
	pos := NewPositionEmpty()
	pos.SetPieceAt(Square{File: 5, Rank: 1}, &Piece{Color: Black, Kind: 'K'})
	pos.SetHand(Black, 'R', 1)
	pos.SetHand(Black, 'G', 2)

	st := Nyugyoku(&pos, Black)
	if st.Score != 7 {
		t.Fatalf("hand score: got %d, want 7", st.Score)
	}
	if st.PiecesInZone != 0 {
		t.Fatalf("hand pieces must not count toward piecesInZone, got %d", st.PiecesInZone)
	}
}
