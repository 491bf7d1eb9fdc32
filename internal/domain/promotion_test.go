package domain

import "testing"

func TestPromotionStatus_GoldKingAndPromotedNever(t *testing.T) {
	from, to := Square{File: 5, Rank: 4}, Square{File: 5, Rank: 3}

	if got := PromotionStatus(Piece{Color: Black, Kind: 'G'}, from, to); got != PromoteNone {
		t.Fatalf("gold: got %v, want PromoteNone", got)
	}
	if got := PromotionStatus(Piece{Color: Black, Kind: 'K'}, from, to); got != PromoteNone {
		t.Fatalf("king: got %v, want PromoteNone", got)
	}
	if got := PromotionStatus(Piece{Color: Black, Kind: 'S', Prom: true}, from, to); got != PromoteNone {
		t.Fatalf("promoted silver: got %v, want PromoteNone", got)
	}
}

func TestPromotionStatus_MustOnDeadSquares(t *testing.T) {
	// [forced promotion] 先手の桂は1-2段目で成が強制
	n := Piece{Color: Black, Kind: 'N'}
	if got := PromotionStatus(n, Square{File: 5, Rank: 3}, Square{File: 4, Rank: 1}); got != PromoteMust {
		t.Fatalf("knight to rank 1: got %v, want PromoteMust", got)
	}
	if got := PromotionStatus(n, Square{File: 5, Rank: 4}, Square{File: 4, Rank: 2}); got != PromoteMust {
		t.Fatalf("knight to rank 2: got %v, want PromoteMust", got)
	}

	p := Piece{Color: Black, Kind: 'P'}
	if got := PromotionStatus(p, Square{File: 7, Rank: 2}, Square{File: 7, Rank: 1}); got != PromoteMust {
		t.Fatalf("pawn to rank 1: got %v, want PromoteMust", got)
	}

	// 後手側は対称
	wl := Piece{Color: White, Kind: 'L'}
	if got := PromotionStatus(wl, Square{File: 5, Rank: 8}, Square{File: 5, Rank: 9}); got != PromoteMust {
		t.Fatalf("white lance to rank 9: got %v, want PromoteMust", got)
	}
}

func TestPromotionStatus_CanInsideZone(t *testing.T) {
	s := Piece{Color: Black, Kind: 'S'}

	// entering the zone
	if got := PromotionStatus(s, Square{File: 7, Rank: 4}, Square{File: 7, Rank: 3}); got != PromoteCan {
		t.Fatalf("entering zone: got %v, want PromoteCan", got)
	}
	// leaving the zone
	if got := PromotionStatus(s, Square{File: 7, Rank: 3}, Square{File: 6, Rank: 4}); got != PromoteCan {
		t.Fatalf("leaving zone: got %v, want PromoteCan", got)
	}
	// entirely outside
	if got := PromotionStatus(s, Square{File: 7, Rank: 5}, Square{File: 7, Rank: 4}); got != PromoteNone {
		t.Fatalf("outside zone: got %v, want PromoteNone", got)
	}

	// 後手の敵陣は7-9段目
	ws := Piece{Color: White, Kind: 'S'}
	if got := PromotionStatus(ws, Square{File: 3, Rank: 6}, Square{File: 3, Rank: 7}); got != PromoteCan {
		t.Fatalf("white entering zone: got %v, want PromoteCan", got)
	}
}

func TestPromotionStatus_RookNeverForced(t *testing.T) {
	// 飛は1段目でも不成のまま動ける
	r := Piece{Color: Black, Kind: 'R'}
	if got := PromotionStatus(r, Square{File: 5, Rank: 5}, Square{File: 5, Rank: 1}); got != PromoteCan {
		t.Fatalf("rook to rank 1: got %v, want PromoteCan", got)
	}
}
