package domain

import "testing"

func TestParseNumeric_Move4(t *testing.T) {
	tag, from, to, prom, err := ParseNumeric("7776")
	if err != nil {
		t.Fatal(err)
	}
	if tag != "move" || from == nil || to.File != 7 || to.Rank != 6 || prom {
		t.Fatalf("unexpected: tag=%s from=%v to=%v prom=%v", tag, from, to, prom)
	}
}

func TestParseNumeric_Move5Promote(t *testing.T) {
	tag, _, _, prom, err := ParseNumeric("77761")
	if err != nil {
		t.Fatal(err)
	}
	if tag != "move" || !prom {
		t.Fatalf("unexpected: tag=%s prom=%v", tag, prom)
	}
}

func TestParseNumeric_Drop(t *testing.T) {
	tag, from, to, prom, err := ParseNumeric("076")
	if err != nil {
		t.Fatal(err)
	}
	if tag != "drop_pick" || from != nil || to.File != 7 || to.Rank != 6 || prom {
		t.Fatalf("unexpected: tag=%s from=%v to=%v prom=%v", tag, from, to, prom)
	}
}

func TestParseNumeric_Rejects(t *testing.T) {
	for _, in := range []string{"", "77", "970", "7707", "77762", "176"} {
		if _, _, _, _, err := ParseNumeric(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestDropCandidates_FiltersByLegality(t *testing.T) {
	pos := NewPositionEmpty()
	pos.SetPieceAt(Square{File: 9, Rank: 9}, &Piece{Color: Black, Kind: 'K'})
	pos.SetPieceAt(Square{File: 5, Rank: 1}, &Piece{Color: White, Kind: 'K'})
	pos.SetHand(Black, 'P', 1)
	pos.SetHand(Black, 'N', 1)
	pos.SetHand(Black, 'G', 1)
	pos.SetPieceAt(Square{File: 7, Rank: 5}, &Piece{Color: Black, Kind: 'P'})

	// rank 2 on file 7: pawn out (nifu anyway), knight out (dead square)
	got := DropCandidates(&pos, Black, Square{File: 7, Rank: 2})
	if len(got) != 1 || got[0] != 'G' {
		t.Fatalf("candidates: got %v, want [G]", got)
	}

	// occupied square has no candidates
	if got := DropCandidates(&pos, Black, Square{File: 7, Rank: 5}); len(got) != 0 {
		t.Fatalf("occupied square: got %v, want none", got)
	}
}
