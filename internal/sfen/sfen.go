// Package sfen encodes and decodes positions in SFEN, the single-line text
// form consumed by USI engines and most shogi tooling.
package sfen

import (
	"errors"
	"fmt"
	"strings"

	"shogi-core/internal/domain"
)

// Startpos is the standard initial position, to move 先手.
const Startpos = "lnsgkgsnl/1r5b1/ppppppppp/9/9/9/PPPPPPPPP/1B5R1/LNSGKGSNL b - 1"

// Encode renders pos as SFEN. Rows run rank 1..9 top to bottom, files 9..1
// within a row; empty runs are length digits; Black pieces are uppercase,
// White lowercase, promoted forms prefixed with '+'.
func Encode(pos *domain.Position, moveNumber int) string {
	rows := make([]string, 0, 9)
	for r := 1; r <= 9; r++ {
		rows = append(rows, encodeRank(pos, r))
	}
	turn := "b"
	if pos.Turn == domain.White {
		turn = "w"
	}
	hand := encodeHands(pos)
	if hand == "" {
		hand = "-"
	}
	return fmt.Sprintf("%s %s %s %d", strings.Join(rows, "/"), turn, hand, moveNumber)
}

func encodeRank(pos *domain.Position, rank int) string {
	var b strings.Builder
	empty := 0
	flushEmpty := func() {
		if empty > 0 {
			fmt.Fprintf(&b, "%d", empty)
			empty = 0
		}
	}
	for f := 9; f >= 1; f-- {
		pc := pos.Board[f][rank]
		if pc == nil {
			empty++
			continue
		}
		flushEmpty()
		text := string(pc.Kind)
		if pc.Prom {
			text = "+" + text
		}
		if pc.Color == domain.White {
			text = strings.ToLower(text)
		}
		b.WriteString(text)
	}
	flushEmpty()
	return b.String()
}

// encodeHands: Black then White, each in the order R,B,G,S,N,L,P, the count
// prefix omitted when 1.
func encodeHands(pos *domain.Position) string {
	var b strings.Builder
	for _, c := range []domain.Color{domain.Black, domain.White} {
		for _, kind := range domain.DroppableKinds {
			n := pos.HandCount(c, kind)
			if n < 1 {
				continue
			}
			if n > 1 {
				fmt.Fprintf(&b, "%d", n)
			}
			letter := string(kind)
			if c == domain.White {
				letter = strings.ToLower(letter)
			}
			b.WriteString(letter)
		}
	}
	return b.String()
}

// Decode parses an SFEN string (move-number field optional) back into a
// position.
func Decode(s string) (domain.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return domain.Position{}, fmt.Errorf("invalid sfen: %s", s)
	}
	pos := domain.NewPositionEmpty()
	if fields[1] == "w" {
		pos.Turn = domain.White
	}
	if err := decodeBoard(fields[0], &pos); err != nil {
		return domain.Position{}, err
	}
	if err := decodeHands(fields[2], &pos); err != nil {
		return domain.Position{}, err
	}
	return pos, nil
}

func decodeBoard(board string, pos *domain.Position) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 9 {
		return fmt.Errorf("invalid board ranks: %d", len(ranks))
	}
	for rankIdx, rankText := range ranks {
		file := 9
		runes := []rune(rankText)
		for i := 0; i < len(runes); i++ {
			r := runes[i]
			if r >= '1' && r <= '9' {
				file -= int(r - '0')
				continue
			}
			promoted := false
			if r == '+' {
				promoted = true
				i++
				if i >= len(runes) {
					return errors.New("dangling promotion marker")
				}
				r = runes[i]
			}
			color := domain.Black
			if r >= 'a' && r <= 'z' {
				color = domain.White
				r = r - 'a' + 'A'
			}
			kind, ok := letterKind(r)
			if !ok {
				return fmt.Errorf("unknown sfen piece %c", r)
			}
			if file < 1 {
				return errors.New("too many files in rank")
			}
			pos.SetPieceAt(domain.Square{File: file, Rank: rankIdx + 1},
				&domain.Piece{Color: color, Kind: kind, Prom: promoted})
			file--
		}
		if file != 0 {
			return fmt.Errorf("rank %d does not have 9 files", rankIdx+1)
		}
	}
	return nil
}

func decodeHands(hand string, pos *domain.Position) error {
	if hand == "-" {
		return nil
	}
	count := 0
	for _, r := range hand {
		if r >= '0' && r <= '9' {
			count = count*10 + int(r-'0')
			continue
		}
		if count == 0 {
			count = 1
		}
		color := domain.Black
		if r >= 'a' && r <= 'z' {
			color = domain.White
			r = r - 'a' + 'A'
		}
		kind, ok := letterKind(r)
		if !ok || kind == 'K' {
			return fmt.Errorf("unknown hand piece %c", r)
		}
		pos.SetHand(color, kind, pos.HandCount(color, kind)+count)
		count = 0
	}
	if count != 0 {
		return errors.New("trailing hand count")
	}
	return nil
}

func letterKind(r rune) (domain.PieceKind, bool) {
	switch r {
	case 'P', 'L', 'N', 'S', 'G', 'B', 'R', 'K':
		return domain.PieceKind(r), true
	default:
		return 0, false
	}
}
