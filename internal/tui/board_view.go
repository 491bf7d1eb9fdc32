package tui

import (
	"strings"

	"shogi-core/internal/domain"
)

// RenderBoard renders a position in a fixed-width grid.
// Coordinate: [File 9..1] x [Rank 1..9] (KIF-style).
// We intentionally keep it plain and stable for UX/readability.
func RenderBoard(pos *domain.Position) string {
	var b strings.Builder
	b.WriteString("    9  8  7  6  5  4  3  2  1\n")
	b.WriteString("  +---------------------------+\n")

	for r := 1; r <= 9; r++ {
		b.WriteString(" ")
		b.WriteByte(byte('0' + r))
		b.WriteString("|")
		for f := 9; f >= 1; f-- {
			b.WriteString(cell(pos.PieceAt(domain.Square{File: f, Rank: r})))
		}
		b.WriteString("|\n")
	}

	b.WriteString("  +---------------------------+\n")
	b.WriteString("  ▽持駒: " + handLine(pos, domain.White) + "\n")
	b.WriteString("  ▲持駒: " + handLine(pos, domain.Black) + "\n")
	return b.String()
}

// cell returns a fixed-width 3-char cell: side marker, kind letter, and a
// '+' for promoted pieces.
func cell(p *domain.Piece) string {
	if p == nil {
		return " . "
	}
	tri := "▲"
	if p.Color == domain.White {
		tri = "▽"
	}
	s := tri + string(p.Kind)
	if p.Prom {
		return s + "+"
	}
	return s + " "
}

func handLine(pos *domain.Position, c domain.Color) string {
	var b strings.Builder
	for _, kind := range domain.DroppableKinds {
		n := pos.HandCount(c, kind)
		if n < 1 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(kind))
		if n > 1 {
			b.WriteByte('x')
			if n >= 10 {
				b.WriteByte(byte('0' + n/10))
			}
			b.WriteByte(byte('0' + n%10))
		}
	}
	if b.Len() == 0 {
		return "なし"
	}
	return b.String()
}
