package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

var reNumeric = regexp.MustCompile(`^\d{3,5}$`)

// ParseNumeric turns terse keyboard input into a move shape:
//   - "7776"  => board move from 77 to 76
//   - "77761" => board move + promote flag
//   - "076"   => drop to 76 (0 + file + rank); the piece kind is resolved
//     by the caller from the hand
func ParseNumeric(s string) (tag string, from *Square, to Square, promote bool, err error) {
	if !reNumeric.MatchString(s) {
		return "", nil, Square{}, false, fmt.Errorf("numeric input must be 3..5 digits")
	}

	switch len(s) {
	case 3:
		// drop: 0 f r
		if s[0] != '0' {
			return "", nil, Square{}, false, fmt.Errorf("3-digit input must start with 0 for drop")
		}
		f, _ := strconv.Atoi(string(s[1]))
		r, _ := strconv.Atoi(string(s[2]))
		if f < 1 || f > 9 || r < 1 || r > 9 {
			return "", nil, Square{}, false, fmt.Errorf("square out of range")
		}
		return "drop_pick", nil, Square{File: f, Rank: r}, false, nil

	case 4, 5:
		ff, _ := strconv.Atoi(string(s[0]))
		fr, _ := strconv.Atoi(string(s[1]))
		tf, _ := strconv.Atoi(string(s[2]))
		tr, _ := strconv.Atoi(string(s[3]))
		if ff < 1 || ff > 9 || fr < 1 || fr > 9 || tf < 1 || tf > 9 || tr < 1 || tr > 9 {
			return "", nil, Square{}, false, fmt.Errorf("square out of range")
		}
		prom := false
		if len(s) == 5 {
			switch s[4] {
			case '1':
				prom = true
			case '0':
				prom = false
			default:
				return "", nil, Square{}, false, fmt.Errorf("5th digit must be 0 or 1")
			}
		}
		fsq := Square{File: ff, Rank: fr}
		tsq := Square{File: tf, Rank: tr}
		return "move", &fsq, tsq, prom, nil
	default:
		return "", nil, Square{}, false, fmt.Errorf("unexpected length")
	}
}

// DropCandidates returns the hand kinds c could legally drop on to.
func DropCandidates(pos *Position, c Color, to Square) []PieceKind {
	out := make([]PieceKind, 0, len(DroppableKinds))
	for _, kind := range DroppableKinds {
		if pos.HandCount(c, kind) < 1 {
			continue
		}
		if IsLegal(pos, c, NewDrop(kind, to), true) {
			out = append(out, kind)
		}
	}
	return out
}
