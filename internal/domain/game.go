package domain

import "fmt"

// Game is a move list over an initial position. There is no incremental
// board state: the position at any ply is reconstructed by replaying the
// list from the start, which makes arbitrary-ply views, undo and local
// analysis branches trivial and always consistent.
type Game struct {
	Initial Position
	Moves   []Move
}

func NewGame(initial Position) *Game {
	return &Game{Initial: initial}
}

// PositionAt replays the first ply moves. A move list that turns out to be
// corrupted (e.g. an externally sourced, tampered record) degrades to a
// best-effort view: the last reconstructible position is returned together
// with an error naming the offending ply.
func (g *Game) PositionAt(ply int) (Position, error) {
	if ply < 0 || ply > len(g.Moves) {
		return g.Initial.Clone(), fmt.Errorf("ply out of range: %d", ply)
	}
	pos := g.Initial.Clone()
	for i := 0; i < ply; i++ {
		m := g.Moves[i]
		if !IsLegal(&pos, pos.Turn, m, true) {
			return pos, fmt.Errorf("ply %d: illegal move in history", i+1)
		}
		pos = Apply(pos, m, pos.Turn)
	}
	return pos, nil
}

// Current is the position after every recorded move.
func (g *Game) Current() (Position, error) {
	return g.PositionAt(len(g.Moves))
}

// Play validates m against the current position and appends it. The stored
// move is annotated with whether it delivered check, for notation export.
func (g *Game) Play(m Move) error {
	pos, err := g.Current()
	if err != nil {
		return err
	}
	if !IsLegal(&pos, pos.Turn, m, true) {
		return fmt.Errorf("illegal move at ply %d", len(g.Moves)+1)
	}
	next := Apply(pos, m, pos.Turn)
	m.IsCheck = IsInCheck(&next, next.Turn)
	g.Moves = append(g.Moves, m)
	return nil
}

// Truncate drops every move from ply onward, opening a branch point for a
// local analysis line.
func (g *Game) Truncate(ply int) {
	if ply < 0 {
		ply = 0
	}
	if ply < len(g.Moves) {
		g.Moves = g.Moves[:ply]
	}
}

// Undo removes the last move. Reports false when there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.Moves) == 0 {
		return false
	}
	g.Moves = g.Moves[:len(g.Moves)-1]
	return true
}
