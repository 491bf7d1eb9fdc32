package domain

type Color byte // 'B' or 'W'

const (
	Black Color = 'B' // 先手
	White Color = 'W' // 後手
)

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

type PieceKind byte // 'P','L','N','S','G','B','R','K'

// Piece stores the base kind plus a promotion flag. Promoted display and
// notation forms are derived from the pair, so the two can never disagree.
type Piece struct {
	Color Color
	Kind  PieceKind
	Prom  bool
}

type Square struct {
	File int // 1..9
	Rank int // 1..9
}

func (sq Square) InBoard() bool {
	return sq.File >= 1 && sq.File <= 9 && sq.Rank >= 1 && sq.Rank <= 9
}

// MoveTime carries the clock annotation for one move. It is only consulted
// by notation export, never by legality logic.
type MoveTime struct {
	ThisSec  int // この一手の消費時間
	TotalSec int // 累計消費時間
}

// Move is either a drop (From == nil) or a board move. Use NewDrop /
// NewBoardMove so the two cases stay well-formed.
type Move struct {
	Kind    PieceKind
	From    *Square // nil if drop
	To      Square
	Promote bool

	// annotations for notation export
	IsCheck bool
	Time    *MoveTime
}

func NewDrop(kind PieceKind, to Square) Move {
	return Move{Kind: kind, To: to}
}

func NewBoardMove(kind PieceKind, from, to Square, promote bool) Move {
	f := from
	return Move{Kind: kind, From: &f, To: to, Promote: promote}
}

func (m Move) IsDrop() bool { return m.From == nil }

// Hands[color][kind] = count
type Hands map[Color]map[PieceKind]int

func NewHands() Hands {
	return Hands{
		Black: map[PieceKind]int{},
		White: map[PieceKind]int{},
	}
}

// Position is one snapshot of the game: board, hands and side to move.
// Every transition goes through Apply, which returns a fresh Position;
// a Position handed to the engine is never mutated.
type Position struct {
	Board [10][10]*Piece // [file][rank] 1..9 only
	Hands Hands
	Turn  Color
}

func NewPositionEmpty() Position {
	return Position{
		Hands: NewHands(),
		Turn:  Black,
	}
}

func (p Position) Clone() Position {
	next := Position{Turn: p.Turn, Hands: NewHands()}
	for f := 1; f <= 9; f++ {
		for r := 1; r <= 9; r++ {
			if p.Board[f][r] == nil {
				continue
			}
			pc := *p.Board[f][r]
			next.Board[f][r] = &pc
		}
	}
	for c, m := range p.Hands {
		for k, n := range m {
			next.Hands[c][k] = n
		}
	}
	return next
}

func (p *Position) PieceAt(sq Square) *Piece {
	if !sq.InBoard() {
		return nil
	}
	return p.Board[sq.File][sq.Rank]
}

func (p *Position) SetPieceAt(sq Square, pc *Piece) {
	if !sq.InBoard() {
		return
	}
	if pc == nil {
		p.Board[sq.File][sq.Rank] = nil
		return
	}
	cp := *pc
	p.Board[sq.File][sq.Rank] = &cp
}

func (p *Position) HandCount(c Color, kind PieceKind) int {
	if p.Hands == nil || p.Hands[c] == nil {
		return 0
	}
	return p.Hands[c][kind]
}

func (p *Position) SetHand(c Color, kind PieceKind, n int) {
	if p.Hands == nil {
		p.Hands = NewHands()
	}
	if p.Hands[c] == nil {
		p.Hands[c] = map[PieceKind]int{}
	}
	if n <= 0 {
		delete(p.Hands[c], kind)
		return
	}
	p.Hands[c][kind] = n
}

// DroppableKinds is the hand ordering used throughout notation output.
var DroppableKinds = []PieceKind{'R', 'B', 'G', 'S', 'N', 'L', 'P'}
