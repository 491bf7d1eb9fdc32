package domain

type Promotion int

const (
	PromoteNone Promotion = iota // 成れない
	PromoteCan                   // 成・不成を選べる
	PromoteMust                  // 成が強制
)

// PromotionStatus classifies a board move of pc from from to to.
// The result is advisory for callers (e.g. prompting a UI choice); IsLegal
// enforces it.
func PromotionStatus(pc Piece, from, to Square) Promotion {
	if pc.Prom || !promotable[pc.Kind] {
		return PromoteNone
	}
	// a piece that would never move again must promote
	if isDeadSquare(pc.Kind, to.Rank, pc.Color) {
		return PromoteMust
	}
	if inPromotionZone(pc.Color, from) || inPromotionZone(pc.Color, to) {
		return PromoteCan
	}
	return PromoteNone
}

// inPromotionZone: the opponent's home three ranks.
// 先手：敵陣は 1〜3段目、後手：敵陣は 7〜9段目。
func inPromotionZone(c Color, sq Square) bool {
	if c == Black {
		return sq.Rank >= 1 && sq.Rank <= 3
	}
	return sq.Rank >= 7 && sq.Rank <= 9
}
