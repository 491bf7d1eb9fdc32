package kif

import "shogi-core/internal/domain"

// 盤面図の一文字表記（ぴよ将棋系ツールが読める形）
var kindToDiagram = map[[2]interface{}]string{
	{domain.PieceKind('P'), false}: "歩", {domain.PieceKind('L'), false}: "香",
	{domain.PieceKind('N'), false}: "桂", {domain.PieceKind('S'), false}: "銀",
	{domain.PieceKind('G'), false}: "金", {domain.PieceKind('B'), false}: "角",
	{domain.PieceKind('R'), false}: "飛", {domain.PieceKind('K'), false}: "玉",

	{domain.PieceKind('P'), true}: "と",
	{domain.PieceKind('L'), true}: "杏",
	{domain.PieceKind('N'), true}: "圭",
	{domain.PieceKind('S'), true}: "全",
	{domain.PieceKind('B'), true}: "馬",
	{domain.PieceKind('R'), true}: "竜",
}

// BoardDiagram renders the opening position block emitted for non-hirate
// records, with 'v' marking 後手 pieces.
func BoardDiagram(pos *domain.Position) string {
	lines := make([]string, 0, 12)
	lines = append(lines, "  ９ ８ ７ ６ ５ ４ ３ ２ １")
	lines = append(lines, "+---------------------------+")
	for r := 1; r <= 9; r++ {
		row := ""
		for f := 9; f >= 1; f-- {
			pc := pos.Board[f][r]
			if pc == nil {
				row += " ・"
				continue
			}
			name := kindToDiagram[[2]interface{}{pc.Kind, pc.Prom}]
			cell := " " + name
			if pc.Color == domain.White {
				cell = "v" + name
			}
			row += cell
		}
		lines = append(lines, "|"+row+"|"+rankKanji[r])
	}
	lines = append(lines, "+---------------------------+")
	return joinLines(lines)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	s := lines[0]
	for i := 1; i < len(lines); i++ {
		s += "\n" + lines[i]
	}
	return s
}
