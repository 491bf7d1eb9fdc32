package kif

import (
	"fmt"
	"time"

	"shogi-core/internal/domain"
)

var fwDigits = map[int]string{
	0: "０", 1: "１", 2: "２", 3: "３", 4: "４", 5: "５", 6: "６", 7: "７", 8: "８", 9: "９",
}

var rankKanji = map[int]string{
	1: "一", 2: "二", 3: "三", 4: "四", 5: "五", 6: "六", 7: "七", 8: "八", 9: "九",
}

var pieceJP = map[domain.PieceKind]string{
	'P': "歩", 'L': "香", 'N': "桂", 'S': "銀", 'G': "金", 'B': "角", 'R': "飛", 'K': "玉",
}

// 成駒の指し手表記（盤面図の一文字表記とは別）
var promotedJP = map[domain.PieceKind]string{
	'P': "と", 'L': "成香", 'N': "成桂", 'S': "成銀", 'B': "馬", 'R': "龍",
}

var NowFunc = func() string {
	return time.Now().Format("2006/01/02 15:04:05")
}

// PieceName returns the move-line name for a piece: 歩/香/…, or と/成香/馬/龍
// for promoted pieces.
func PieceName(pc domain.Piece) string {
	if pc.Prom {
		if name, ok := promotedJP[pc.Kind]; ok {
			return name
		}
	}
	return pieceJP[pc.Kind]
}

// SqToKIF renders a destination as full-width digit + kanji rank, e.g. ７六.
func SqToKIF(file, rank int) string {
	return fwDigits[file] + rankKanji[rank]
}

// SqToParen renders an origin as half-width digits, e.g. (77).
func SqToParen(file, rank int) string {
	return fmt.Sprintf("(%d%d)", file, rank)
}

// clockAnnotation renders the ( m:ss/HH:MM:SS) column from one move's
// think/cumulative seconds.
func clockAnnotation(thisSec, totalSec int) string {
	return fmt.Sprintf("(%2d:%02d/%02d:%02d:%02d)",
		thisSec/60, thisSec%60,
		totalSec/3600, totalSec/60%60, totalSec%60)
}

// countKanji spells a hand count the way KIF hand lines do; 1 is implicit.
func countKanji(n int) string {
	kanji := map[int]string{
		1: "", 2: "二", 3: "三", 4: "四", 5: "五", 6: "六", 7: "七", 8: "八", 9: "九",
		10: "十", 11: "十一", 12: "十二", 13: "十三", 14: "十四", 15: "十五", 16: "十六", 17: "十七", 18: "十八",
	}
	if v, ok := kanji[n]; ok {
		return v
	}
	return fmt.Sprintf("%d", n)
}

// HandsToKanji renders one side's hand for the 持駒 header line.
func HandsToKanji(pos *domain.Position, c domain.Color) string {
	parts := make([]string, 0, len(domain.DroppableKinds))
	for _, kind := range domain.DroppableKinds {
		n := pos.HandCount(c, kind)
		if n < 1 {
			continue
		}
		parts = append(parts, pieceJP[kind]+countKanji(n))
	}
	if len(parts) == 0 {
		return "なし"
	}
	out := parts[0]
	for i := 1; i < len(parts); i++ {
		out += "　" + parts[i]
	}
	out += "　"
	return out
}
