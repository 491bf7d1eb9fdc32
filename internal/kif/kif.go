// Package kif renders game records in the KIF plain-text notation, the
// format most Japanese shogi tools and sites exchange.
package kif

import (
	"fmt"

	"shogi-core/internal/domain"
	"shogi-core/internal/sfen"
)

// EndReason is the terminal event written after the last real move.
type EndReason string

const (
	EndNone           EndReason = ""
	EndResign         EndReason = "投了"
	EndTimeout        EndReason = "切れ負け"
	EndRepetition     EndReason = "千日手"
	EndFoulRepetition EndReason = "反則負け" // 連続王手の千日手など
	EndNyugyoku       EndReason = "入玉勝ち"
	EndCheckmate      EndReason = "詰み"
)

// TimeSettings is the per-game clock configuration, seconds.
type TimeSettings struct {
	MainSec    int
	ByoyomiSec int
}

// GameRecord is everything the encoder needs: the moves with their clock
// annotations, the initial position, and the terminal state as decided by
// the caller. The engine itself never decides winners.
type GameRecord struct {
	Initial   domain.Position
	Moves     []domain.Move
	SenteName string
	GoteName  string

	Winner    *domain.Color
	EndReason EndReason

	// clock state at the end of the game, used to reconstruct the losing
	// side's think time for 投了/切れ負け lines
	Times               *TimeSettings
	RemainingSec        map[domain.Color]int
	RemainingByoyomiSec map[domain.Color]int
}

type Options struct {
	HeaderComment string
}

func DefaultOptions() Options {
	return Options{HeaderComment: "# ---- shogi-core 棋譜ファイル ----"}
}

// Encode renders the record. The move list is replayed from the initial
// position so that promoted pieces carry their promoted names and 同 is
// emitted for repeated destinations.
func Encode(rec GameRecord, opt Options) string {
	out := make([]string, 0, len(rec.Moves)+16)

	out = append(out, opt.HeaderComment)
	out = append(out, "終了日時："+NowFunc())
	if isHirate(&rec.Initial) {
		out = append(out, "手合割：平手")
	} else {
		out = append(out, "手合割：その他　")
	}
	out = append(out, "先手："+playerName(rec.SenteName, "先手"))
	out = append(out, "後手："+playerName(rec.GoteName, "後手"))
	if !isHirate(&rec.Initial) {
		out = append(out, "後手の持駒："+HandsToKanji(&rec.Initial, domain.White))
		out = append(out, BoardDiagram(&rec.Initial))
		out = append(out, "先手の持駒："+HandsToKanji(&rec.Initial, domain.Black))
		if rec.Initial.Turn == domain.White {
			out = append(out, "後手番")
		}
	}
	out = append(out, "手数----指手---------消費時間--")

	pos := rec.Initial.Clone()
	var prevTo *domain.Square
	lastCum := map[domain.Color]int{domain.Black: 0, domain.White: 0}

	for i, m := range rec.Moves {
		mover := pos.Turn
		out = append(out, moveLine(i+1, m, &pos, prevTo))
		if m.Time != nil {
			lastCum[mover] = m.Time.TotalSec
		}
		to := m.To
		prevTo = &to
		pos = domain.Apply(pos, m, mover)
	}

	if rec.EndReason != EndNone {
		thisSec, totalSec := terminalClock(rec, pos.Turn, lastCum)
		out = append(out, fmt.Sprintf("%4d %s %s",
			len(rec.Moves)+1, string(rec.EndReason), clockAnnotation(thisSec, totalSec)))
	}

	if summary := summaryLine(rec); summary != "" {
		out = append(out, summary)
	}

	return joinLines(out) + "\n"
}

// moveLine renders one ply: index, destination (同 when repeated), piece
// name with 打/成 suffixes, origin for board moves, clock annotation.
func moveLine(idx int, m domain.Move, pos *domain.Position, prevTo *domain.Square) string {
	dst := SqToKIF(m.To.File, m.To.Rank)
	if prevTo != nil && *prevTo == m.To {
		dst = "同"
	}

	var body string
	if m.IsDrop() {
		body = dst + pieceJP[m.Kind] + "打"
	} else {
		name := pieceJP[m.Kind]
		if pc := pos.PieceAt(*m.From); pc != nil {
			name = PieceName(*pc)
		}
		if m.Promote {
			name += "成"
		}
		body = dst + name + SqToParen(m.From.File, m.From.Rank)
	}

	thisSec, totalSec := 0, 0
	if m.Time != nil {
		thisSec, totalSec = m.Time.ThisSec, m.Time.TotalSec
	}
	return fmt.Sprintf("%4d %s %s", idx, body, clockAnnotation(thisSec, totalSec))
}

// terminalClock reconstructs the think time spent on the terminal "move".
// Only 投了 and 切れ負け consume the mover's clock; loser is the side to
// move at that ply. The loser's cumulative main time is recovered from the
// time settings minus the remaining clock, and byoyomi spent on the final
// decision is added on top.
func terminalClock(rec GameRecord, loser domain.Color, lastCum map[domain.Color]int) (int, int) {
	prev := lastCum[loser]
	if rec.EndReason != EndResign && rec.EndReason != EndTimeout {
		return 0, prev
	}
	if rec.Times == nil || rec.RemainingSec == nil {
		return 0, prev
	}
	thisSec := 0
	if spent := rec.Times.MainSec - rec.RemainingSec[loser]; spent > prev {
		thisSec = spent - prev
	}
	if rec.Times.ByoyomiSec > 0 && rec.RemainingByoyomiSec != nil {
		if spent := rec.Times.ByoyomiSec - rec.RemainingByoyomiSec[loser]; spent > 0 {
			thisSec += spent
		}
	}
	return thisSec, prev + thisSec
}

func summaryLine(rec GameRecord) string {
	n := len(rec.Moves)
	if rec.EndReason == EndRepetition {
		return fmt.Sprintf("まで%d手で千日手", n)
	}
	if rec.Winner == nil {
		return ""
	}
	return fmt.Sprintf("まで%d手で%sの勝ち", n, playerLabel(*rec.Winner))
}

func playerLabel(c domain.Color) string {
	if c == domain.Black {
		return "先手"
	}
	return "後手"
}

func playerName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func isHirate(pos *domain.Position) bool {
	return sfen.Encode(pos, 1) == sfen.Startpos
}
