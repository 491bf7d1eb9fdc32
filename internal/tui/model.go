package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shogi-core/internal/domain"
	"shogi-core/internal/kif"
	"shogi-core/internal/sfen"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type Model struct {
	game    *domain.Game
	viewPly int // which ply is displayed; moves entered here truncate/branch

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

var reNumericInput = regexp.MustCompile(`^\d{3,5}$`)

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "command..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		game: domain.NewGame(domain.NewPositionHirate()),
		m:    modeNormal,
		input: ti,
		logLines: []string{
			"ready (press i to input command, ? for help)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			case "left":
				m.gotoPly(m.viewPly - 1)
				return m, nil
			case "right":
				m.gotoPly(m.viewPly + 1)
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				cmdline := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if cmdline != "" {
					m.execCommand(cmdline)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	// 数字入力（7776 / 77761 / 076）はコマンドより先に処理
	if reNumericInput.MatchString(line) {
		m.execNumeric(line)
		return
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "setup":
		m.game = domain.NewGame(domain.NewPositionHirate())
		m.viewPly = 0
		m.appendLog("setup hirate")

	case "clear", "new", "reset":
		m.game = domain.NewGame(domain.NewPositionEmpty())
		m.viewPly = 0
		m.appendLog("cleared")

	case "sfen":
		if len(parts) == 1 {
			pos := m.viewPosition()
			m.appendLog(sfen.Encode(&pos, m.viewPly+1))
			return
		}
		pos, err := sfen.Decode(strings.Join(parts[1:], " "))
		if err != nil {
			m.appendLog(fmt.Sprintf("sfen load failed: %v", err))
			return
		}
		m.game = domain.NewGame(pos)
		m.viewPly = 0
		m.appendLog("position loaded from sfen")

	case "undo":
		if !m.game.Undo() {
			m.appendLog("nothing to undo")
			return
		}
		m.viewPly = len(m.game.Moves)
		m.appendLog("undone")

	case "goto":
		if len(parts) != 2 {
			m.appendLog("usage: goto <ply>")
			return
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			m.appendLog("usage: goto <ply>")
			return
		}
		m.gotoPly(n)

	case "nyugyoku":
		pos := m.viewPosition()
		for _, c := range []domain.Color{domain.Black, domain.White} {
			st := domain.Nyugyoku(&pos, c)
			m.appendLog(fmt.Sprintf("%s: score=%d pieces=%d kingInZone=%v declare=%v (need %d)",
				sideLabel(c), st.Score, st.PiecesInZone, st.KingInZone, st.CanDeclare, st.RequiredScore))
		}

	case "mate":
		pos := m.viewPosition()
		m.appendLog(fmt.Sprintf("%s: check=%v checkmate=%v",
			sideLabel(pos.Turn), domain.IsInCheck(&pos, pos.Turn), domain.IsCheckmate(&pos, pos.Turn)))

	case "kif":
		if len(parts) != 2 {
			m.appendLog("usage: kif <path>")
			return
		}
		rec := kif.GameRecord{
			Initial: m.game.Initial,
			Moves:   m.game.Moves,
		}
		text := kif.Encode(rec, kif.DefaultOptions())
		if err := kif.WriteFile(parts[1], text); err != nil {
			m.appendLog(fmt.Sprintf("kif export failed: %v", err))
			return
		}
		m.appendLog("kif written: " + parts[1])

	case "?", "help":
		m.appendLog("7776 move / 77761 promote / 076 drop / setup clear sfen kif undo goto nyugyoku mate q")

	default:
		m.appendLog(fmt.Sprintf("unknown command: %s", parts[0]))
	}
}

func (m *Model) execNumeric(s string) {
	tag, from, to, promote, err := domain.ParseNumeric(s)
	if err != nil {
		m.appendLog(fmt.Sprintf("invalid numeric: %v", err))
		return
	}

	// entering a move while viewing an earlier ply branches from there
	if m.viewPly < len(m.game.Moves) {
		m.game.Truncate(m.viewPly)
		m.appendLog(fmt.Sprintf("branched at ply %d", m.viewPly))
	}

	pos := m.viewPosition()

	switch tag {
	case "drop_pick":
		cands := domain.DropCandidates(&pos, pos.Turn, to)
		if len(cands) == 0 {
			m.appendLog(fmt.Sprintf("drop: no candidates to=%v", to))
			return
		}
		if len(cands) > 1 {
			m.appendLog(fmt.Sprintf("drop ambiguous at %v: candidates=%s", to, kindsString(cands)))
			return
		}
		mv := domain.NewDrop(cands[0], to)
		if err := m.game.Play(mv); err != nil {
			m.appendLog(fmt.Sprintf("drop failed: %v", err))
			return
		}
		m.viewPly = len(m.game.Moves)
		m.appendLog(fmt.Sprintf("drop %c to %v", cands[0], to))
		m.logStatus()

	case "move":
		pc := pos.PieceAt(*from)
		if pc == nil {
			m.appendLog(fmt.Sprintf("no piece at from: %v", *from))
			return
		}
		status := domain.PromotionStatus(*pc, *from, to)
		if status == domain.PromoteMust && !promote {
			promote = true
			m.appendLog("promotion is forced here")
		}
		mv := domain.NewBoardMove(pc.Kind, *from, to, promote)
		if !domain.IsLegal(&pos, pos.Turn, mv, true) {
			m.appendLog(fmt.Sprintf("illegal: %v->%v promote=%v", *from, to, promote))
			return
		}
		if status == domain.PromoteCan && !promote {
			m.appendLog("promotion available (append 1 to promote)")
		}
		if err := m.game.Play(mv); err != nil {
			m.appendLog(fmt.Sprintf("move failed: %v", err))
			return
		}
		m.viewPly = len(m.game.Moves)
		m.appendLog(fmt.Sprintf("move %v->%v promote=%v", *from, to, promote))
		m.logStatus()

	default:
		m.appendLog(fmt.Sprintf("unknown numeric tag: %s", tag))
	}
}

// logStatus reports check/checkmate for the side now to move.
func (m *Model) logStatus() {
	pos := m.viewPosition()
	if domain.IsCheckmate(&pos, pos.Turn) {
		m.appendLog(fmt.Sprintf("詰み: %s loses", sideLabel(pos.Turn)))
		return
	}
	if domain.IsInCheck(&pos, pos.Turn) {
		m.appendLog(fmt.Sprintf("王手: %s", sideLabel(pos.Turn)))
	}
}

func (m *Model) gotoPly(n int) {
	if n < 0 || n > len(m.game.Moves) {
		m.appendLog(fmt.Sprintf("ply out of range: %d", n))
		return
	}
	m.viewPly = n
	m.appendLog(fmt.Sprintf("viewing ply %d", n))
}

// viewPosition replays up to the displayed ply; a corrupted history shows
// the last good position instead of crashing the UI.
func (m *Model) viewPosition() domain.Position {
	pos, err := m.game.PositionAt(m.viewPly)
	if err != nil {
		m.appendLog(fmt.Sprintf("replay stopped: %v", err))
	}
	return pos
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func sideLabel(c domain.Color) string {
	if c == domain.Black {
		return "先手"
	}
	return "後手"
}

func kindsString(kinds []domain.PieceKind) string {
	var b strings.Builder
	for i, k := range kinds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(k))
	}
	return b.String()
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}

	pos, _ := m.game.PositionAt(m.viewPly)
	header := titleStyle.Render(fmt.Sprintf("shogi-core  ply:%d/%d  turn:%s  mode:%s",
		m.viewPly, len(m.game.Moves), sideLabel(pos.Turn), modeStr))

	boardBox := boxStyle.Render(RenderBoard(&pos))

	logHeight := max(5, m.height-20)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter command"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + boardBox + "\n" + logBox + "\n" + inputBox + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
