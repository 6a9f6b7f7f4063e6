package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/adventofcode/pkg/crates"
)

// playInterval is the delay between frames while auto-playing.
const playInterval = 250 * time.Millisecond

var (
	crateStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	crateTopStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	replayDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Frames
// =============================================================================

// frame is the yard after one instruction. The first frame has no move.
type frame struct {
	move   *crates.Move
	stacks [][]rune
}

// buildFrames replays moves on a clone of y and records every intermediate
// yard. On failure it returns the frames up to the failing move together with
// the error; y itself is never mutated.
func buildFrames(y *crates.Yard[rune], moves []crates.Move) ([]frame, error) {
	work := y.Clone()
	frames := make([]frame, 0, len(moves)+1)
	frames = append(frames, frame{stacks: work.Snapshot()})

	for i, m := range moves {
		if err := work.Apply(m); err != nil {
			return frames, fmt.Errorf("instruction %d: %w", i+1, err)
		}
		frames = append(frames, frame{move: &moves[i], stacks: work.Snapshot()})
	}
	return frames, nil
}

// renderColumns draws stacks side by side, tops up, with indices underneath:
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
func renderColumns(stacks [][]rune) string {
	height := 0
	for _, s := range stacks {
		height = max(height, len(s))
	}

	var b strings.Builder
	for level := height - 1; level >= 0; level-- {
		var row strings.Builder
		for i, s := range stacks {
			if i > 0 {
				row.WriteByte(' ')
			}
			switch {
			case level >= len(s):
				row.WriteString("   ")
			case level == len(s)-1:
				row.WriteString(crateTopStyle.Render("[" + string(s[level]) + "]"))
			default:
				row.WriteString(crateStyle.Render("[" + string(s[level]) + "]"))
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}

	labels := make([]string, len(stacks))
	for i := range stacks {
		labels[i] = fmt.Sprintf(" %d ", i+1)
		if i+1 >= 10 {
			labels[i] = fmt.Sprintf("%d ", i+1)
		}
	}
	b.WriteString(replayDim.Render(strings.TrimRight(strings.Join(labels, " "), " ")))
	return b.String()
}

// =============================================================================
// ReplayModel - Interactive step-through of a crate replay
// =============================================================================

type tickMsg struct{}

// ReplayModel is the bubbletea model for stepping through a replay.
type ReplayModel struct {
	Title   string
	Frames  []frame
	Failure error
	Cursor  int
	Playing bool
}

// NewReplayModel creates a replay model positioned at the initial yard.
func NewReplayModel(title string, frames []frame, failure error) ReplayModel {
	return ReplayModel{Title: title, Frames: frames, Failure: failure}
}

func (m ReplayModel) Init() tea.Cmd {
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(playInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m ReplayModel) last() int {
	return len(m.Frames) - 1
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.Playing = false
			if m.Cursor < m.last() {
				m.Cursor++
			}
		case "left", "h", "b":
			m.Playing = false
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "home", "g":
			m.Playing = false
			m.Cursor = 0
		case "end", "G":
			m.Playing = false
			m.Cursor = m.last()
		case " ", "space", "p":
			if m.Cursor == m.last() {
				m.Cursor = 0
			}
			m.Playing = !m.Playing
			if m.Playing {
				return m, tick()
			}
		}
	case tickMsg:
		if !m.Playing {
			return m, nil
		}
		if m.Cursor < m.last() {
			m.Cursor++
		}
		if m.Cursor == m.last() {
			m.Playing = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m ReplayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(replayDim.Render("←/→ step  space play  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Frames) == 0 {
		return b.String()
	}
	f := m.Frames[m.Cursor]

	step := fmt.Sprintf("step %d/%d", m.Cursor, m.last())
	if f.move != nil {
		step += "  " + StyleHighlight.Render(f.move.String())
	} else {
		step += "  " + replayDim.Render("initial yard")
	}
	b.WriteString(step)
	b.WriteString("\n\n")
	b.WriteString(renderColumns(f.stacks))
	b.WriteString("\n")

	if m.Cursor == m.last() && m.Failure != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render(iconError) + " " + m.Failure.Error())
		b.WriteString("\n")
	}

	return b.String()
}
