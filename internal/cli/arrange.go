package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tkrause/wallery/pkg/gallery"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listAlertStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// arrangeCommand creates the arrange command for interactive frame editing.
func (c *CLI) arrangeCommand() *cobra.Command {
	var step float64

	cmd := &cobra.Command{
		Use:   "arrange [plan.json]",
		Short: "Adjust a plan's frames interactively",
		Long: `Adjust a plan's frames interactively.

A terminal UI lists every frame with its position, size, rotation, and how
many other frames it currently overlaps. Select a frame and nudge it around
the wall; overlap counts update as you move. Save writes the plan back in
place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(args[0], step)
		},
	}

	cmd.Flags().Float64Var(&step, "step", 10, "movement step in wall units")

	return cmd
}

// runArrange loads the plan, runs the TUI, and writes the plan back if saved.
func (c *CLI) runArrange(path string, step float64) error {
	plan, err := gallery.ReadPlanFile(path)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", path, err)
	}
	if len(plan.Frames) == 0 {
		printInfo("Plan has no frames to arrange")
		return nil
	}

	model := NewArrangeModel(plan, step)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("run arrange UI: %w", err)
	}

	m, ok := final.(ArrangeModel)
	if !ok || !m.Saved {
		printInfo("Discarded changes")
		return nil
	}

	plan.Frames = m.Store.Frames()
	if err := gallery.WritePlanFile(plan, path); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}

	printSuccess("Saved %s", path)
	printStats(len(plan.Photos), len(plan.Frames), false)
	return nil
}

// =============================================================================
// ArrangeModel - Interactive frame editing
// =============================================================================

// ArrangeModel is the bubbletea model for interactive frame adjustment.
type ArrangeModel struct {
	Plan   gallery.Plan
	Store  *gallery.FrameStore
	Step   float64
	Cursor int
	Saved  bool
	Dirty  bool
	Height int
	Offset int

	names map[string]gallery.Photo
}

// NewArrangeModel creates a new arrange model from a plan.
func NewArrangeModel(plan gallery.Plan, step float64) ArrangeModel {
	return ArrangeModel{
		Plan:   plan,
		Store:  gallery.NewFrameStore(plan.Frames),
		Step:   step,
		Height: 15,
		names:  plan.Photos.ByID(),
	}
}

func (m ArrangeModel) Init() tea.Cmd {
	return nil
}

func (m ArrangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.Store.Len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "H", "shift+left":
			m = m.nudge(-m.Step, 0)
		case "L", "shift+right":
			m = m.nudge(m.Step, 0)
		case "K", "shift+up":
			m = m.nudge(0, -m.Step)
		case "J", "shift+down":
			m = m.nudge(0, m.Step)
		case "+", "=":
			m = m.scale(1.1)
		case "-":
			m = m.scale(1 / 1.1)
		case "r":
			m = m.rotate(1)
		case "R":
			m = m.rotate(-1)
		case "x":
			m = m.remove()
		case "s":
			m.Saved = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// current returns the frame under the cursor.
func (m ArrangeModel) current() (gallery.Frame, bool) {
	frames := m.Store.Frames()
	if m.Cursor < 0 || m.Cursor >= len(frames) {
		return gallery.Frame{}, false
	}
	return frames[m.Cursor], true
}

// nudge moves the selected frame, clamped to the wall.
func (m ArrangeModel) nudge(dx, dy float64) ArrangeModel {
	frame, ok := m.current()
	if !ok {
		return m
	}
	frame.X = clamp(frame.X+dx, 0, m.Plan.Wall.Width-frame.Width)
	frame.Y = clamp(frame.Y+dy, 0, m.Plan.Wall.Height-frame.Height)
	if err := m.Store.Update(frame); err == nil {
		m.Dirty = true
	}
	return m
}

// scale resizes the selected frame about its top-left corner.
func (m ArrangeModel) scale(factor float64) ArrangeModel {
	frame, ok := m.current()
	if !ok {
		return m
	}
	frame.Width *= factor
	frame.Height *= factor
	if frame.Width < 1 {
		frame.Width = 1
	}
	if frame.Height < 1 {
		frame.Height = 1
	}
	if err := m.Store.Update(frame); err == nil {
		m.Dirty = true
	}
	return m
}

// rotate adjusts the selected frame's tilt by degrees.
func (m ArrangeModel) rotate(degrees float64) ArrangeModel {
	frame, ok := m.current()
	if !ok {
		return m
	}
	frame.Rotation += degrees
	if err := m.Store.Update(frame); err == nil {
		m.Dirty = true
	}
	return m
}

// remove deletes the selected frame.
func (m ArrangeModel) remove() ArrangeModel {
	frame, ok := m.current()
	if !ok {
		return m
	}
	m.Store.Remove(frame.ID)
	m.Dirty = true
	if m.Cursor >= m.Store.Len() && m.Cursor > 0 {
		m.Cursor--
	}
	return m
}

func (m ArrangeModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Arrange · %.0f×%.0f wall · %s", m.Plan.Wall.Width, m.Plan.Wall.Height, m.Plan.Mode)
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  shift+arrows move  +/- size  r/R tilt  x delete  s save  q quit"))
	b.WriteString("\n\n")

	frames := m.Store.Frames()
	end := m.Offset + m.Height
	if end > len(frames) {
		end = len(frames)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := frames[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := "(missing photo)"
		if p, ok := m.names[f.PhotoID]; ok {
			name = p.Name
		}

		overlaps := "—"
		if n := len(m.Store.FindCollisions(f)); n > 0 {
			overlaps = listAlertStyle.Render(fmt.Sprintf("%d", n))
		}

		rows = append(rows, []string{
			cursor,
			name,
			fmt.Sprintf("%.0f, %.0f", f.X, f.Y),
			fmt.Sprintf("%.0f×%.0f", f.Width, f.Height),
			fmt.Sprintf("%+.1f°", f.Rotation),
			overlaps,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Photo", "Position", "Size", "Tilt", "Overlaps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	status := fmt.Sprintf("%d frames", len(frames))
	if pairs := m.Store.CollidingPairs(); len(pairs) > 0 {
		status += " · " + listAlertStyle.Render(fmt.Sprintf("%d overlapping pairs", len(pairs)))
	}
	if m.Dirty {
		status += " · " + StyleWarning.Render("unsaved")
	}
	b.WriteString(listDimStyle.Render(status))
	b.WriteString("\n")

	return b.String()
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
