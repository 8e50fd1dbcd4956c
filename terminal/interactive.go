// Package terminal provides a minimal interactive frontend for a flowcanvas
// editing session. It translates tcell key and mouse events into session
// operations: pointer sweeps feed the cut tool, key chords drive duplicate,
// delete, mute, copy, paste, grouping and undo. It deliberately draws only
// a schematic view of the document; canvas layout is not its job.
package terminal

import (
	"fmt"

	"flowcanvas/editor"
	"flowcanvas/geometry"
	"flowcanvas/graph"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// cellScale maps one terminal cell to this many canvas units.
const cellScale = 10

// UI runs the interactive loop around one session.
type UI struct {
	session  *editor.Session
	screen   tcell.Screen
	filename string
	logger   *zap.Logger

	lastMouse graph.Point // Last pointer position in canvas coordinates
	status    string
}

// Run opens a tcell screen and drives the session until the user quits.
// The document is saved back to filename on 's'.
func Run(session *editor.Session, filename string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	ui := &UI{session: session, screen: screen, filename: filename, logger: logger}
	return ui.loop()
}

func (ui *UI) loop() error {
	for {
		ui.draw()
		switch ev := ui.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ui.screen.Sync()
		case *tcell.EventKey:
			if ui.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			ui.handleMouse(ev)
		}
	}
}

// handleKey dispatches one key event. Returns true to quit.
func (ui *UI) handleKey(ev *tcell.EventKey) bool {
	s := ui.session
	switch ev.Rune() {
	case 'q':
		return true
	case 'd':
		s.Duplicate("")
		ui.status = "duplicated selection"
	case 'x':
		s.Delete("")
		ui.status = "deleted selection"
	case 'm':
		s.ToggleMute()
		ui.status = "toggled mute"
	case 'y':
		s.Copy()
		ui.status = "copied selection"
	case 'p':
		s.Paste(ui.lastMouse)
		ui.status = "pasted at pointer"
	case 'g':
		s.CombineGroup()
		ui.status = "combined group"
	case 'G':
		s.ExplodeGroup("")
		ui.status = "exploded group"
	case 'u':
		if s.Undo() {
			ui.status = "undo"
		}
	case 'r':
		if s.Redo() {
			ui.status = "redo"
		}
	case 'c':
		if s.CutArmed() {
			ui.commitCut()
		} else {
			s.ArmCut()
			ui.status = "cut tool armed: sweep across edges"
		}
	case 's':
		if ui.filename != "" {
			if err := graph.Save(ui.filename, s.Graph()); err != nil {
				ui.status = "save failed: " + err.Error()
				ui.logger.Warn("save failed", zap.Error(err))
			} else {
				ui.status = "saved " + ui.filename
			}
		}
	}
	if ev.Key() == tcell.KeyEscape {
		if ui.session.CutArmed() {
			ui.session.DisarmCut() // Cancel without committing
			ui.status = "cut cancelled"
		} else {
			ui.session.Graph().ClearSelection()
			ui.status = ""
		}
	}
	return false
}

// handleMouse tracks the pointer, selects on click, and feeds sweeps to an
// armed cut tool. Releasing the button commits the cut.
func (ui *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := graph.Point{X: float64(x * cellScale), Y: float64(y * cellScale)}
	ui.lastMouse = p

	if ui.session.CutArmed() {
		if ev.Buttons()&tcell.Button1 != 0 {
			if hit := ui.session.SweepCut(p); len(hit) > 0 {
				ui.status = fmt.Sprintf("marked %d edge(s)", len(ui.session.CutMarked()))
			}
		} else if len(ui.session.CutMarked()) > 0 {
			ui.commitCut()
		}
		return
	}

	if ev.Buttons()&tcell.Button1 != 0 {
		g := ui.session.Graph()
		if node := geometry.FindClosestNode(p, g.Nodes); node != nil {
			if ev.Modifiers()&tcell.ModShift == 0 {
				g.ClearSelection()
			}
			g.FindNode(node.ID).Selected = true
			ui.status = "selected " + node.ID
		}
	}
}

func (ui *UI) commitCut() {
	ids := ui.session.DisarmCut()
	ui.session.DeleteEdges(ids)
	if len(ids) > 0 {
		ui.status = fmt.Sprintf("cut %d edge(s)", len(ids))
	} else {
		ui.status = "cut tool disarmed"
	}
}

func (ui *UI) draw() {
	ui.screen.Clear()
	g := ui.session.Graph()

	plain := tcell.StyleDefault
	selected := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	marked := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for _, node := range g.Nodes {
		style := plain
		if node.Selected {
			style = selected
		}
		label := "[" + node.Type + "]"
		if muted, _ := node.Data["muted"].(bool); muted {
			label += " muted"
		}
		ui.drawText(int(node.Position.X)/cellScale, int(node.Position.Y)/cellScale, style, label)
	}

	_, h := ui.screen.Size()
	row := h - len(g.Edges) - 2
	for _, edge := range g.Edges {
		style := plain
		if edge.Style["color"] == "red" {
			style = marked
		}
		ui.drawText(0, row, style, fmt.Sprintf("%s -> %s", edge.Source, edge.Target))
		row++
	}

	mode := "edit"
	if ui.session.CutArmed() {
		mode = "CUT"
	}
	ui.drawText(0, h-1, plain, fmt.Sprintf("[%s] %d nodes, %d edges  %s", mode, len(g.Nodes), len(g.Edges), ui.status))
	ui.screen.Show()
}

func (ui *UI) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		ui.screen.SetContent(x+i, y, r, nil, style)
	}
}
