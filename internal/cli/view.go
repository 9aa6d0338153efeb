package cli

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/flexrect"
)

// newScreen creates the terminal screen for the view command.
var newScreen = tcell.NewScreen

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <tree.yaml>",
		Short: "Show a layout document in the terminal",
		Long: `Lay out a document using the terminal as the window, one layout unit
per character cell. Resizing the terminal lays the tree out again.
Press q or Esc to quit.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runView(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	layout, err := loadLayout(path, formatter)
	if err != nil {
		return err
	}

	s, err := newScreen()
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeOutput, "cannot open terminal", err)
	}
	if err := s.Init(); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeOutput, "cannot open terminal", err)
	}
	defer s.Fini()

	v, err := newViewer(s, layout)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeLayout, "layout failed", err)
	}
	if err := v.run(); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeLayout, "layout failed", err)
	}
	return nil
}

// viewer draws a layout into a terminal screen and relayouts on resize.
type viewer struct {
	screen tcell.Screen
	layout *flexrect.Screen[Box]
	frames int
}

func newViewer(s tcell.Screen, layout *Layout) (*viewer, error) {
	l, err := flexrect.NewScreen(layout.Tree, layout.Root)
	if err != nil {
		return nil, err
	}
	return &viewer{screen: s, layout: l}, nil
}

// run draws the first frame and then handles events until the user quits.
func (v *viewer) run() error {
	if err := v.draw(); err != nil {
		return err
	}
	for {
		quit, err := v.handle(v.screen.PollEvent())
		if err != nil || quit {
			return err
		}
	}
}

// handle processes one event and reports whether the viewer should exit.
func (v *viewer) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case nil:
		// PollEvent returns nil once the screen is finalized.
		return true, nil
	case *tcell.EventResize:
		v.screen.Sync()
		return false, v.draw()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true, nil
			}
		}
	}
	return false, nil
}

// draw lays the tree out at the current terminal size and paints it.
// Nothing is repainted when neither the size nor the tree changed.
func (v *viewer) draw() error {
	w, h := v.screen.Size()
	list, redraw, err := v.layout.Layout(flexrect.WindowState{Width: uint32(max(w, 0)), Height: uint32(max(h, 0))})
	if err != nil {
		return err
	}
	if !redraw {
		return nil
	}

	v.screen.Clear()
	for _, r := range list.ByZ() {
		v.paint(&r, w, h)
	}
	v.screen.Show()
	v.frames++
	return nil
}

// paint fills the cells whose centers lie inside r and writes the node name
// along its top edge.
func (v *viewer) paint(r *flexrect.Rect[Box], w, h int) {
	minX, minY, maxX, maxY := r.Bounds()
	x0 := max(0, int(math.Ceil(minX-0.5)))
	y0 := max(0, int(math.Ceil(minY-0.5)))
	x1 := min(w, int(math.Ceil(maxX-0.5)))
	y1 := min(h, int(math.Ceil(maxY-0.5)))
	if x0 >= x1 || y0 >= y1 {
		return
	}

	c := r.Payload.Color
	style := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Foreground(labelColor(c))
	label := []rune(r.Payload.Name)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := ' '
			if y == y0 && x-x0 < len(label) {
				ch = label[x-x0]
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// labelColor picks black or white text, whichever reads better on c.
func labelColor(c flexrect.DebugColor) tcell.Color {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luma > 140 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
