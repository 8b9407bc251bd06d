// Package terminal previews a survey in a terminal using tcell.
package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fogmap/internal/core/geometry"
	"chosenoffset.com/fogmap/internal/game"
	"chosenoffset.com/fogmap/internal/render"
	"chosenoffset.com/fogmap/internal/survey"
)

// Glyphs used for each kind of cell
const (
	GlyphHidden   = '░'
	GlyphRevealed = '·'
	GlyphBlocked  = '#'
	GlyphObserver = '@'
)

// Styles holds the style of each kind of cell
type Styles struct {
	Hidden   tcell.Style
	Revealed tcell.Style
	Blocked  tcell.Style
	Observer tcell.Style
	Status   tcell.Style
}

// DefaultStyles returns the default colour scheme
func DefaultStyles() Styles {
	return Styles{
		Hidden:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		Revealed: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Blocked:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		Observer: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Status:   tcell.StyleDefault.Reverse(true),
	}
}

// Draw renders the survey with one character per cell, top row first, and
// the status line below it. Cells past the edge of the screen are skipped.
func Draw(screen tcell.Screen, s *survey.Survey, styles Styles, status string) {
	screen.Clear()
	width, height := screen.Size()
	g := s.Grid()
	obs := s.Observer()

	for y := 0; y < g.Height() && y < height; y++ {
		for x := 0; x < g.Width() && x < width; x++ {
			cell := geometry.Pt(x, y)
			glyph, style := GlyphHidden, styles.Hidden

			switch revealed, _ := g.IsRevealed(cell); {
			case cell == obs:
				glyph, style = GlyphObserver, styles.Observer
			case !revealed:
			case s.Blocked(cell):
				glyph, style = GlyphBlocked, styles.Blocked
			default:
				glyph, style = GlyphRevealed, styles.Revealed
			}

			screen.SetContent(x, y, glyph, nil, style)
		}
	}

	if row := g.Height(); row < height {
		for i, r := range []rune(status) {
			if i >= width {
				break
			}
			screen.SetContent(i, row, r, nil, styles.Status)
		}
	}

	screen.Show()
}

// Viewer runs an interactive preview on a tcell screen.
type Viewer struct {
	Screen     tcell.Screen
	Controller *game.Controller
	Styles     Styles

	input *eventInput
}

// NewViewer creates a viewer for s. The screen must already be initialised.
func NewViewer(screen tcell.Screen, s *survey.Survey) *Viewer {
	input := &eventInput{}
	return &Viewer{
		Screen:     screen,
		Controller: game.NewController(s, input, 1),
		Styles:     DefaultStyles(),
		input:      input,
	}
}

// Run draws the survey and handles events until the user quits. Arrow keys
// move the observer, a click moves it to the clicked cell, r patrols and q
// or Esc quits.
func (v *Viewer) Run() error {
	v.Screen.EnableMouse()
	v.draw()

	for {
		ev := v.Screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			v.input.key = ev
		case *tcell.EventMouse:
			v.input.mouse = ev
		case *tcell.EventResize:
			v.Screen.Sync()
			v.draw()
			continue
		default:
			continue
		}

		err := v.Controller.Update()
		v.input.reset()
		if errors.Is(err, game.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		v.draw()
	}
}

func (v *Viewer) draw() {
	v.Controller.Dirty()
	Draw(v.Screen, v.Controller.Survey, v.Styles, v.Controller.Status())
}

// eventInput presents a single tcell event as one frame of input
type eventInput struct {
	key   *tcell.EventKey
	mouse *tcell.EventMouse
}

func (in *eventInput) reset() {
	in.key = nil
	in.mouse = nil
}

func (in *eventInput) IsKeyJustPressed(key render.Key) bool {
	if in.key == nil {
		return false
	}

	switch key {
	case render.KeyUp:
		return in.key.Key() == tcell.KeyUp
	case render.KeyDown:
		return in.key.Key() == tcell.KeyDown
	case render.KeyLeft:
		return in.key.Key() == tcell.KeyLeft
	case render.KeyRight:
		return in.key.Key() == tcell.KeyRight
	case render.KeyEscape:
		return in.key.Key() == tcell.KeyEscape
	case render.KeyR:
		return in.key.Key() == tcell.KeyRune && in.key.Rune() == 'r'
	case render.KeyQ:
		return in.key.Key() == tcell.KeyRune && in.key.Rune() == 'q'
	default:
		return false
	}
}

func (in *eventInput) GetCursorPosition() (x, y int) {
	if in.mouse == nil {
		return 0, 0
	}
	return in.mouse.Position()
}

func (in *eventInput) IsMouseButtonJustPressed(button render.MouseButton) bool {
	if in.mouse == nil {
		return false
	}

	switch button {
	case render.MouseButtonLeft:
		return in.mouse.Buttons()&tcell.Button1 != 0
	case render.MouseButtonRight:
		return in.mouse.Buttons()&tcell.Button2 != 0
	default:
		return false
	}
}
