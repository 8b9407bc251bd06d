package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/fogmap/internal/game"
	"chosenoffset.com/fogmap/internal/render"
)

// statusHeight is the height of the status bar below the map
const statusHeight = 16

var wallColor = color.NRGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff}

// Viewer implements ebiten.Game for a survey.
type Viewer struct {
	Controller *game.Controller
	Zoom       int // Screen pixels per map pixel

	background *ebiten.Image
	fog        *ebiten.Image
	cellSize   int
}

// NewViewer creates a windowed preview. The controller's cell size is set to
// the map tile size times zoom.
func NewViewer(c *game.Controller, zoom int) *Viewer {
	if zoom <= 0 {
		zoom = 1
	}

	v := &Viewer{
		Controller: c,
		Zoom:       zoom,
		cellSize:   c.Survey.Grid().ScaleFactor() * zoom,
	}
	c.CellSize = v.cellSize

	if img := c.Survey.Map.Image; img != nil {
		v.background = ebiten.NewImageFromImage(img)
	}
	return v
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	err := v.Controller.Update()
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if v.background != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(float64(v.Zoom), float64(v.Zoom))
		screen.DrawImage(v.background, opts)
	}

	cs := float32(v.cellSize)
	for _, wall := range v.Controller.Survey.Walls() {
		a, b := wall.Edge.Origin, wall.Edge.Termination
		vector.StrokeLine(screen, float32(a.X)*cs, float32(a.Y)*cs, float32(b.X)*cs, float32(b.Y)*cs, 2, wallColor, true)
	}

	if v.fog == nil || v.Controller.Dirty() {
		if v.fog != nil {
			v.fog.Dispose()
		}
		v.fog = ebiten.NewImageFromImage(render.FogMask(v.Controller.Survey.Grid(), v.cellSize, render.FogColor))
	}
	screen.DrawImage(v.fog, nil)

	obs := v.Controller.Survey.Observer()
	half := float32(v.cellSize) / 2
	vector.DrawFilledCircle(screen,
		float32(obs.X*v.cellSize)+half, float32(obs.Y*v.cellSize)+half,
		max(half-1, 1), render.ObserverColor, true)

	ebitenutil.DebugPrintAt(screen, v.Controller.Status(), 2, v.mapHeight())
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.mapWidth(), v.mapHeight() + statusHeight
}

func (v *Viewer) mapWidth() int {
	return v.Controller.Survey.Grid().Width() * v.cellSize
}

func (v *Viewer) mapHeight() int {
	return v.Controller.Survey.Grid().Height() * v.cellSize
}

// Run opens a window and blocks until it is closed.
func Run(v *Viewer, title string) error {
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// InputManager implements render.InputManager using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return inpututil.IsKeyJustPressed(keyToEbitenKey(key))
}

// GetCursorPosition returns the current cursor position.
func (m *InputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonJustPressed returns whether the specified mouse button was just pressed.
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// keyToEbitenKey converts a render.Key to an ebiten.Key.
func keyToEbitenKey(key render.Key) ebiten.Key {
	switch key {
	case render.KeyUp:
		return ebiten.KeyArrowUp
	case render.KeyDown:
		return ebiten.KeyArrowDown
	case render.KeyLeft:
		return ebiten.KeyArrowLeft
	case render.KeyRight:
		return ebiten.KeyArrowRight
	case render.KeyR:
		return ebiten.KeyR
	case render.KeyQ:
		return ebiten.KeyQ
	case render.KeyEscape:
		return ebiten.KeyEscape
	default:
		return 0
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonLeft
	}
}
