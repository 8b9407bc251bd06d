// Package game turns preview input into survey actions. It knows nothing
// about the backend that draws the result.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"chosenoffset.com/fogmap/internal/render"
	"chosenoffset.com/fogmap/internal/survey"
)

// ErrQuit is returned by Update when the user asks to leave the preview.
var ErrQuit = errors.New("quit requested")

// Controller handles input for a running survey.
type Controller struct {
	Survey   *survey.Survey
	InputMgr render.InputManager
	CellSize int // Screen pixels per cell, for mouse input

	status string
	dirty  bool
}

// NewController creates a controller. The first frame is always dirty.
func NewController(s *survey.Survey, input render.InputManager, cellSize int) *Controller {
	c := &Controller{
		Survey:   s,
		InputMgr: input,
		CellSize: cellSize,
		dirty:    true,
	}
	c.updateStatus()
	return c
}

// Update applies one frame of input.
func (c *Controller) Update() error {
	in := c.InputMgr

	if in.IsKeyJustPressed(render.KeyEscape) || in.IsKeyJustPressed(render.KeyQ) {
		return ErrQuit
	}

	// Direct movement with the arrow keys
	dx, dy := 0, 0
	switch {
	case in.IsKeyJustPressed(render.KeyUp):
		dy = -1
	case in.IsKeyJustPressed(render.KeyDown):
		dy = 1
	case in.IsKeyJustPressed(render.KeyLeft):
		dx = -1
	case in.IsKeyJustPressed(render.KeyRight):
		dx = 1
	}
	if dx != 0 || dy != 0 {
		c.apply(c.Survey.Move(dx, dy))
	}

	if in.IsMouseButtonJustPressed(render.MouseButtonLeft) && c.CellSize > 0 {
		x, y := in.GetCursorPosition()
		c.apply(c.Survey.MoveTo(render.CellAtPixel(x, y, c.CellSize)))
	}

	if in.IsKeyJustPressed(render.KeyR) {
		_, err := c.Survey.Patrol(context.Background())
		c.apply(err)
	}

	return nil
}

// Dirty reports whether the fog changed since the last call, and clears the flag.
func (c *Controller) Dirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Status returns a one-line description of the survey.
func (c *Controller) Status() string {
	return c.status
}

func (c *Controller) apply(err error) {
	if err != nil {
		log.Printf("Warning: %v", err)
		c.status = err.Error()
		return
	}
	c.dirty = true
	c.updateStatus()
}

func (c *Controller) updateStatus() {
	g := c.Survey.Grid()
	obs := c.Survey.Observer()

	c.status = fmt.Sprintf("%s  revealed %d/%d", obs, g.RevealedCount(), g.Width()*g.Height())
	if zones := c.Survey.ZonesAt(obs); len(zones) > 0 {
		c.status += "  in " + strings.Join(zones, ", ")
	}
	if c.Survey.Blocked(obs) {
		c.status += "  [blocked]"
	}
}
