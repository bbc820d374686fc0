package handlers

import (
	"github.com/ankit-singh26/Whiteboard-Project/service/board"
	"github.com/pkg/errors"
)

type DrawHandler struct{}

func NewDrawHandler() board.Handler { return &DrawHandler{} }

func (h *DrawHandler) Type() string { return board.FrameDraw }

// Handle stores and relays the drawing command as-is; coordinates and tool
// names are opaque to the server.
func (h *DrawHandler) Handle(ctx *board.Context, f *board.Frame, c *board.Client) error {
	if f.Room == "" {
		return errors.New("draw frame missing room")
	}
	ev, err := board.ExtractDrawPayload(f)
	if err != nil {
		return errors.Wrap(err, "draw payload")
	}
	ctx.R.Draw(c, f.Room, *ev)
	return nil
}
