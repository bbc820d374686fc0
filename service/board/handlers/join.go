package handlers

import (
	"github.com/ankit-singh26/Whiteboard-Project/service/board"
	"github.com/pkg/errors"
)

type JoinHandler struct{}

func NewJoinHandler() board.Handler { return &JoinHandler{} }

func (h *JoinHandler) Type() string { return board.FrameJoin }

func (h *JoinHandler) Handle(ctx *board.Context, f *board.Frame, c *board.Client) error {
	if f.Room == "" {
		return errors.New("join frame missing room")
	}
	ctx.R.Join(c, f.Room)
	return nil
}
