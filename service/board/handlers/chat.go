package handlers

import (
	"github.com/ankit-singh26/Whiteboard-Project/service/board"
	"github.com/pkg/errors"
)

type ChatHandler struct{}

func NewChatHandler() board.Handler { return &ChatHandler{} }

func (h *ChatHandler) Type() string { return board.FrameChat }

func (h *ChatHandler) Handle(ctx *board.Context, f *board.Frame, c *board.Client) error {
	if f.Room == "" {
		return errors.New("chat frame missing room")
	}
	p, err := board.ExtractChatPayload(f)
	if err != nil {
		return errors.Wrap(err, "chat payload")
	}
	ctx.R.Chat(c, f.Room, *p)
	return nil
}
