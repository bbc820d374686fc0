package board

import (
	"github.com/ankit-singh26/Whiteboard-Project/logger"
	"github.com/pkg/errors"
)

// Handler processes one inbound frame type.
type Handler interface {
	Type() string
	Handle(ctx *Context, f *Frame, c *Client) error
}

// Context is what handlers get to work with.
type Context struct {
	R *Relay
}

type Dispatcher struct {
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register wires a handler by its frame type. Registration happens at
// startup before the relay serves connections; the map is read-only after.
func (d *Dispatcher) Register(h Handler) { d.handlers[h.Type()] = h }

func (d *Dispatcher) Dispatch(ctx *Context, f *Frame, c *Client) error {
	h, ok := d.handlers[f.Type]
	if !ok {
		return errors.Errorf("no handler for type=%q", f.Type)
	}
	return h.Handle(ctx, f, c)
}

func (d *Dispatcher) GetHandler(typ string) Handler {
	h, ok := d.handlers[typ]
	if !ok {
		logger.Debugf("no handler for type=%q", typ)
		return nil
	}
	return h
}
