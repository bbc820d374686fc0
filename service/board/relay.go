package board

import (
	"sync"

	"github.com/ankit-singh26/Whiteboard-Project/logger"
	"github.com/ankit-singh26/Whiteboard-Project/service/storage"
)

const (
	sendQueueSize  = 256
	fanoutQueueLen = 256
)

// Relay is the realtime hub: it tracks live connections, applies inbound
// events to the registry and fans the results back out to room members.
//
// One mutex serializes every event against the registry, standing in for
// the single-threaded event loop the protocol assumes. All fan-out jobs are
// enqueued while the mutex is held, so for any one room the delivery order
// equals the log order.
type Relay struct {
	mu       sync.Mutex
	registry *Registry
	clients  map[string]*Client             // conn ID -> client
	joined   map[string]map[string]struct{} // conn ID -> rooms it joined
	disp     *Dispatcher
	fanout   *Fanout
}

// NewRelay builds a relay around an injected registry so tests can run
// isolated instances.
func NewRelay(reg *Registry) *Relay {
	return &Relay{
		registry: reg,
		clients:  make(map[string]*Client),
		joined:   make(map[string]map[string]struct{}),
		disp:     NewDispatcher(),
		// one worker: see Fanout for the ordering argument
		fanout: NewFanout(1, fanoutQueueLen),
	}
}

func (r *Relay) Disp() *Dispatcher   { return r.disp }
func (r *Relay) Registry() *Registry { return r.registry }

// Register makes a freshly connected client addressable. It is in no rooms
// until its first join.
func (r *Relay) Register(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.ConnID] = c
	r.joined[c.ConnID] = make(map[string]struct{})
}

// Join adds c to room and sends it the history snapshot privately, then
// broadcasts the new member count to the whole room, joiner included.
//
// Snapshot, membership and both sends are enqueued under one lock
// acquisition: a draw racing with the join lands either in the snapshot or
// in a later broadcast to the joiner, never both and never neither.
func (r *Relay) Join(c *Client, room string) {
	r.mu.Lock()
	r.registry.EnsureRoom(room)
	r.registry.AddParticipant(room, c.ConnID)
	if rooms, ok := r.joined[c.ConnID]; ok {
		rooms[room] = struct{}{}
	} else {
		r.joined[c.ConnID] = map[string]struct{}{room: {}}
	}
	history := r.registry.Log(room)
	count := r.registry.ParticipantCount(room)

	r.fanout.Broadcast([]*Client{c}, BuildHistoryFrame(room, history, count))
	r.fanout.Broadcast(r.membersLocked(room, ""), BuildUserCountFrame(room, count))
	r.mu.Unlock()

	storage.SetRoomCount(room, count)
	logger.Debugf("[relay] join room=%s conn=%s count=%d", room, c.ConnID, count)
}

// Draw appends ev to the room log and relays it. Strokes go to every member
// except the sender, who already rendered locally. A clear goes to everyone
// including the sender: its canvas resets on the echo, confirming the clear
// was applied.
func (r *Relay) Draw(c *Client, room string, ev DrawingEvent) {
	r.mu.Lock()
	r.registry.Append(room, ev)
	exclude := c.ConnID
	if ev.Clear {
		exclude = ""
	}
	r.fanout.Broadcast(r.membersLocked(room, exclude), BuildDrawFrame(room, ev))
	r.mu.Unlock()
}

// Chat relays a chat message to every member including the sender; clients
// render on the echo rather than optimistically. Nothing is persisted.
func (r *Relay) Chat(_ *Client, room string, p ChatPayload) {
	r.mu.Lock()
	r.fanout.Broadcast(r.membersLocked(room, ""), BuildChatFrame(room, p))
	r.mu.Unlock()
}

// Disconnect removes c from every room it joined and tells each affected
// room its new member count. Calling it again for the same client is a
// no-op, so a double-fired close does no harm.
func (r *Relay) Disconnect(c *Client) {
	r.mu.Lock()
	rooms, ok := r.joined[c.ConnID]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(r.joined, c.ConnID)
	delete(r.clients, c.ConnID)

	counts := make(map[string]int, len(rooms))
	for room := range rooms {
		r.registry.RemoveParticipant(room, c.ConnID)
		count := r.registry.ParticipantCount(room)
		counts[room] = count
		r.fanout.Broadcast(r.membersLocked(room, ""), BuildUserCountFrame(room, count))
	}
	r.mu.Unlock()

	c.Close()
	for room, count := range counts {
		storage.SetRoomCount(room, count)
	}
	logger.Debugf("[relay] disconnect conn=%s rooms=%d", c.ConnID, len(rooms))
}

// membersLocked resolves a room's participant set to live clients, skipping
// exclude when non-empty. Callers hold r.mu.
func (r *Relay) membersLocked(room, exclude string) []*Client {
	ids := r.registry.Participants(room)
	out := make([]*Client, 0, len(ids))
	for _, id := range ids {
		if id == exclude {
			continue
		}
		if cl, ok := r.clients[id]; ok {
			out = append(out, cl)
		}
	}
	return out
}
