package board

import "sync"

// Registry owns all in-memory room state: which connections are in each
// room and the ordered drawing log used to replay the canvas for late
// joiners. A room is created the first time anything touches it and lives
// for the process lifetime; nothing deletes one, so a rejoin after everyone
// left still replays the full history.
//
// Every mutation takes the registry lock, which is what gives callers the
// append/broadcast atomicity the relay depends on.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*roomState
}

type roomState struct {
	participants map[string]struct{} // conn ID -> member
	log          []DrawingEvent
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*roomState)}
}

// room returns the state for key, creating it if absent. Callers hold mu.
func (r *Registry) room(key string) *roomState {
	st, ok := r.rooms[key]
	if !ok {
		st = &roomState{participants: make(map[string]struct{})}
		r.rooms[key] = st
	}
	return st
}

// EnsureRoom creates an empty room if absent. Idempotent.
func (r *Registry) EnsureRoom(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.room(key)
}

// AddParticipant registers connID as a member of key. Adding an existing
// member is a no-op, so a double join never double-counts.
func (r *Registry) AddParticipant(key, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.room(key).participants[connID] = struct{}{}
}

// RemoveParticipant drops connID from key. Removing an absent member or
// touching an unknown room is a no-op.
func (r *Registry) RemoveParticipant(key, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.rooms[key]
	if !ok {
		return
	}
	delete(st.participants, connID)
}

// ParticipantCount returns the live member count, 0 for unknown rooms.
func (r *Registry) ParticipantCount(key string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.rooms[key]
	if !ok {
		return 0
	}
	return len(st.participants)
}

// Participants lists current member conn IDs in no particular order.
func (r *Registry) Participants(key string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.rooms[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(st.participants))
	for id := range st.participants {
		out = append(out, id)
	}
	return out
}

// Append records ev at the end of key's log, creating the room if needed so
// a draw racing ahead of its join is tolerated. A Clear event resets the
// log to empty instead of being appended: the log only ever holds events
// since the last clear.
func (r *Registry) Append(key string, ev DrawingEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.room(key)
	if ev.Clear {
		st.log = nil
		return
	}
	st.log = append(st.log, ev)
}

// Log returns a copy of key's ordered drawing history, empty for unknown
// rooms. The copy keeps callers from racing later appends.
func (r *Registry) Log(key string) []DrawingEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.rooms[key]
	if !ok || len(st.log) == 0 {
		return []DrawingEvent{}
	}
	out := make([]DrawingEvent, len(st.log))
	copy(out, st.log)
	return out
}
