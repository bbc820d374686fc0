package board

import (
	"sync/atomic"

	"github.com/ankit-singh26/Whiteboard-Project/logger"
)

type fanoutJob struct {
	conns   []*Client
	payload []byte
}

// Fanout moves frame delivery off the relay's lock: handlers enqueue a job
// and the worker pushes it into each client's send queue.
//
// The relay runs exactly one worker. Jobs are enqueued in registry mutation
// order and a lone worker drains them FIFO, which keeps broadcast order
// aligned with log order within a room.
type Fanout struct {
	jobs    chan fanoutJob
	dropped atomic.Int64
}

func NewFanout(workers, queue int) *Fanout {
	f := &Fanout{jobs: make(chan fanoutJob, queue)}
	for i := 0; i < workers; i++ {
		go f.run()
	}
	return f
}

func (f *Fanout) run() {
	for job := range f.jobs {
		for _, c := range job.conns {
			f.deliver(c, job.payload)
		}
	}
}

// deliver enqueues one frame; a client that has shut down or whose send
// queue is full loses the frame rather than stalling the whole room.
func (f *Fanout) deliver(c *Client, payload []byte) {
	select {
	case <-c.Done():
		return
	default:
	}
	select {
	case c.Send <- payload:
	case <-c.Done():
	default:
		f.dropped.Add(1)
		logger.Debugf("[fanout] conn=%s send queue full, frame dropped", c.ConnID)
	}
}

func (f *Fanout) Broadcast(conns []*Client, payload []byte) {
	if len(conns) == 0 || len(payload) == 0 {
		return
	}
	f.jobs <- fanoutJob{conns: conns, payload: payload}
}

// Dropped reports frames lost to slow clients since startup.
func (f *Fanout) Dropped() int64 {
	return f.dropped.Load()
}
