// Package frame phases per-frame work into read, write and post-write
// queues pumped once per display refresh, so that within one frame every
// measurement completes before any mutation.
package frame

import "time"

// Callback is a unit of per-frame work. Callbacks registered with Read,
// Write or PostWrite are single-shot: they run in at most one cycle and
// must be re-registered to run again.
type Callback func(now time.Time)

// Scheduler owns the three phase queues and the pump lifecycle. It is
// only safe to use from the loop that delivers its frames; see Pump.
type Scheduler struct {
	pump   Pump
	cancel func()

	running   bool
	readWrite bool
	tick      Callback

	reads      []Callback
	writes     []Callback
	postWrites []Callback
}

// NewScheduler builds an idle scheduler over the given pump, with
// read/write phasing enabled.
func NewScheduler(pump Pump) *Scheduler {
	return &Scheduler{pump: pump, readWrite: true}
}

// Read enqueues cb into the read phase of the next cycle. Enqueuing while
// idle is accepted; the callback waits for Start.
func (s *Scheduler) Read(cb Callback) { s.reads = append(s.reads, cb) }

// Write enqueues cb into the write phase of the next cycle.
func (s *Scheduler) Write(cb Callback) { s.writes = append(s.writes, cb) }

// PostWrite enqueues cb into the post-write phase of the next cycle.
func (s *Scheduler) PostWrite(cb Callback) { s.postWrites = append(s.postWrites, cb) }

// SetTick installs the persistent per-frame callback used when
// read/write phasing is disabled.
func (s *Scheduler) SetTick(cb Callback) { s.tick = cb }

// SetReadWriteMode switches between phased dispatch (read, then write,
// then post-write, each queue drained fully) and simple tick dispatch.
func (s *Scheduler) SetReadWriteMode(enabled bool) { s.readWrite = enabled }

// Running reports whether a frame request is outstanding.
func (s *Scheduler) Running() bool { return s.running }

// Start requests the first frame. Calling Start while running is a no-op.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.arm()
}

// Stop cancels the outstanding frame request and discards any queued
// callbacks; they do not carry over to a future Start. Safe when idle.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.running = false
	s.reads = nil
	s.writes = nil
	s.postWrites = nil
}

func (s *Scheduler) arm() {
	s.cancel = s.pump.Request(s.cycle)
}

// cycle runs one frame. Each queue is swapped out before draining, so
// callbacks enqueued during the drain land in the next cycle, and a
// panicking callback drops the rest of its batch deterministically
// instead of being retried. Panics propagate to the pump's invoker.
func (s *Scheduler) cycle(now time.Time) {
	s.cancel = nil
	defer func() {
		// Re-arm even while a callback panic unwinds, so the next cycle
		// still happens and starts from clean queues.
		if s.running {
			s.arm()
		}
	}()
	if s.readWrite {
		drain(s.take(&s.reads), now)
		drain(s.take(&s.writes), now)
		drain(s.take(&s.postWrites), now)
	} else if s.tick != nil {
		s.tick(now)
	}
}

func (s *Scheduler) take(queue *[]Callback) []Callback {
	batch := *queue
	*queue = nil
	return batch
}

func drain(batch []Callback, now time.Time) {
	for _, cb := range batch {
		cb(now)
	}
}
