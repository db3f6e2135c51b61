package particle

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Deadline is a pending batch safety timeout
type Deadline struct {
	Batch ulid.ULID
	At    time.Time
}

// Reaper queues batch deadlines ordered by expiry
type Reaper struct {
	queue []Deadline
}

// NewReaper creates an empty deadline queue
func NewReaper() *Reaper {
	return &Reaper{}
}

// Schedule queues the batch deadline
// Insertion keeps the queue sorted, stable for equal deadlines
func (r *Reaper) Schedule(b Batch) {
	d := Deadline{Batch: b.ID, At: b.Deadline}

	pos := len(r.queue)
	for pos > 0 && r.queue[pos-1].At.After(d.At) {
		pos--
	}
	r.queue = append(r.queue, Deadline{})
	copy(r.queue[pos+1:], r.queue[pos:])
	r.queue[pos] = d
}

// Due pops every deadline at or before now, oldest first
func (r *Reaper) Due(now time.Time) []Deadline {
	n := 0
	for n < len(r.queue) && !r.queue[n].At.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Deadline, n)
	copy(due, r.queue[:n])
	r.queue = append(r.queue[:0], r.queue[n:]...)
	return due
}

// Pending returns the number of batches whose deadline has not fired
func (r *Reaper) Pending() int {
	return len(r.queue)
}
