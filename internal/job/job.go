// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package job runs one document generation on a background goroutine and
// publishes its progress and completion on a channel.
//
// The interactive surface subscribes to Events instead of polling shared
// state. A job cannot be cancelled once started.
package job

import (
	"github.com/pdiddy/doksofort/internal/assemble"
	"github.com/pdiddy/doksofort/pkg/types"
)

// eventBuffer bounds the number of undelivered events. Progress events
// beyond it are dropped; the completion event is never dropped.
const eventBuffer = 64

// Func performs the work of a job and reports progress through the callback.
type Func func(progress assemble.ProgressFunc) (types.Result, error)

// Event is either a progress update or the final outcome of a job.
type Event struct {
	Progress types.Progress
	// Result is set on the final event of a successful job.
	Result *types.Result
	// Err is set on the final event of a failed job.
	Err error
}

// Final reports whether e is the completion event.
func (e Event) Final() bool {
	return e.Result != nil || e.Err != nil
}

// Job is a running or finished generation.
type Job struct {
	events chan Event
	done   chan struct{}
	result types.Result
	err    error
}

// Start runs fn on a new goroutine and returns immediately.
func Start(fn Func) *Job {
	j := &Job{
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go j.run(fn)
	return j
}

func (j *Job) run(fn Func) {
	defer close(j.events)

	res, err := fn(j.report)

	j.result, j.err = res, err
	close(j.done)

	final := Event{Progress: types.Progress{Done: len(res.Entries), Total: len(res.Entries)}}
	if err != nil {
		final.Err = err
	} else {
		final.Result = &res
	}
	j.events <- final
}

// report drops progress when the buffer is nearly full. The last slot is
// kept for the final event so the job never blocks on a missing listener.
func (j *Job) report(done, total int) {
	if len(j.events) >= cap(j.events)-1 {
		return
	}
	select {
	case j.events <- Event{Progress: types.Progress{Done: done, Total: total}}:
	default:
	}
}

// Events returns the event stream. It ends with exactly one final event and
// is then closed. Subscribers must drain it until the final event.
func (j *Job) Events() <-chan Event {
	return j.events
}

// Done is closed when the job has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes and returns its outcome.
func (j *Job) Wait() (types.Result, error) {
	<-j.done
	return j.result, j.err
}
