package push

import "log/slog"

// Sink receives envelopes on the fallback route, typically a background
// worker message port.
type Sink interface {
	Post(n Notification)
}

// Relay is the fallback route: a typed channel with a single consumer feeding
// the sink. Posts are fire-and-forget, nobody waits on an acknowledgment.
type Relay struct {
	ch   chan Notification
	done chan struct{}
}

func NewRelay(sink Sink) *Relay {
	r := &Relay{
		ch:   make(chan Notification, 16),
		done: make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		for n := range r.ch {
			sink.Post(n)
		}
	}()
	return r
}

// Post queues the envelope for the consumer. A full queue drops the envelope,
// the channel is best effort.
func (r *Relay) Post(n Notification) {
	select {
	case r.ch <- n:
	default:
		pushLogger.Warn("relay queue full, dropping notification", slog.String("tag", n.Tag))
	}
}

// Close stops the consumer after draining queued envelopes.
func (r *Relay) Close() {
	close(r.ch)
	<-r.done
}
