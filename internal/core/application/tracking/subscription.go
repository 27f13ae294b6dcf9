package tracking

import "context"

// Subscription is the cancellation handle of a poll loop started by Synchronizer.Subscribe.
type Subscription struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newSubscription(parent context.Context) *Subscription {
	ctx, cancel := context.WithCancel(parent)
	return &Subscription{ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

// Cancel stops polling without waiting for an in-flight poll. It is safe to call
// more than once and from inside the poll callback.
func (s *Subscription) Cancel() {
	s.cancel()
}

// Stop cancels and waits until the poll loop has exited. Calling it from the poll
// callback would wait on itself, so the callback must use Cancel instead.
func (s *Subscription) Stop() {
	s.cancel()
	<-s.done
}

// Done is closed once the poll loop has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}
