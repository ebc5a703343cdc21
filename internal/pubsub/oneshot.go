package pubsub

import "sync"

// OneShot is a notification that fires at most once.
// Callbacks subscribed before Fire run during Fire, in subscription order.
// Callbacks subscribed after Fire run immediately on the caller's goroutine.
type OneShot struct {
	mu        sync.Mutex
	fired     bool
	done      chan struct{}
	callbacks []func()
}

// NewOneShot creates an unfired notification.
func NewOneShot() *OneShot {
	return &OneShot{done: make(chan struct{})}
}

// Fire marks the notification as fired and runs pending callbacks.
// Returns false if it had already fired.
func (o *OneShot) Fire() bool {
	o.mu.Lock()
	if o.fired {
		o.mu.Unlock()
		return false
	}
	o.fired = true
	pending := o.callbacks
	o.callbacks = nil
	close(o.done)
	o.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return true
}

// Subscribe registers fn to run once the notification fires.
func (o *OneShot) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	if !o.fired {
		o.callbacks = append(o.callbacks, fn)
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()
	fn()
}

// Fired reports whether Fire has been called.
func (o *OneShot) Fired() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.fired
}

// Done returns a channel closed when the notification fires.
func (o *OneShot) Done() <-chan struct{} {
	return o.done
}
