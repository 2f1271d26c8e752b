package logger

import (
	"sort"
	"sync"

	"go.uber.org/multierr"
)

// Registry owns the named channels of one process. Construct one at
// startup, hand it to setup for configuration, and inject it into
// components that log. Tests build their own registries.
type Registry struct {
	mu       sync.Mutex
	channels map[string]*Channel
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{channels: make(map[string]*Channel)}
}

// Channel returns the named channel, creating it on first use. A new
// channel has an Info floor and a single discard destination, so
// logging through it before configuration is safe and silent.
func (r *Registry) Channel(name string) *Channel {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.channels[name]
	if !ok {
		ch = newChannel(name)
		r.channels[name] = ch
	}
	return ch
}

// Names returns the names of all channels created so far, sorted
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every destination of every channel
func (r *Registry) Close() error {
	r.mu.Lock()
	channels := make([]*Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		channels = append(channels, ch)
	}
	r.mu.Unlock()

	var err error
	for _, ch := range channels {
		err = multierr.Append(err, ch.Close())
	}
	return err
}
