// Package pointer routes mouse events to the components that asked for them.
// Each component holds its own subscription and releases it when it is torn
// down, so nothing keeps listening after its owner is gone.
package pointer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Handler receives a mouse event and may return a command.
type Handler func(msg tea.MouseMsg) tea.Cmd

type subscription struct {
	id      int
	handler Handler
}

// Router fans mouse events out to subscribed handlers in subscription order.
// It is driven from a Bubble Tea Update loop and is not safe for concurrent use.
type Router struct {
	nextID        int
	subscriptions []subscription
}

// NewRouter creates a Router with no subscriptions.
func NewRouter() *Router {
	return &Router{}
}

// Subscribe registers h and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (r *Router) Subscribe(h Handler) (cancel func()) {
	r.nextID++
	id := r.nextID
	r.subscriptions = append(r.subscriptions, subscription{id: id, handler: h})

	return func() {
		for i, s := range r.subscriptions {
			if s.id == id {
				r.subscriptions = append(r.subscriptions[:i], r.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers msg to every handler and batches the returned commands.
func (r *Router) Dispatch(msg tea.MouseMsg) tea.Cmd {
	if len(r.subscriptions) == 0 {
		return nil
	}

	// Handlers may unsubscribe while we iterate
	subs := make([]subscription, len(r.subscriptions))
	copy(subs, r.subscriptions)

	var cmds []tea.Cmd
	for _, s := range subs {
		if cmd := s.handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Len returns the number of live subscriptions.
func (r *Router) Len() int {
	return len(r.subscriptions)
}
