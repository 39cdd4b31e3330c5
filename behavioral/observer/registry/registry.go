// Package registry keeps listeners in the order they registered,
// each under a Token handed out at registration.
//
// Listeners are usually funcs, which Go can't compare,
// so the Token stands in for the listener's identity.
package registry

import (
	"slices"

	uuid "github.com/satori/go.uuid"
)

// Token is the handle a listener is registered under.
type Token string

// NewToken returns a random UUID based Token.
func NewToken() Token {
	return Token(uuid.NewV4().String())
}

// Registry is ready to use as a zero value.
type Registry[L any] struct {
	order     []Token
	listeners map[Token]L
}

// Register adds the listener under a new Token.
func (r *Registry[L]) Register(l L) Token {
	t := NewToken()
	r.Set(t, l)
	return t
}

// Set stores the listener under the given Token.
// A Token that is already registered keeps its place and gets the new listener.
func (r *Registry[L]) Set(t Token, l L) {
	if r.listeners == nil {
		r.listeners = make(map[Token]L)
	}
	if _, ok := r.listeners[t]; !ok {
		r.order = append(r.order, t)
	}
	r.listeners[t] = l
}

// Unregister removes the listener of the Token, or does nothing when it is unknown.
func (r *Registry[L]) Unregister(t Token) {
	if _, ok := r.listeners[t]; !ok {
		return
	}
	delete(r.listeners, t)
	r.order = slices.DeleteFunc(r.order, func(o Token) bool { return o == t })
}

// Len reports the number of registered listeners.
func (r *Registry[L]) Len() int { return len(r.order) }

// Each calls fn with every listener in registration order.
// Listeners registered from fn are first called on the next Each.
func (r *Registry[L]) Each(fn func(L)) {
	for _, t := range slices.Clone(r.order) {
		if l, ok := r.listeners[t]; ok {
			fn(l)
		}
	}
}
