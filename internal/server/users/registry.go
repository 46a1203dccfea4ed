// Package users holds the static two-user table. The table is built once
// from configuration at process start and is immutable afterwards.
package users

import (
	"github.com/rashii/rashii/internal/common"
	"github.com/rashii/rashii/internal/server/config"
)

// User is one of the fixed users of the app.
type User struct {
	ID      string
	Name    string
	Email   string
	PinHash string
}

// Registry is a read-only lookup over the configured users.
type Registry struct {
	users map[string]User
	ids   []string
}

// NewRegistry builds a Registry from the configured user table.
func NewRegistry(configured []config.UserConfig) *Registry {
	r := &Registry{
		users: make(map[string]User, len(configured)),
		ids:   make([]string, 0, len(configured)),
	}
	for _, u := range configured {
		r.users[u.ID] = User{ID: u.ID, Name: u.Name, Email: u.Email, PinHash: u.PinHash}
		r.ids = append(r.ids, u.ID)
	}
	return r
}

// Get returns the user with the given id.
func (r *Registry) Get(id string) (User, bool) {
	u, ok := r.users[id]
	return u, ok
}

// IDs returns the configured user ids in configuration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Other returns the counterparty of the given user: the single configured
// user that is not id. It fails when id is unknown or when there is not
// exactly one other user, making the exactly-one-counterparty invariant
// explicit instead of a hardcoded two-way ternary.
func (r *Registry) Other(id string) (string, error) {
	if _, ok := r.users[id]; !ok {
		return "", common.ErrorUnknownUser
	}

	other := ""
	for _, candidate := range r.ids {
		if candidate == id {
			continue
		}
		if other != "" {
			return "", common.ErrorNoCounterpart
		}
		other = candidate
	}
	if other == "" {
		return "", common.ErrorNoCounterpart
	}
	return other, nil
}
