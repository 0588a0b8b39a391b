// Package dialog models the two gates that serialize mutations on an admin
// screen: the create/edit form dialog and the delete confirmation prompt.
// Each resource holds one of each; at most one dialog and one pending delete
// exist per resource at any time.
package dialog

import (
	"sync"

	"github.com/google/uuid"
)

type State int

const (
	Closed State = iota
	OpenForCreate
	OpenForEdit
)

func (s State) String() string {
	switch s {
	case OpenForCreate:
		return "open_for_create"
	case OpenForEdit:
		return "open_for_edit"
	default:
		return "closed"
	}
}

// Dialog tracks whether a form is open and which entity, if any, is being
// edited. Opening while already open replaces the current target rather
// than stacking.
type Dialog struct {
	mu     sync.Mutex
	state  State
	target uuid.UUID
}

func (d *Dialog) OpenCreate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = OpenForCreate
	d.target = uuid.Nil
}

func (d *Dialog) OpenEdit(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = OpenForEdit
	d.target = id
}

func (d *Dialog) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Closed
	d.target = uuid.Nil
}

// SubmitSuccess closes the dialog after a create or update lands.
func (d *Dialog) SubmitSuccess() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = Closed
	d.target = uuid.Nil
}

func (d *Dialog) State() (State, uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state, d.target
}

// DeleteGate is the confirmation step in front of every removal. A delete
// request arms the gate; only a confirm for the same id fires it. Cancel
// and confirm both return the gate to the unarmed state.
type DeleteGate struct {
	mu      sync.Mutex
	pending uuid.UUID
	armed   bool
}

// Request arms the gate for the given id. A second request while armed
// replaces the pending id.
func (g *DeleteGate) Request(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = id
	g.armed = true
}

// Confirm reports whether the gate was armed for this id, disarming it
// either way only on success.
func (g *DeleteGate) Confirm(id uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.armed || g.pending != id {
		return false
	}
	g.armed = false
	g.pending = uuid.Nil
	return true
}

func (g *DeleteGate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = false
	g.pending = uuid.Nil
}

// Pending returns the armed id, if any.
func (g *DeleteGate) Pending() (uuid.UUID, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending, g.armed
}
