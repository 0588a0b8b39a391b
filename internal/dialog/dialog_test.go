package dialog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDialogOpenCreate(t *testing.T) {
	var d Dialog

	d.OpenCreate()

	state, target := d.State()
	assert.Equal(t, OpenForCreate, state)
	assert.Equal(t, uuid.Nil, target)
}

func TestDialogOpenEditReplacesWithoutStacking(t *testing.T) {
	var d Dialog
	first := uuid.New()
	second := uuid.New()

	d.OpenEdit(first)
	d.OpenEdit(second)

	state, target := d.State()
	assert.Equal(t, OpenForEdit, state)
	assert.Equal(t, second, target)

	d.OpenCreate()
	state, target = d.State()
	assert.Equal(t, OpenForCreate, state)
	assert.Equal(t, uuid.Nil, target)
}

func TestDialogCancelCloses(t *testing.T) {
	var d Dialog
	d.OpenEdit(uuid.New())

	d.Cancel()

	state, target := d.State()
	assert.Equal(t, Closed, state)
	assert.Equal(t, uuid.Nil, target)
}

func TestDialogSubmitSuccessCloses(t *testing.T) {
	var d Dialog
	d.OpenCreate()

	d.SubmitSuccess()

	state, _ := d.State()
	assert.Equal(t, Closed, state)
}

func TestDeleteGateConfirmRequiresMatchingID(t *testing.T) {
	var g DeleteGate
	armed := uuid.New()
	other := uuid.New()

	g.Request(armed)

	assert.False(t, g.Confirm(other))
	pending, ok := g.Pending()
	assert.True(t, ok)
	assert.Equal(t, armed, pending)

	assert.True(t, g.Confirm(armed))
	_, ok = g.Pending()
	assert.False(t, ok)
}

func TestDeleteGateCancelReturnsToIdle(t *testing.T) {
	var g DeleteGate
	id := uuid.New()

	g.Request(id)
	g.Cancel()

	_, ok := g.Pending()
	assert.False(t, ok)
	assert.False(t, g.Confirm(id))
}

func TestDeleteGateSecondRequestReplacesPending(t *testing.T) {
	var g DeleteGate
	first := uuid.New()
	second := uuid.New()

	g.Request(first)
	g.Request(second)

	assert.False(t, g.Confirm(first))
	assert.True(t, g.Confirm(second))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "open_for_create", OpenForCreate.String())
	assert.Equal(t, "open_for_edit", OpenForEdit.String())
}
