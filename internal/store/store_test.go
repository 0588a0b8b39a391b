package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadhifr/quizadmin/internal/models"
)

func TestCreateAssignsFreshID(t *testing.T) {
	c := NewCollection[*models.User]()

	first := c.Create(&models.User{Email: "a@example.com"})
	second := c.Create(&models.User{Email: "b@example.com"})

	require.NotEqual(t, uuid.Nil, first.ID)
	require.NotEqual(t, uuid.Nil, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a@example.com", list[0].Email)
	assert.Equal(t, "b@example.com", list[1].Email)
}

func TestUpdateMergesOnlyTouchedFields(t *testing.T) {
	c := NewCollection[*models.User]()
	user := c.Create(&models.User{Email: "jane@example.com", FirstName: "Jane Smith", Gems: 75, IsActive: true})

	updated, err := c.Update(user.ID, func(u *models.User) {
		u.Gems = 80
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, 80, updated.Gems)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "Jane Smith", updated.FirstName)
	assert.True(t, updated.IsActive)
}

func TestUpdateMissingIDReportsNotFound(t *testing.T) {
	c := NewCollection[*models.User]()
	c.Create(&models.User{Email: "a@example.com"})

	_, err := c.Update(uuid.New(), func(u *models.User) { u.Gems = 1 })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, c.Len())
}

func TestRemoveTwiceEndsInSameState(t *testing.T) {
	c := NewCollection[*models.Coupon]()
	coupon := c.Create(&models.Coupon{Code: "WELCOME50", Gems: 50})

	require.NoError(t, c.Remove(coupon.ID))
	assert.Equal(t, 0, c.Len())

	assert.ErrorIs(t, c.Remove(coupon.ID), ErrNotFound)
	assert.Equal(t, 0, c.Len())
}

func TestRemoveKeepsOrderOfRemaining(t *testing.T) {
	c := NewCollection[*models.Category]()
	a := c.Create(&models.Category{Name: "Science"})
	b := c.Create(&models.Category{Name: "History"})
	d := c.Create(&models.Category{Name: "Sports"})

	require.NoError(t, c.Remove(b.ID))

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, d.ID, list[1].ID)
}

func TestListReturnsCopy(t *testing.T) {
	c := NewCollection[*models.Category]()
	c.Create(&models.Category{Name: "Science"})

	list := c.List()
	list[0] = nil

	fresh := c.List()
	require.Len(t, fresh, 1)
	assert.NotNil(t, fresh[0])
}

func TestFindMatchesPredicate(t *testing.T) {
	c := NewCollection[*models.Admin]()
	c.Create(&models.Admin{Email: "admin@example.com"})

	_, found := c.Find(func(a *models.Admin) bool { return a.Email == "admin@example.com" })
	assert.True(t, found)

	_, found = c.Find(func(a *models.Admin) bool { return a.Email == "missing@example.com" })
	assert.False(t, found)
}
