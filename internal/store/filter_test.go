package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadhifr/quizadmin/internal/models"
)

func categoryFields(c *models.Category) []string {
	return []string{c.Name}
}

func userFields(u *models.User) []string {
	return []string{u.Email, u.FirstName}
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	items := []*models.Category{
		{Name: "Science"},
		{Name: "History"},
		{Name: "Sports"},
	}

	got := Filter(items, "", categoryFields)

	require.Len(t, got, 3)
	for i := range items {
		assert.Same(t, items[i], got[i])
	}
}

func TestFilterMatchesCaseInsensitiveSubstring(t *testing.T) {
	items := []*models.Category{{Name: "Science"}}

	assert.Len(t, Filter(items, "sci", categoryFields), 1)
	assert.Len(t, Filter(items, "SCIENCE", categoryFields), 1)
	assert.Len(t, Filter(items, "enc", categoryFields), 1)
	assert.Empty(t, Filter(items, "zz", categoryFields))
}

func TestFilterResultIsSubsetWithMatchingField(t *testing.T) {
	items := []*models.User{
		{Email: "john@example.com", FirstName: "John Doe"},
		{Email: "jane@example.com", FirstName: "Jane Smith"},
		{Email: "bob@other.org", FirstName: "Bob"},
	}

	got := Filter(items, "example", userFields)

	require.Len(t, got, 2)
	for _, u := range got {
		matched := false
		for _, f := range userFields(u) {
			if strings.Contains(strings.ToLower(f), "example") {
				matched = true
			}
		}
		assert.True(t, matched)
	}
}

func TestFilterMatchesAnyDesignatedField(t *testing.T) {
	items := []*models.User{
		{Email: "a@x.com", FirstName: "Jane Smith"},
	}

	assert.Len(t, Filter(items, "smith", userFields), 1)
	assert.Len(t, Filter(items, "a@x", userFields), 1)
}

func TestFilterSkipsEmptyFields(t *testing.T) {
	fields := func(u *models.User) []string {
		location := ""
		if u.Location != nil {
			location = *u.Location
		}
		return []string{u.Email, location}
	}
	items := []*models.User{{Email: "john@example.com"}}

	assert.Empty(t, Filter(items, "york", fields))
	assert.Len(t, Filter(items, "john", fields), 1)
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	items := []*models.Category{
		{Name: "Art History"},
		{Name: "Science"},
		{Name: "History"},
	}

	got := Filter(items, "history", categoryFields)

	require.Len(t, got, 2)
	assert.Equal(t, "Art History", got[0].Name)
	assert.Equal(t, "History", got[1].Name)
}
