package catalog

import (
	"testing"

	"github.com/couplewheel/couplewheel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreNeverEmpty(t *testing.T) {
	c := NewWithDefaults()

	require.NotEmpty(t, c.ListFor(models.RoleMaster))
	require.NotEmpty(t, c.ListFor(models.RoleSub))
	assert.Len(t, c.ListFor(models.RoleMaster), 10)
	assert.Len(t, c.ListFor(models.RoleSub), 10)
}

func TestAppendKeepsOrderAndAllowsDuplicates(t *testing.T) {
	c := NewWithDefaults()
	before := c.Len(models.RoleMaster)

	activity := models.Activity{
		Text:     "Dare: Slow dance in the dark",
		Duration: 5,
		Points:   120,
		Type:     models.ActivityTypeDare,
	}

	_, err := c.Append(models.RoleMaster, activity)
	require.NoError(t, err)
	_, err = c.Append(models.RoleMaster, activity)
	require.NoError(t, err)

	list := c.ListFor(models.RoleMaster)
	require.Len(t, list, before+2)
	assert.Equal(t, activity, list[before])
	assert.Equal(t, activity, list[before+1])

	// The other role's catalog is untouched
	assert.Len(t, c.ListFor(models.RoleSub), 10)
}

func TestAppendAppliesCustomDefaults(t *testing.T) {
	c := NewWithDefaults()

	// Custom submissions carry text and duration only
	stored, err := c.Append(models.RoleSub, models.Activity{
		Text:     "Whisper a secret",
		Duration: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultCustomPoints, stored.Points)
	assert.Equal(t, DefaultCustomType, stored.Type)

	list := c.ListFor(models.RoleSub)
	assert.Equal(t, stored, list[len(list)-1])
}

func TestAppendRejectsIncompleteSubmissions(t *testing.T) {
	c := NewWithDefaults()

	_, err := c.Append(models.RoleMaster, models.Activity{Text: "   ", Duration: 5})
	assert.ErrorIs(t, err, ErrBlankText)

	_, err = c.Append(models.RoleMaster, models.Activity{Text: "No time at all", Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = c.Append(models.Role("jester"), models.Activity{Text: "Juggle", Duration: 5})
	assert.ErrorIs(t, err, ErrUnknownRole)

	// Nothing was appended by the rejected submissions
	assert.Equal(t, 10, c.Len(models.RoleMaster))
}

func TestListForReturnsACopy(t *testing.T) {
	c := NewWithDefaults()

	list := c.ListFor(models.RoleMaster)
	list[0].Text = "mutated"

	assert.NotEqual(t, "mutated", c.ListFor(models.RoleMaster)[0].Text)
}
