package selection

import (
	"testing"

	"stockroom/pkg/models"

	"github.com/stretchr/testify/assert"
)

var candidates = []models.ItemInstance{
	{ID: 11, InstanceCode: "CHAIR-00011", Item: 5, CurrentLocation: 1, CurrentStatus: "IN_STORE"},
	{ID: 12, InstanceCode: "CHAIR-00012", Item: 5, CurrentLocation: 1, CurrentStatus: "IN_STORE"},
	{ID: 13, InstanceCode: "CHAIR-00013", Item: 5, CurrentLocation: 1, CurrentStatus: "IN_STORE"},
}

func TestToggleGrowsSelection(t *testing.T) {
	sel := New(2)

	sel.Toggle(11)
	sel.Toggle(12)
	sel.Toggle(13)

	assert.Equal(t, []int{11, 12, 13}, sel.IDs())
	assert.Equal(t, 3, sel.Quantity())

	// Deselecting shrinks the quantity with the selection.
	sel.Toggle(11)
	assert.Equal(t, []int{12, 13}, sel.IDs())
	assert.Equal(t, 2, sel.Quantity())
}

func TestSelectFirstN(t *testing.T) {
	sel := New(2)
	sel.SelectFirstN(candidates)

	assert.Equal(t, []int{11, 12}, sel.IDs())
	assert.Equal(t, 2, sel.Quantity())

	// Replaces any prior selection.
	sel.SelectFirstN(candidates[1:])
	assert.Equal(t, []int{12, 13}, sel.IDs())
}

func TestSelectFirstNWithTooFewCandidates(t *testing.T) {
	sel := New(5)
	sel.SelectFirstN(candidates)

	assert.Equal(t, 3, sel.Count())
	assert.Equal(t, 3, sel.Quantity())
}

func TestQuantityFollowsSelection(t *testing.T) {
	sel := New(2)

	sel.SelectFirstN(candidates[:2])
	assert.Equal(t, sel.Count(), sel.Quantity())

	sel.Toggle(13)
	assert.Equal(t, 3, sel.Count())
	assert.Equal(t, sel.Count(), sel.Quantity())

	extra := models.ItemInstance{ID: 14, InstanceCode: "CHAIR-00014", Item: 5, CurrentLocation: 1, CurrentStatus: "IN_STORE"}
	assert.NoError(t, sel.AddScanned(extra, 5, 1, "IN_STORE"))
	assert.Equal(t, 4, sel.Count())
	assert.Equal(t, sel.Count(), sel.Quantity())
}

func TestAddScannedValidations(t *testing.T) {
	sel := New(2)

	wrongItem := models.ItemInstance{ID: 21, InstanceCode: "DESK-00021", Item: 6, CurrentLocation: 1, CurrentStatus: "IN_STORE"}
	assert.Error(t, sel.AddScanned(wrongItem, 5, 1, "IN_STORE"))

	wrongLocation := models.ItemInstance{ID: 22, InstanceCode: "CHAIR-00022", Item: 5, CurrentLocation: 9, CurrentStatus: "IN_STORE"}
	assert.Error(t, sel.AddScanned(wrongLocation, 5, 1, "IN_STORE"))

	wrongStatus := models.ItemInstance{ID: 23, InstanceCode: "CHAIR-00023", Item: 5, CurrentLocation: 1, CurrentStatus: "TEMPORARY_ISSUED"}
	assert.Error(t, sel.AddScanned(wrongStatus, 5, 1, "IN_STORE"))

	assert.NoError(t, sel.AddScanned(candidates[0], 5, 1, "IN_STORE"))
	assert.True(t, sel.Contains(11))

	// Scanning the same code twice keeps it selected without error.
	assert.NoError(t, sel.AddScanned(candidates[0], 5, 1, "IN_STORE"))
	assert.Equal(t, 1, sel.Count())
}
