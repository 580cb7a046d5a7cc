package policy

import (
	"testing"

	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/stretchr/testify/assert"
)

var testLocations = []models.Location{
	{ID: 1, Name: "Central Store", IsStore: true},
	{ID: 2, Name: "Electronics Lab", IsStore: false},
	{ID: 3, Name: "Annex Store", IsStore: true},
	{ID: 4, Name: "Physics Department", IsStore: false},
}

func TestOptionsForIssue(t *testing.T) {
	options := OptionsFor(metadata.EntryTypeIssue, testLocations)

	assert.Len(t, options.FromOptions, 2)
	for _, location := range options.FromOptions {
		assert.True(t, location.IsStore)
	}
	assert.Len(t, options.ToOptions, 4)
}

func TestOptionsForReceipt(t *testing.T) {
	options := OptionsFor(metadata.EntryTypeReceipt, testLocations)

	assert.Len(t, options.FromOptions, 4)
	assert.Len(t, options.ToOptions, 2)
	for _, location := range options.ToOptions {
		assert.True(t, location.IsStore)
	}
}

func TestOptionsForCorrection(t *testing.T) {
	options := OptionsFor(metadata.EntryTypeCorrection, testLocations)

	assert.Len(t, options.FromOptions, 4)
	assert.Len(t, options.ToOptions, 4)
}

func TestForceTemporary(t *testing.T) {
	lab := testLocations[1]
	store := testLocations[0]

	assert.True(t, ForceTemporary(metadata.EntryTypeIssue, &lab))
	assert.False(t, ForceTemporary(metadata.EntryTypeIssue, &store))
	assert.False(t, ForceTemporary(metadata.EntryTypeReceipt, &lab))
	assert.False(t, ForceTemporary(metadata.EntryTypeIssue, nil))
}
