// Package policy decides which locations an entry form may offer on each
// side of a movement, given the entry type.
package policy

import (
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"
)

// Options holds the location choices an entry form should present.
type Options struct {
	FromOptions []models.Location
	ToOptions   []models.Location
}

// OptionsFor applies the movement rules to the location list. Issues leave a
// store, receipts land in one. Corrections are anchored to a reference entry,
// so both sides stay unrestricted here and the form locks them.
func OptionsFor(entryType metadata.EntryType, locations []models.Location) Options {
	stores := filterStores(locations)

	switch entryType {
	case metadata.EntryTypeIssue:
		return Options{FromOptions: stores, ToOptions: locations}
	case metadata.EntryTypeReceipt:
		return Options{FromOptions: locations, ToOptions: stores}
	default:
		return Options{FromOptions: locations, ToOptions: locations}
	}
}

// ForceTemporary reports whether the chosen destination forces the entry
// into a loan. Anything issued outside the store network must come back.
func ForceTemporary(entryType metadata.EntryType, to *models.Location) bool {
	return entryType == metadata.EntryTypeIssue && to != nil && !to.IsStore
}

func filterStores(locations []models.Location) []models.Location {
	var stores []models.Location
	for _, location := range locations {
		if location.IsStore {
			stores = append(stores, location)
		}
	}
	return stores
}
