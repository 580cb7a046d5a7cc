// Package entryform holds the state of a stock entry being drafted and the
// rules that shape it before submission.
package entryform

import (
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"
	"stockroom/pkg/workflow/policy"
)

// Form is a stock entry draft. Setters keep the draft consistent with the
// movement rules as the operator fills it in.
type Form struct {
	EntryType           metadata.EntryType
	FromLocation        *models.Location
	ToLocation          *models.Location
	Item                *models.Item
	Quantity            int
	IsTemporary         bool
	ExpectedReturnDate  string
	ReferenceEntry      *models.StockEntry
	Purpose             string
	Remarks             string
	SelectedInstances   []int
	AutoCreateInstances bool
}

func New(entryType metadata.EntryType) *Form {
	return &Form{EntryType: entryType, Quantity: 1}
}

// SetEntryType switches the variant. Leaving CORRECTION drops the reference
// state so a stale anchor cannot leak into the next draft. Re-setting the
// same type is a no-op.
func (f *Form) SetEntryType(entryType metadata.EntryType) {
	if f.EntryType == entryType {
		return
	}
	if f.EntryType == metadata.EntryTypeCorrection {
		f.SetReference(nil)
		f.Purpose = ""
	}
	f.EntryType = entryType
	f.SelectedInstances = nil
}

// SetDestination applies the loan rule: issuing outside the store network
// always marks the entry temporary.
func (f *Form) SetDestination(location *models.Location) {
	f.ToLocation = location
	if policy.ForceTemporary(f.EntryType, location) {
		f.IsTemporary = true
	}
}

// SetReference anchors the draft to an existing entry and mirrors its item
// and locations into the form, where the correction rules lock them. Passing
// nil clears the anchor and the mirrored fields.
func (f *Form) SetReference(entry *models.StockEntry) {
	f.ReferenceEntry = entry
	if entry == nil {
		f.Item = nil
		f.FromLocation = nil
		f.ToLocation = nil
		return
	}

	f.Item = &models.Item{ID: entry.Item, Name: entry.ItemName}
	f.FromLocation = mirrorLocation(entry.FromLocation, entry.FromLocationName)
	f.ToLocation = mirrorLocation(entry.ToLocation, entry.ToLocationName)
}

func mirrorLocation(id *int, name *string) *models.Location {
	if id == nil {
		return nil
	}
	location := models.Location{ID: *id}
	if name != nil {
		location.Name = *name
	}
	return &location
}

// SetSelectedInstances replaces the picked instances. The quantity follows
// the selection count whenever the selection is non-empty.
func (f *Form) SetSelectedInstances(ids []int) {
	f.SelectedInstances = ids
	if len(ids) > 0 {
		f.Quantity = len(ids)
	}
}

// PrefillReturn turns the draft into the mirror receipt for a pending
// temporary issue: locations swap, and the issue's own instances are
// preselected so the operator only confirms.
func (f *Form) PrefillReturn(issue models.StockEntry, from, to *models.Location, item *models.Item) {
	f.EntryType = metadata.EntryTypeReceipt
	f.FromLocation = from
	f.ToLocation = to
	f.Item = item
	f.Quantity = issue.Quantity
	f.IsTemporary = false
	f.ExpectedReturnDate = ""
	f.ReferenceEntry = &issue
	f.Purpose = "Return from temporary issue " + issue.EntryNumber
	f.AutoCreateInstances = false

	f.SelectedInstances = make([]int, 0, len(issue.InstancesDetails))
	for _, detail := range issue.InstancesDetails {
		f.SelectedInstances = append(f.SelectedInstances, detail.ID)
	}
}

// Validate runs the presence checks and returns one message per problem.
// An empty slice means the draft is submittable.
func (f *Form) Validate() []string {
	var problems []string

	if f.EntryType == metadata.EntryTypeIssue && f.FromLocation == nil {
		problems = append(problems, "Source location is required for an issue")
	}
	if f.ToLocation == nil {
		problems = append(problems, "Destination location is required")
	}
	if f.FromLocation != nil && f.ToLocation != nil && f.FromLocation.ID == f.ToLocation.ID {
		problems = append(problems, "Source and destination location cannot be the same")
	}
	if f.Item == nil {
		problems = append(problems, "Item is required")
	}
	if f.Quantity < 1 {
		problems = append(problems, "Quantity must be at least 1")
	}
	if f.IsTemporary && f.ExpectedReturnDate == "" {
		problems = append(problems, "Expected return date is required for a temporary issue")
	}

	if f.EntryType == metadata.EntryTypeCorrection {
		if f.ReferenceEntry == nil {
			problems = append(problems, "Reference entry is required for a correction")
		}
		if f.Purpose == "" {
			problems = append(problems, "Purpose is required for a correction")
		}
		if len(f.SelectedInstances) == 0 {
			problems = append(problems, "Correction requires explicit instances")
		}
		return problems
	}

	if !f.AutoCreateInstances && len(f.SelectedInstances) != f.Quantity {
		problems = append(problems, "Selected instances must match the requested quantity")
	}

	return problems
}

// BuildRequest renders the draft into the wire payload.
func (f *Form) BuildRequest() models.StockEntryRequest {
	req := models.StockEntryRequest{
		EntryType:           f.EntryType.String(),
		Quantity:            f.Quantity,
		IsTemporary:         f.IsTemporary,
		Instances:           f.SelectedInstances,
		AutoCreateInstances: f.AutoCreateInstances,
		Purpose:             f.Purpose,
		Remarks:             f.Remarks,
	}

	if f.FromLocation != nil {
		from := f.FromLocation.ID
		req.FromLocation = &from
	}
	if f.ToLocation != nil {
		to := f.ToLocation.ID
		req.ToLocation = &to
	}
	if f.Item != nil {
		req.Item = f.Item.ID
	}
	if f.ExpectedReturnDate != "" {
		date := f.ExpectedReturnDate
		req.ExpectedReturnDate = &date
	}
	if f.ReferenceEntry != nil {
		reference := f.ReferenceEntry.ID
		req.ReferenceEntry = &reference
	}

	return req
}
