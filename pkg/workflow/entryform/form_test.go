package entryform

import (
	"testing"

	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/stretchr/testify/assert"
)

var (
	centralStore = models.Location{ID: 1, Name: "Central Store", IsStore: true}
	annexStore   = models.Location{ID: 3, Name: "Annex Store", IsStore: true}
	lab          = models.Location{ID: 2, Name: "Electronics Lab", IsStore: false}
	chair        = models.Item{ID: 5, Name: "Office Chair", Code: "CHAIR"}
)

func TestSetDestinationForcesTemporaryOutsideStores(t *testing.T) {
	form := New(metadata.EntryTypeIssue)
	form.SetDestination(&lab)

	assert.True(t, form.IsTemporary)

	form = New(metadata.EntryTypeIssue)
	form.SetDestination(&annexStore)

	assert.False(t, form.IsTemporary)
}

func TestSwitchingAwayFromCorrectionClearsReference(t *testing.T) {
	form := New(metadata.EntryTypeCorrection)
	form.SetReference(&models.StockEntry{ID: 7, EntryNumber: "ISSUE-20250101-0001"})
	form.Purpose = "Fixing a miscount"

	form.SetEntryType(metadata.EntryTypeIssue)

	assert.Nil(t, form.ReferenceEntry)
	assert.Empty(t, form.Purpose)
	assert.Nil(t, form.Item)
	assert.Nil(t, form.FromLocation)
	assert.Nil(t, form.ToLocation)

	// Re-setting the same type must not disturb anything.
	form.SetReference(&models.StockEntry{ID: 8})
	form.SetEntryType(metadata.EntryTypeIssue)
	assert.NotNil(t, form.ReferenceEntry)
}

func TestSetReferenceMirrorsItemAndLocations(t *testing.T) {
	from, to := 5, 12
	fromName, toName := "Central Store", "Electronics Lab"

	form := New(metadata.EntryTypeCorrection)
	form.SetReference(&models.StockEntry{
		ID:               7,
		EntryNumber:      "ISSUE-20250101-0001",
		Item:             9,
		ItemName:         "Office Chair",
		FromLocation:     &from,
		FromLocationName: &fromName,
		ToLocation:       &to,
		ToLocationName:   &toName,
	})

	assert.Equal(t, 9, form.Item.ID)
	assert.Equal(t, "Office Chair", form.Item.Name)
	assert.Equal(t, 5, form.FromLocation.ID)
	assert.Equal(t, "Central Store", form.FromLocation.Name)
	assert.Equal(t, 12, form.ToLocation.ID)

	form.SetReference(nil)
	assert.Nil(t, form.Item)
	assert.Nil(t, form.FromLocation)
	assert.Nil(t, form.ToLocation)
}

func TestSetSelectedInstancesForcesQuantity(t *testing.T) {
	form := New(metadata.EntryTypeIssue)
	form.Quantity = 2

	form.SetSelectedInstances([]int{11, 12, 13})
	assert.Equal(t, 3, form.Quantity)

	form.SetSelectedInstances([]int{11})
	assert.Equal(t, 1, form.Quantity)

	// Emptying the selection leaves the last quantity alone.
	form.SetSelectedInstances(nil)
	assert.Equal(t, 1, form.Quantity)
}

func TestValidateIssue(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		problem string
	}{
		{
			name:    "missing source",
			mutate:  func(f *Form) { f.FromLocation = nil },
			problem: "Source location is required for an issue",
		},
		{
			name:    "missing destination",
			mutate:  func(f *Form) { f.ToLocation = nil },
			problem: "Destination location is required",
		},
		{
			name:    "same location",
			mutate:  func(f *Form) { f.ToLocation = f.FromLocation },
			problem: "Source and destination location cannot be the same",
		},
		{
			name:    "temporary without return date",
			mutate:  func(f *Form) { f.IsTemporary = true },
			problem: "Expected return date is required for a temporary issue",
		},
		{
			name:    "quantity instance mismatch",
			mutate:  func(f *Form) { f.SelectedInstances = []int{11} },
			problem: "Selected instances must match the requested quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := New(metadata.EntryTypeIssue)
			form.FromLocation = &centralStore
			form.SetDestination(&annexStore)
			form.Item = &chair
			form.Quantity = 2
			form.SelectedInstances = []int{11, 12}

			tt.mutate(form)

			assert.Contains(t, form.Validate(), tt.problem)
		})
	}
}

func TestValidateCorrectionRequiresAnchor(t *testing.T) {
	form := New(metadata.EntryTypeCorrection)
	form.SetDestination(&centralStore)
	form.Item = &chair

	problems := form.Validate()

	assert.Contains(t, problems, "Reference entry is required for a correction")
	assert.Contains(t, problems, "Purpose is required for a correction")
	assert.Contains(t, problems, "Correction requires explicit instances")
}

func TestValidateCleanDraft(t *testing.T) {
	form := New(metadata.EntryTypeIssue)
	form.FromLocation = &centralStore
	form.SetDestination(&lab)
	form.Item = &chair
	form.Quantity = 2
	form.ExpectedReturnDate = "2025-02-01"
	form.SelectedInstances = []int{11, 12}

	assert.Empty(t, form.Validate())
}

func TestPrefillReturnSwapsLocations(t *testing.T) {
	issue := models.StockEntry{
		ID:          7,
		EntryNumber: "ISSUE-20250101-0003",
		Quantity:    2,
		InstancesDetails: []models.InstanceDetail{
			{ID: 11, InstanceCode: "CHAIR-00011"},
			{ID: 12, InstanceCode: "CHAIR-00012"},
		},
	}

	form := New(metadata.EntryTypeReceipt)
	form.PrefillReturn(issue, &lab, &centralStore, &chair)

	assert.Equal(t, metadata.EntryTypeReceipt, form.EntryType)
	assert.Equal(t, &lab, form.FromLocation)
	assert.Equal(t, &centralStore, form.ToLocation)
	assert.Equal(t, 2, form.Quantity)
	assert.Equal(t, "Return from temporary issue ISSUE-20250101-0003", form.Purpose)
	assert.Equal(t, []int{11, 12}, form.SelectedInstances)
	assert.Empty(t, form.Validate())
}

func TestBuildRequest(t *testing.T) {
	form := New(metadata.EntryTypeIssue)
	form.FromLocation = &centralStore
	form.SetDestination(&lab)
	form.Item = &chair
	form.Quantity = 2
	form.ExpectedReturnDate = "2025-02-01"
	form.SelectedInstances = []int{11, 12}
	form.Remarks = "Event setup"

	req := form.BuildRequest()

	assert.Equal(t, "ISSUE", req.EntryType)
	assert.Equal(t, 1, *req.FromLocation)
	assert.Equal(t, 2, *req.ToLocation)
	assert.Equal(t, 5, req.Item)
	assert.True(t, req.IsTemporary)
	assert.Equal(t, "2025-02-01", *req.ExpectedReturnDate)
	assert.Equal(t, []int{11, 12}, req.Instances)
}
