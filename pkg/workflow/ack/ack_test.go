package ack

import (
	"testing"

	"stockroom/pkg/models"

	"github.com/stretchr/testify/assert"
)

var details = []models.InstanceDetail{
	{ID: 11, InstanceCode: "CHAIR-00011"},
	{ID: 12, InstanceCode: "CHAIR-00012"},
	{ID: 13, InstanceCode: "CHAIR-00013"},
}

func TestDefaultsToAllAccepted(t *testing.T) {
	r := New(details)

	req, err := r.Build()
	assert.NoError(t, err)
	assert.Equal(t, []int{11, 12, 13}, req.AcceptedIDs)
	assert.Empty(t, req.RejectedItems)
}

func TestRejectionRequiresReason(t *testing.T) {
	r := New(details)
	assert.NoError(t, r.Toggle(12))

	_, err := r.Build()
	assert.EqualError(t, err, "rejected instance CHAIR-00012 needs a reason")

	assert.NoError(t, r.SetReason(12, "Damaged in transit"))

	req, err := r.Build()
	assert.NoError(t, err)
	assert.Equal(t, []int{11, 13}, req.AcceptedIDs)
	assert.Equal(t, []models.RejectedItem{{ID: 12, Reason: "Damaged in transit"}}, req.RejectedItems)
}

func TestReasonSurvivesToggleRoundTrip(t *testing.T) {
	r := New(details)
	assert.NoError(t, r.Toggle(12))
	assert.NoError(t, r.SetReason(12, "Wrong model"))

	assert.NoError(t, r.Toggle(12))
	assert.True(t, r.IsAccepted(12))

	// Rejecting again picks the earlier reason back up.
	assert.NoError(t, r.Toggle(12))
	req, err := r.Build()
	assert.NoError(t, err)
	assert.Equal(t, []models.RejectedItem{{ID: 12, Reason: "Wrong model"}}, req.RejectedItems)
}

func TestAcceptAll(t *testing.T) {
	r := New(details)
	assert.NoError(t, r.Toggle(11))
	assert.NoError(t, r.Toggle(13))
	assert.NoError(t, r.SetReason(11, "Scratched"))

	r.AcceptAll()

	assert.Zero(t, r.RejectedCount())
	req, err := r.Build()
	assert.NoError(t, err)
	assert.Equal(t, []int{11, 12, 13}, req.AcceptedIDs)
}

func TestForeignInstanceRejected(t *testing.T) {
	r := New(details)

	assert.Error(t, r.Toggle(99))
	assert.Error(t, r.SetReason(99, "Not ours"))
}

func TestReasonOnAcceptedInstanceKeptAside(t *testing.T) {
	r := New(details)
	assert.NoError(t, r.SetReason(11, "Scratched"))

	req, err := r.Build()
	assert.NoError(t, err)
	assert.Equal(t, []int{11, 12, 13}, req.AcceptedIDs)
	assert.Empty(t, req.RejectedItems)

	// The parked reason applies once the instance is rejected.
	assert.NoError(t, r.Toggle(11))
	req, err = r.Build()
	assert.NoError(t, err)
	assert.Equal(t, []models.RejectedItem{{ID: 11, Reason: "Scratched"}}, req.RejectedItems)
}

func TestBuildFailsWithoutInstances(t *testing.T) {
	r := New(nil)

	_, err := r.Build()
	assert.EqualError(t, err, "entry has no instances to acknowledge")
}
