// Package ack reconciles a pending store-to-store issue on the receiving
// side: every arriving instance is either accepted or rejected with a reason.
package ack

import (
	"fmt"

	"stockroom/pkg/models"
)

type Reconciliation struct {
	ordered  []int
	accepted map[int]bool
	reasons  map[int]string
	codes    map[int]string
}

// New starts a reconciliation over the entry's instances. Everything begins
// accepted; the operator flags exceptions.
func New(details []models.InstanceDetail) *Reconciliation {
	r := &Reconciliation{
		accepted: make(map[int]bool, len(details)),
		reasons:  make(map[int]string),
		codes:    make(map[int]string, len(details)),
	}
	for _, detail := range details {
		r.ordered = append(r.ordered, detail.ID)
		r.accepted[detail.ID] = true
		r.codes[detail.ID] = detail.InstanceCode
	}
	return r
}

// Toggle flips one instance between accepted and rejected. Reasons entered
// earlier stick around, so flipping back and forth loses nothing.
func (r *Reconciliation) Toggle(instanceID int) error {
	accepted, ok := r.accepted[instanceID]
	if !ok {
		return fmt.Errorf("instance %d is not part of this entry", instanceID)
	}

	r.accepted[instanceID] = !accepted
	return nil
}

// AcceptAll resets every instance to accepted and clears all reasons.
func (r *Reconciliation) AcceptAll() {
	for id := range r.accepted {
		r.accepted[id] = true
	}
	r.reasons = make(map[int]string)
}

// SetReason records a rejection reason. The reason is kept even while the
// instance is accepted; it only counts at build time for rejected instances.
func (r *Reconciliation) SetReason(instanceID int, reason string) error {
	if _, ok := r.accepted[instanceID]; !ok {
		return fmt.Errorf("instance %d is not part of this entry", instanceID)
	}

	r.reasons[instanceID] = reason
	return nil
}

func (r *Reconciliation) IsAccepted(instanceID int) bool {
	return r.accepted[instanceID]
}

func (r *Reconciliation) RejectedCount() int {
	count := 0
	for _, accepted := range r.accepted {
		if !accepted {
			count++
		}
	}
	return count
}

// Build renders the acknowledgment payload. Every rejected instance must
// carry a non-empty reason.
func (r *Reconciliation) Build() (*models.AcknowledgeRequest, error) {
	if len(r.ordered) == 0 {
		return nil, fmt.Errorf("entry has no instances to acknowledge")
	}

	req := models.AcknowledgeRequest{
		AcceptedIDs:   []int{},
		RejectedItems: []models.RejectedItem{},
	}

	for _, id := range r.ordered {
		if r.accepted[id] {
			req.AcceptedIDs = append(req.AcceptedIDs, id)
			continue
		}

		reason := r.reasons[id]
		if reason == "" {
			return nil, fmt.Errorf("rejected instance %s needs a reason", r.codes[id])
		}
		req.RejectedItems = append(req.RejectedItems, models.RejectedItem{
			ID:     id,
			Reason: reason,
		})
	}

	return &req, nil
}
