// Package selection tracks which physical instances an entry will move. The
// selection is the source of truth: the requested quantity follows the
// selection count whenever anything is selected.
package selection

import (
	"fmt"

	"stockroom/pkg/models"
)

type Selection struct {
	quantity int
	ordered  []int
	index    map[int]bool
}

func New(quantity int) *Selection {
	return &Selection{
		quantity: quantity,
		index:    make(map[int]bool),
	}
}

// Toggle flips an instance in or out. The quantity follows the new count.
func (s *Selection) Toggle(instanceID int) {
	if s.index[instanceID] {
		delete(s.index, instanceID)
		for i, id := range s.ordered {
			if id == instanceID {
				s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
				break
			}
		}
		s.syncQuantity()
		return
	}

	s.index[instanceID] = true
	s.ordered = append(s.ordered, instanceID)
	s.syncQuantity()
}

// SelectFirstN replaces the selection with the first candidates in listing
// order, up to the requested quantity.
func (s *Selection) SelectFirstN(candidates []models.ItemInstance) {
	s.ordered = nil
	s.index = make(map[int]bool)

	for _, candidate := range candidates {
		if len(s.ordered) >= s.quantity {
			break
		}
		s.index[candidate.ID] = true
		s.ordered = append(s.ordered, candidate.ID)
	}
	s.syncQuantity()
}

// AddScanned admits a scanned instance after checking it belongs to the
// entry's item, sits in the expected location and carries the expected
// status. An instance already selected is left selected.
func (s *Selection) AddScanned(instance models.ItemInstance, itemID, locationID int, status string) error {
	if instance.Item != itemID {
		return fmt.Errorf("instance %s belongs to a different item", instance.InstanceCode)
	}
	if instance.CurrentLocation != locationID {
		return fmt.Errorf("instance %s is not in the expected location", instance.InstanceCode)
	}
	if instance.CurrentStatus != status {
		return fmt.Errorf("instance %s has status %s", instance.InstanceCode, instance.CurrentStatus)
	}

	if !s.index[instance.ID] {
		s.Toggle(instance.ID)
	}
	return nil
}

func (s *Selection) syncQuantity() {
	if len(s.ordered) > 0 {
		s.quantity = len(s.ordered)
	}
}

func (s *Selection) Contains(instanceID int) bool {
	return s.index[instanceID]
}

func (s *Selection) Count() int {
	return len(s.ordered)
}

// Quantity is the requested quantity, kept equal to the selection count
// while the selection is non-empty.
func (s *Selection) Quantity() int {
	return s.quantity
}

// IDs returns the selected instance ids in selection order.
func (s *Selection) IDs() []int {
	ids := make([]int, len(s.ordered))
	copy(ids, s.ordered)
	return ids
}
