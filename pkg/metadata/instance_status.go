package metadata

import "fmt"

// InstanceStatus is the lifecycle status of a single tracked item instance.
// Instances only change status through stock entry operations.
type InstanceStatus string

const (
	StatusInStore         InstanceStatus = "IN_STORE"
	StatusInUse           InstanceStatus = "IN_USE"
	StatusInTransit       InstanceStatus = "IN_TRANSIT"
	StatusTemporaryIssued InstanceStatus = "TEMPORARY_ISSUED"
	StatusUnderRepair     InstanceStatus = "UNDER_REPAIR"
	StatusDisposed        InstanceStatus = "DISPOSED"
	StatusLost            InstanceStatus = "LOST"
	StatusCondemned       InstanceStatus = "CONDEMNED"
)

func NewInstanceStatus(value string) (InstanceStatus, error) {
	status := InstanceStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid instance status: %s", value)
	}
	return status, nil
}

func (s InstanceStatus) IsValid() bool {
	switch s {
	case StatusInStore, StatusInUse, StatusInTransit, StatusTemporaryIssued,
		StatusUnderRepair, StatusDisposed, StatusLost, StatusCondemned:
		return true
	default:
		return false
	}
}

func (s InstanceStatus) String() string {
	return string(s)
}
