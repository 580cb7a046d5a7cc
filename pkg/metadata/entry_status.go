package metadata

import "fmt"

type EntryStatus string

const (
	EntryStatusPendingAck EntryStatus = "PENDING_ACK"
	EntryStatusCompleted  EntryStatus = "COMPLETED"
	EntryStatusCancelled  EntryStatus = "CANCELLED"
)

func NewEntryStatus(value string) (EntryStatus, error) {
	status := EntryStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid entry status: %s", value)
	}
	return status, nil
}

func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusPendingAck, EntryStatusCompleted, EntryStatusCancelled:
		return true
	default:
		return false
	}
}

func (s EntryStatus) String() string {
	return string(s)
}
