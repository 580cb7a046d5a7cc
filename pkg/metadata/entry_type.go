package metadata

import (
	"fmt"
	"strings"
)

type EntryType string

const (
	EntryTypeIssue      EntryType = "ISSUE"
	EntryTypeReceipt    EntryType = "RECEIPT"
	EntryTypeCorrection EntryType = "CORRECTION"
)

func NewEntryType(value string) (EntryType, error) {
	entryType := EntryType(strings.ToUpper(strings.TrimSpace(value)))
	if !entryType.IsValid() {
		return "", fmt.Errorf("invalid entry type: %s, only valid values are: %s, %s, %s",
			value, EntryTypeIssue, EntryTypeReceipt, EntryTypeCorrection)
	}
	return entryType, nil
}

func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeIssue, EntryTypeReceipt, EntryTypeCorrection:
		return true
	default:
		return false
	}
}

func (t EntryType) String() string {
	return string(t)
}
