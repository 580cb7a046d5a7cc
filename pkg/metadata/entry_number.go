package metadata

import (
	"fmt"
	"time"
)

// EntryNumber is the human-facing identifier printed on stock entry
// paperwork, e.g. ISSUE-20250101-0001. The sequence restarts daily.
type EntryNumber struct {
	entryType EntryType
	date      time.Time
	sequence  int
}

func NewEntryNumber(entryType EntryType, date time.Time, sequence int) EntryNumber {
	return EntryNumber{
		entryType: entryType,
		date:      date,
		sequence:  sequence,
	}
}

func (n EntryNumber) Generate() string {
	return fmt.Sprintf("%s-%s-%04d", n.entryType, n.date.Format("20060102"), n.sequence)
}
