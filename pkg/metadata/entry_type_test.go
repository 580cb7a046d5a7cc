package metadata

import (
	"testing"
)

func TestNewEntryType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EntryType
		wantErr bool
	}{
		{"valid issue", "ISSUE", EntryTypeIssue, false},
		{"valid receipt lowercase", "receipt", EntryTypeReceipt, false},
		{"valid correction with spaces", "  CORRECTION ", EntryTypeCorrection, false},
		{"invalid transfer", "TRANSFER", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEntryType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEntryType() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("NewEntryType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInstanceStatusIsValid(t *testing.T) {
	tests := []struct {
		name     string
		status   InstanceStatus
		expected bool
	}{
		{"in store", StatusInStore, true},
		{"temporary issued", StatusTemporaryIssued, true},
		{"in transit", StatusInTransit, true},
		{"condemned", StatusCondemned, true},
		{"unknown", InstanceStatus("ON_LOAN"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}
