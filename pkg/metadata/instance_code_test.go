package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInstanceCode(t *testing.T) {
	tests := []struct {
		name       string
		itemCode   string
		instanceID int
		expected   string
	}{
		{
			name:       "Basic Case",
			itemCode:   "CHAIR",
			instanceID: 42,
			expected:   "CHAIR-00042",
		},
		{
			name:       "Lowercase Item Code",
			itemCode:   "mon24",
			instanceID: 7,
			expected:   "MON24-00007",
		},
		{
			name:       "Wide Id",
			itemCode:   "LAPTOP",
			instanceID: 123456,
			expected:   "LAPTOP-123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := NewInstanceCode(tt.itemCode, tt.instanceID)
			assert.Equal(t, tt.expected, code.Generate())
		})
	}
}
