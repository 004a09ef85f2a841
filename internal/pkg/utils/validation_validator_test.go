package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slotsHolder struct {
	Date  string   `validate:"required,iso_date"`
	Slots []string `validate:"required,min=1,unique_slots"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   slotsHolder
		wantErr bool
	}{
		{
			name:  "valid date and distinct slots",
			input: slotsHolder{Date: "2024-05-01", Slots: []string{"08:00 AM - 08:30 AM", "09:00 AM - 09:30 AM"}},
		},
		{
			name:    "duplicate slot labels",
			input:   slotsHolder{Date: "2024-05-01", Slots: []string{"08:00 AM - 08:30 AM", "08:00 AM - 08:30 AM"}},
			wantErr: true,
		},
		{
			name:    "display formatted date",
			input:   slotsHolder{Date: "May 1, 2024", Slots: []string{"08:00 AM - 08:30 AM"}},
			wantErr: true,
		},
		{
			name:    "impossible calendar date",
			input:   slotsHolder{Date: "2024-02-30", Slots: []string{"08:00 AM - 08:30 AM"}},
			wantErr: true,
		},
		{
			name:    "empty slots",
			input:   slotsHolder{Date: "2024-05-01", Slots: []string{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-12-31"))
	assert.False(t, IsISODate("2024-1-05"))
	assert.False(t, IsISODate(""))
}
