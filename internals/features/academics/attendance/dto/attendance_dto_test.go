package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAttendanceRequest_Validate(t *testing.T) {
	v := validator.New()

	req := RecordAttendanceRequest{
		CourseID: uuid.New(),
		Date:     "2026-01-15",
		Slot:     "A1",
		Entries: []RollCallEntryRequest{
			{StudentID: uuid.New(), Status: "PRESENT"},
		},
	}
	require.NoError(t, v.Struct(&req))

	d, err := req.ParseDate()
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())

	// empty entries rejected
	req.Entries = nil
	assert.Error(t, v.Struct(&req))
}

func TestRecordAttendanceRequest_BadDate(t *testing.T) {
	req := RecordAttendanceRequest{
		CourseID: uuid.New(),
		Date:     "15-01-2026",
		Slot:     "A1",
		Entries: []RollCallEntryRequest{
			{StudentID: uuid.New(), Status: "PRESENT"},
		},
	}
	_, err := req.ParseDate()
	assert.Error(t, err)
}
