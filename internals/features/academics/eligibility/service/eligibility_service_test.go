package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	attService "vtop_backend/internals/features/academics/attendance/service"
)

func summary(courseID uuid.UUID, attended, total int, pct float64) attService.SummaryValue {
	return attService.SummaryValue{
		CourseID:        courseID,
		AttendedClasses: attended,
		TotalClasses:    total,
		Percentage:      pct,
	}
}

func TestAverageAttendance_NoRegistrations(t *testing.T) {
	assert.Equal(t, 100.0, AverageAttendance(nil, nil))
}

func TestAverageAttendance_UnrecordedCourseCountsAsFull(t *testing.T) {
	c1, c2 := uuid.New(), uuid.New()
	// c1 at 50%, c2 never recorded -> (50 + 100) / 2
	avg := AverageAttendance(
		[]uuid.UUID{c1, c2},
		[]attService.SummaryValue{summary(c1, 1, 2, 50)},
	)
	assert.InDelta(t, 75.0, avg, 1e-9)
}

func TestAverageAttendance_ZeroTotalSummaryCountsAsFull(t *testing.T) {
	c1 := uuid.New()
	avg := AverageAttendance(
		[]uuid.UUID{c1},
		[]attService.SummaryValue{summary(c1, 0, 0, 0)},
	)
	assert.InDelta(t, 100.0, avg, 1e-9)
}

func TestAverageAttendance_Mean(t *testing.T) {
	c1, c2, c3 := uuid.New(), uuid.New(), uuid.New()
	avg := AverageAttendance(
		[]uuid.UUID{c1, c2, c3},
		[]attService.SummaryValue{
			summary(c1, 9, 10, 90),
			summary(c2, 6, 10, 60),
			summary(c3, 3, 10, 30),
		},
	)
	assert.InDelta(t, 60.0, avg, 1e-9)
}

func TestDecide_BoundaryInclusive(t *testing.T) {
	// exactly 75.0 is eligible
	eligible, blockers := Decide(75.0, false)
	assert.True(t, eligible)
	assert.Empty(t, blockers)

	// 74.99 is not
	eligible, blockers = Decide(74.99, false)
	assert.False(t, eligible)
	assert.Equal(t, []string{BlockerLowAttendance}, blockers)
}

func TestDecide_PendingDuesBlock(t *testing.T) {
	eligible, blockers := Decide(90, true)
	assert.False(t, eligible)
	assert.Equal(t, []string{BlockerFeeDues}, blockers)
}

func TestDecide_BlockerOrderFixed(t *testing.T) {
	// attendance first, fees second
	eligible, blockers := Decide(40, true)
	assert.False(t, eligible)
	assert.Equal(t, []string{BlockerLowAttendance, BlockerFeeDues}, blockers)
}
