package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attService "vtop_backend/internals/features/academics/attendance/service"
	courseModel "vtop_backend/internals/features/academics/courses/model"
	paymentService "vtop_backend/internals/features/finance/payments/service"
)

const (
	MinAverageAttendance = 75.0

	BlockerLowAttendance = "Attendance below 75%"
	BlockerFeeDues       = "Outstanding fee dues"
)

// EligibilityService answers the hall-ticket gate. It is stateless: every
// call recomputes from the cached summaries and the payment rows, both of
// which are cheap reads.
type EligibilityService struct {
	DB         *gorm.DB
	Aggregator *attService.AggregatorService
}

func NewEligibilityService(db *gorm.DB) *EligibilityService {
	return &EligibilityService{
		DB:         db,
		Aggregator: attService.NewAggregatorService(db),
	}
}

type Decision struct {
	StudentID     uuid.UUID `json:"student_id"`
	AvgAttendance float64   `json:"avg_attendance"`
	Eligible      bool      `json:"eligible"`
	Blockers      []string  `json:"blockers"`
}

// AverageAttendance computes the mean percentage across a student's
// registered courses. A course with no recorded classes contributes 100:
// an unrecorded course is treated as fully attended, not penalized or
// excluded. That inflates the average for freshly-registered courses —
// kept as-is pending product clarification.
func AverageAttendance(registeredCourseIDs []uuid.UUID, summaries []attService.SummaryValue) float64 {
	if len(registeredCourseIDs) == 0 {
		return 100
	}

	byCourse := make(map[uuid.UUID]attService.SummaryValue, len(summaries))
	for _, s := range summaries {
		byCourse[s.CourseID] = s
	}

	var sum float64
	for _, courseID := range registeredCourseIDs {
		if s, ok := byCourse[courseID]; ok && s.TotalClasses > 0 {
			sum += s.Percentage
		} else {
			sum += 100
		}
	}
	return sum / float64(len(registeredCourseIDs))
}

// Decide applies the gate: avg >= 75 (inclusive) AND no pending dues.
// Blockers keep a fixed order: attendance first, then fees.
func Decide(avgAttendance float64, hasPendingDues bool) (bool, []string) {
	blockers := []string{}
	if avgAttendance < MinAverageAttendance {
		blockers = append(blockers, BlockerLowAttendance)
	}
	if hasPendingDues {
		blockers = append(blockers, BlockerFeeDues)
	}
	return len(blockers) == 0, blockers
}

// CheckHallTicket composes the aggregator's output with the fee-due state.
func (s *EligibilityService) CheckHallTicket(ctx context.Context, studentID uuid.UUID) (Decision, error) {
	var courseIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&courseModel.CourseRegistrationModel{}).
		Where("course_registration_student_id = ?", studentID).
		Pluck("course_registration_course_id", &courseIDs).Error; err != nil {
		return Decision{}, err
	}

	summaries, err := s.Aggregator.ListSummaries(ctx, studentID)
	if err != nil {
		return Decision{}, err
	}

	hasPending, err := paymentService.HasPendingPayments(s.DB.WithContext(ctx), studentID)
	if err != nil {
		return Decision{}, err
	}

	avg := AverageAttendance(courseIDs, summaries)
	eligible, blockers := Decide(avg, hasPending)

	return Decision{
		StudentID:     studentID,
		AvgAttendance: avg,
		Eligible:      eligible,
		Blockers:      blockers,
	}, nil
}
