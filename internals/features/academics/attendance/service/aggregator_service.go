package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vtop_backend/internals/constants"
	attModel "vtop_backend/internals/features/academics/attendance/model"
	courseModel "vtop_backend/internals/features/academics/courses/model"
)

// AggregatorService owns both attendance tables. Every write path that
// touches a log entry recomputes the (student, course) summary from the
// complete entry set inside the same transaction — no incremental
// counters, so retroactive admin overrides can never make the cache drift.
type AggregatorService struct {
	DB *gorm.DB
}

func NewAggregatorService(db *gorm.DB) *AggregatorService {
	return &AggregatorService{DB: db}
}

// maxRecomputeRetries bounds the read-compute-upsert retry loop when two
// writers race on the same pair.
const maxRecomputeRetries = 3

// RollCallEntry is one (student, status) pair within a roll-call.
type RollCallEntry struct {
	StudentID uuid.UUID
	Status    attModel.AttendanceStatus
}

// ValidateRollCallEntry rejects malformed pairs before any write. Each
// entry is judged on its own so a bad status for one student leaves the
// rest of the roster unaffected.
func ValidateRollCallEntry(e RollCallEntry) error {
	if e.StudentID == uuid.Nil {
		return ErrNotFound
	}
	if !e.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// checkRollCallEntry adds the enrollment precondition on top of the shape
// checks: a student absent from the course roster cannot be marked.
func checkRollCallEntry(e RollCallEntry, roster map[uuid.UUID]struct{}) error {
	if err := ValidateRollCallEntry(e); err != nil {
		return err
	}
	if _, ok := roster[e.StudentID]; !ok {
		return ErrNotFound
	}
	return nil
}

// RollCallOutcome reports the per-student result of a bulk roll-call.
// Failures are independent: one student's error never rolls back the rest.
type RollCallOutcome struct {
	StudentID uuid.UUID
	EntryID   uuid.UUID
	Summary   SummaryValue
	Err       error
}

// RecordAttendance appends one journal row per (student, status) pair for
// the given course/date/slot and re-derives each touched student's summary.
// Repeated calls for the same session append further rows on purpose; the
// log is a journal of roll-call events, not one fact per day.
//
// actorRole is the caller's capability: faculty or admin.
func (s *AggregatorService) RecordAttendance(
	ctx context.Context,
	actorRole string,
	facultyID uuid.UUID,
	courseID uuid.UUID,
	date time.Time,
	slot string,
	entries []RollCallEntry,
) ([]RollCallOutcome, error) {
	if actorRole != constants.RoleFaculty && actorRole != constants.RoleAdmin {
		return nil, ErrUnauthorized
	}
	if len(entries) == 0 {
		return nil, ErrEmptyRollCall
	}

	// Course existence is the persistence-side referential check.
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&courseModel.CourseModel{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	// Only enrolled students may appear in the roll-call. Non-members fail
	// per-student, the rest of the roster still lands.
	rosterIDs, err := courseModel.RosterStudentIDs(s.DB.WithContext(ctx), courseID)
	if err != nil {
		return nil, err
	}
	roster := make(map[uuid.UUID]struct{}, len(rosterIDs))
	for _, id := range rosterIDs {
		roster[id] = struct{}{}
	}

	outcomes := make([]RollCallOutcome, 0, len(entries))
	for _, e := range entries {
		out := RollCallOutcome{StudentID: e.StudentID}

		if err := checkRollCallEntry(e, roster); err != nil {
			out.Err = err
			outcomes = append(outcomes, out)
			continue
		}

		// Per-student unit of work: insert + recompute + upsert, retried on
		// conflicts so a concurrent roll-call or override on the same pair
		// cannot leave the summary reflecting only one writer.
		err := s.withPairRetry(ctx, func(tx *gorm.DB) error {
			row := attModel.AttendanceLogEntryModel{
				AttendanceLogEntryStudentID: e.StudentID,
				AttendanceLogEntryCourseID:  courseID,
				AttendanceLogEntryFacultyID: facultyID,
				AttendanceLogEntryDate:      date,
				AttendanceLogEntrySlot:      slot,
				AttendanceLogEntryStatus:    e.Status,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			out.EntryID = row.AttendanceLogEntryID

			sum, err := s.recomputeSummaryTx(tx, e.StudentID, courseID)
			if err != nil {
				return err
			}
			out.Summary = sum
			return nil
		})
		out.Err = err
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

// OverrideEntry mutates the status of exactly one log entry and re-derives
// that pair's summary from all entries, the changed one included. Only the
// admin capability may call it; the check lives here, not in the route
// layer, so the core stays testable without a web session.
func (s *AggregatorService) OverrideEntry(
	ctx context.Context,
	actorRole string,
	entryID uuid.UUID,
	newStatus attModel.AttendanceStatus,
) (*attModel.AttendanceLogEntryModel, SummaryValue, error) {
	if actorRole != constants.RoleAdmin {
		return nil, SummaryValue{}, ErrUnauthorized
	}
	if !newStatus.Valid() {
		return nil, SummaryValue{}, ErrInvalidStatus
	}

	var entry attModel.AttendanceLogEntryModel
	var sum SummaryValue

	err := s.withPairRetry(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&entry, "attendance_log_entry_id = ?", entryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&entry).
			Update("attendance_log_entry_status", newStatus).Error; err != nil {
			return err
		}
		entry.AttendanceLogEntryStatus = newStatus

		recomputed, err := s.recomputeSummaryTx(tx,
			entry.AttendanceLogEntryStudentID,
			entry.AttendanceLogEntryCourseID)
		if err != nil {
			return err
		}
		sum = recomputed
		return nil
	})
	if err != nil {
		return nil, SummaryValue{}, err
	}

	return &entry, sum, nil
}

// GetSummary is a pure cached read: it never recomputes. A pair with no
// log entries answers the zero-valued summary, not an error.
func (s *AggregatorService) GetSummary(ctx context.Context, studentID, courseID uuid.UUID) (SummaryValue, error) {
	var m attModel.AttendanceSummaryModel
	err := s.DB.WithContext(ctx).
		Where("attendance_summary_student_id = ? AND attendance_summary_course_id = ?", studentID, courseID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SummaryValue{StudentID: studentID, CourseID: courseID}, nil
		}
		return SummaryValue{}, err
	}
	return summaryFromModel(&m), nil
}

// ListSummaries returns every cached summary for one student.
func (s *AggregatorService) ListSummaries(ctx context.Context, studentID uuid.UUID) ([]SummaryValue, error) {
	var rows []attModel.AttendanceSummaryModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_summary_student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]SummaryValue, 0, len(rows))
	for i := range rows {
		out = append(out, summaryFromModel(&rows[i]))
	}
	return out, nil
}

// recomputeSummaryTx re-derives one pair's summary from the COMPLETE
// current entry set and upserts it. Always runs inside the caller's
// transaction so the count and the write are atomic per pair.
func (s *AggregatorService) recomputeSummaryTx(tx *gorm.DB, studentID, courseID uuid.UUID) (SummaryValue, error) {
	var statuses []attModel.AttendanceStatus
	if err := tx.Model(&attModel.AttendanceLogEntryModel{}).
		Where("attendance_log_entry_student_id = ? AND attendance_log_entry_course_id = ?", studentID, courseID).
		Pluck("attendance_log_entry_status", &statuses).Error; err != nil {
		return SummaryValue{}, err
	}

	attended, total, pct := Summarize(statuses)

	row := attModel.AttendanceSummaryModel{
		AttendanceSummaryStudentID:       studentID,
		AttendanceSummaryCourseID:        courseID,
		AttendanceSummaryAttendedClasses: attended,
		AttendanceSummaryTotalClasses:    total,
		AttendanceSummaryPercentage:      pct,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_summary_student_id"},
			{Name: "attendance_summary_course_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_summary_attended_classes",
			"attendance_summary_total_classes",
			"attendance_summary_percentage",
			"attendance_summary_updated_at",
		}),
	}).Create(&row).Error; err != nil {
		return SummaryValue{}, err
	}

	return SummaryValue{
		StudentID:       studentID,
		CourseID:        courseID,
		AttendedClasses: attended,
		TotalClasses:    total,
		Percentage:      pct,
	}, nil
}

// withPairRetry runs fn in a serializable transaction and retries the whole
// read-compute-write sequence when the pair is contended. Serializable is
// load-bearing: under read committed two concurrent recomputes each count
// only their own insert and the later upsert publishes stale totals with no
// error raised anywhere. At serializable the overlap surfaces as SQLSTATE
// 40001 and the losing writer re-runs against the full entry set.
func (s *AggregatorService) withPairRetry(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return retryPairConflicts(func() error {
		return s.DB.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
	})
}

// retryPairConflicts is the bounded retry policy, kept apart from the
// transaction plumbing. Exhausted retries surface ErrConflict.
func retryPairConflicts(run func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxRecomputeRetries; attempt++ {
		err := run()
		if err == nil {
			return nil
		}
		if !isRetryableConflict(err) {
			return err
		}
		lastErr = err
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	if lastErr != nil {
		return ErrConflict
	}
	return nil
}

// isRetryableConflict matches Postgres serialization failures, deadlocks
// and the unique-violation two concurrent first-upserts of the same
// summary row can produce.
func isRetryableConflict(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 40001") || // serialization_failure
		strings.Contains(s, "sqlstate 40p01") || // deadlock_detected
		strings.Contains(s, "could not serialize") ||
		strings.Contains(s, "deadlock detected") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "sqlstate 23505")
}
