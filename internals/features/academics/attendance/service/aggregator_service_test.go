package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"vtop_backend/internals/constants"
	attModel "vtop_backend/internals/features/academics/attendance/model"
)

func errSerialization() error {
	return errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")
}

func dateMustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestRetryPairConflicts_RetriesSerializationFailure(t *testing.T) {
	// the losing writer of a contended pair re-runs until it sees the
	// complete entry set
	attempts := 0
	err := retryPairConflicts(func() error {
		attempts++
		if attempts < 3 {
			return errSerialization()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryPairConflicts_ExhaustedYieldsConflict(t *testing.T) {
	attempts := 0
	err := retryPairConflicts(func() error {
		attempts++
		return errSerialization()
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, maxRecomputeRetries, attempts)
}

func TestRetryPairConflicts_NonRetryablePassesThrough(t *testing.T) {
	attempts := 0
	err := retryPairConflicts(func() error {
		attempts++
		return ErrNotFound
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryableConflict(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{errSerialization(), true},
		{errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), true},
		{errors.New(`ERROR: duplicate key value violates unique constraint "uq_attendance_summary_pair" (SQLSTATE 23505)`), true},
		{gorm.ErrRecordNotFound, false},
		{ErrNotFound, false},
		{nil, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isRetryableConflict(tc.err), "err=%v", tc.err)
	}
}

func TestCheckRollCallEntry_UnenrolledStudent(t *testing.T) {
	enrolled := uuid.New()
	outsider := uuid.New()
	roster := map[uuid.UUID]struct{}{enrolled: {}}

	ok := RollCallEntry{StudentID: enrolled, Status: attModel.AttendancePresent}
	require.NoError(t, checkRollCallEntry(ok, roster))

	// a student missing from the roster fails alone, shape checks first
	bad := RollCallEntry{StudentID: outsider, Status: attModel.AttendancePresent}
	assert.ErrorIs(t, checkRollCallEntry(bad, roster), ErrNotFound)

	malformed := RollCallEntry{StudentID: enrolled, Status: attModel.AttendanceStatus("SICK")}
	assert.ErrorIs(t, checkRollCallEntry(malformed, roster), ErrInvalidStatus)
}

func TestRecordAttendance_RequiresTeachingRole(t *testing.T) {
	svc := NewAggregatorService(nil)
	_, err := svc.RecordAttendance(context.Background(), constants.RoleStudent,
		uuid.New(), uuid.New(), dateMustParse(t, "2026-01-15"), "A1",
		[]RollCallEntry{{StudentID: uuid.New(), Status: attModel.AttendancePresent}})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRecordAttendance_EmptyEntries(t *testing.T) {
	svc := NewAggregatorService(nil)
	_, err := svc.RecordAttendance(context.Background(), constants.RoleFaculty,
		uuid.New(), uuid.New(), dateMustParse(t, "2026-01-15"), "A1", nil)
	assert.ErrorIs(t, err, ErrEmptyRollCall)
}

func TestOverrideEntry_RequiresAdmin(t *testing.T) {
	svc := NewAggregatorService(nil)
	_, _, err := svc.OverrideEntry(context.Background(), constants.RoleFaculty,
		uuid.New(), attModel.AttendancePresent)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.OverrideEntry(context.Background(), constants.RoleAdmin,
		uuid.New(), attModel.AttendanceStatus("SICK"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDropSummaryTx_ScopedToPair(t *testing.T) {
	db := dryRunDB(t)
	studentID, courseID := uuid.New(), uuid.New()

	res := DropSummaryTx(db, studentID, courseID)
	require.NoError(t, res.Error)

	sql := res.Statement.SQL.String()
	assert.Contains(t, sql, `DELETE FROM "attendance_summaries"`)
	assert.Contains(t, sql, "attendance_summary_student_id")
	assert.Contains(t, sql, "attendance_summary_course_id")
	assert.Equal(t, []interface{}{studentID, courseID}, res.Statement.Vars)
}

// dryRunDB opens a postgres-dialect session that only renders SQL. The
// driver never dials, so the statement builder is usable in unit tests.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=test dbname=test",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db
}
