package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/models"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

func TestCourseMapsFields(t *testing.T) {
	raw := dto.RawCourse{
		ID:       "12",
		Title:    "Pemrosesan Bahasa Alami (IF 6B)",
		Class:    "IF 6B",
		Semester: "2024/2025 Genap",
		Teacher: dto.RawTeacher{
			Name: "Dr. Fika Hastarita",
			NIP:  "198309520060402",
		},
		AttendanceCount: 4,
	}

	view := Course(raw)
	assert.Equal(t, "12", view.ID)
	assert.Equal(t, "IF 6B", view.ClassName)
	assert.Equal(t, "Dr. Fika Hastarita", view.TeacherName)
	assert.Equal(t, "198309520060402", view.TeacherNIP)
	assert.Equal(t, 4, view.AttendanceCount)
}

func TestCourseMissingOptionalsDefaultToZero(t *testing.T) {
	view := Course(dto.RawCourse{ID: "1"})
	assert.Empty(t, view.TeacherName)
	assert.Zero(t, view.AttendanceCount)
}

func TestAttendanceStatusMapping(t *testing.T) {
	tests := []struct {
		raw  string
		want models.AttendanceStatus
	}{
		{"Hadir", models.AttendancePresent},
		{"Izin", models.AttendanceExcused},
		{"Sakit", models.AttendanceSick},
		{"Alpha", models.AttendanceAbsent},
		{"", models.AttendanceUnset},
		// Unknown strings collapse to not-checked-in instead of leaking.
		{"Mangkir", models.AttendanceUnset},
	}

	for _, tc := range tests {
		record := Attendance(dto.RawAttendance{Status: tc.raw})
		assert.Equal(t, tc.want, record.Status, "status %q", tc.raw)
	}
}

func TestAttendanceParsesMeetingDate(t *testing.T) {
	record := Attendance(dto.RawAttendance{
		MeetingID:     7,
		MeetingNumber: 3,
		MeetingDate:   "2025-03-14T08:00:00Z",
		Material:      "Regular expressions",
	})

	assert.Equal(t, 7, record.MeetingID)
	assert.Equal(t, time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC), record.MeetingDate)

	dateOnly := Attendance(dto.RawAttendance{MeetingDate: "2025-03-14"})
	assert.Equal(t, 2025, dateOnly.MeetingDate.Year())

	garbage := Attendance(dto.RawAttendance{MeetingDate: "next tuesday"})
	assert.True(t, garbage.MeetingDate.IsZero())
}

func validRawAssignment() dto.RawAssignment {
	return dto.RawAssignment{
		TaskID:      41,
		ScheduleID:  12,
		Title:       "Essay NLP",
		Description: "Tulis essay",
		Deadline:    "2025-04-01T23:59:00Z",
		MaxPoints:   100,
		TaskType:    "Individu",
		Status:      "Belum Mengerjakan",
		Schedule: &dto.RawSchedule{
			ScheduleID: 12,
			Subject:    &dto.RawSubject{Name: "Pemrosesan Bahasa Alami"},
			Class:      &dto.RawClass{Name: "IF 6B"},
		},
	}
}

func TestAssignmentMapsNestedSchedule(t *testing.T) {
	record, err := Assignment(validRawAssignment())
	require.NoError(t, err)

	assert.Equal(t, int64(41), record.TaskID)
	assert.Equal(t, "Pemrosesan Bahasa Alami", record.SubjectLabel)
	assert.Equal(t, "IF 6B", record.ClassLabel)
	assert.Equal(t, models.SubmissionNotStarted, record.Status)
	assert.Equal(t, models.TaskIndividual, record.Type)
	assert.Nil(t, record.SubmittedAt)
}

func TestAssignmentMissingScheduleUsesPlaceholders(t *testing.T) {
	raw := validRawAssignment()
	raw.Schedule = nil

	record, err := Assignment(raw)
	require.NoError(t, err)
	assert.Equal(t, UnknownSubject, record.SubjectLabel)
	assert.Equal(t, UnknownClass, record.ClassLabel)
}

func TestAssignmentSubmittedFields(t *testing.T) {
	grade := 88.5
	raw := validRawAssignment()
	raw.Status = "Dinilai"
	raw.AnswerFile = "/uploads/tugas/jawaban.pdf"
	raw.SubmittedAt = "2025-03-20T10:00:00Z"
	raw.Grade = &grade
	raw.PointsEarned = 88.5

	record, err := Assignment(raw)
	require.NoError(t, err)
	require.NotNil(t, record.SubmittedAt)
	assert.Equal(t, 20, record.SubmittedAt.Day())
	require.NotNil(t, record.Grade)
	assert.Equal(t, 88.5, *record.Grade)
}

func TestAssignmentRejectsUnknownStatus(t *testing.T) {
	raw := validRawAssignment()
	raw.Status = "Hampir Selesai"

	_, err := Assignment(raw)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrRemoteData.Code, appErrors.FromError(err).Code)
}

func TestAssignmentsOneBadRowFailsTheList(t *testing.T) {
	bad := validRawAssignment()
	bad.Status = "???"

	_, err := Assignments([]dto.RawAssignment{validRawAssignment(), bad})
	require.Error(t, err)

	records, err := Assignments([]dto.RawAssignment{validRawAssignment()})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
