// Package normalize maps raw backend payload shapes onto stable view models.
// All defaulting for optional nested fields happens here, in one pass, so
// display logic never needs optional chaining.
package normalize

import (
	"time"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/models"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

// Placeholder labels for absent nested blocks.
const (
	UnknownSubject = "Mata Pelajaran Tidak Diketahui"
	UnknownClass   = "Kelas Tidak Diketahui"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Course maps a raw course list entry onto its view model.
func Course(raw dto.RawCourse) models.CourseView {
	return models.CourseView{
		ID:              raw.ID,
		Title:           raw.Title,
		ClassName:       raw.Class,
		Semester:        raw.Semester,
		TeacherName:     raw.Teacher.Name,
		TeacherNIP:      raw.Teacher.NIP,
		AttendanceCount: raw.AttendanceCount,
	}
}

// Courses maps a raw course slice, preserving order.
func Courses(raw []dto.RawCourse) []models.CourseView {
	out := make([]models.CourseView, 0, len(raw))
	for _, r := range raw {
		out = append(out, Course(r))
	}
	return out
}

// CourseInfo maps the attendance page header payload.
func CourseInfo(raw dto.RawCourseInfo) models.CourseInfoView {
	return models.CourseInfoView{
		ScheduleID:  raw.ScheduleID,
		SubjectName: raw.SubjectName,
		ClassName:   raw.ClassName,
		TeacherName: raw.TeacherName,
		TeacherNIP:  raw.TeacherNIP,
	}
}

// Attendance maps one raw meeting row. A status outside the known set is
// treated as not-checked-in rather than invented; missing optionals stay zero.
func Attendance(raw dto.RawAttendance) models.AttendanceRecord {
	status, ok := models.ParseAttendanceStatus(raw.Status)
	if !ok {
		status = models.AttendanceUnset
	}
	return models.AttendanceRecord{
		MeetingID:     raw.MeetingID,
		MeetingNumber: raw.MeetingNumber,
		MeetingDate:   parseTime(raw.MeetingDate),
		Material:      raw.Material,
		Status:        status,
		Token:         raw.Token,
		CheckedInAt:   raw.CheckedInAt,
	}
}

// AttendanceList maps a raw attendance slice, preserving order.
func AttendanceList(raw []dto.RawAttendance) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, 0, len(raw))
	for _, r := range raw {
		out = append(out, Attendance(r))
	}
	return out
}

// Assignment maps one raw assignment entry. An unknown submission status is an
// error: the status drives which actions the page offers, so guessing is worse
// than failing.
func Assignment(raw dto.RawAssignment) (models.AssignmentRecord, error) {
	status, ok := models.ParseSubmissionStatus(raw.Status)
	if !ok {
		return models.AssignmentRecord{}, appErrors.Clone(appErrors.ErrRemoteData, "unknown submission status: "+raw.Status)
	}

	record := models.AssignmentRecord{
		TaskID:       raw.TaskID,
		ScheduleID:   raw.ScheduleID,
		Title:        raw.Title,
		Description:  raw.Description,
		ClassLabel:   UnknownClass,
		SubjectLabel: UnknownSubject,
		Type:         models.TaskType(raw.TaskType),
		TeacherFile:  raw.TeacherFile,
		CreatedAt:    parseTime(raw.CreatedAt),
		Deadline:     parseTime(raw.Deadline),
		MaxPoints:    raw.MaxPoints,
		Status:       status,
		AnswerFile:   raw.AnswerFile,
		StudentNote:  raw.StudentNote,
		Grade:        raw.Grade,
		TeacherNote:  raw.TeacherNote,
		PointsEarned: raw.PointsEarned,
	}

	if raw.Schedule != nil {
		if raw.Schedule.Subject != nil && raw.Schedule.Subject.Name != "" {
			record.SubjectLabel = raw.Schedule.Subject.Name
		}
		if raw.Schedule.Class != nil && raw.Schedule.Class.Name != "" {
			record.ClassLabel = raw.Schedule.Class.Name
		}
	}

	if raw.SubmittedAt != "" {
		t := parseTime(raw.SubmittedAt)
		if !t.IsZero() {
			record.SubmittedAt = &t
		}
	}

	return record, nil
}

// Assignments maps a raw assignment slice, preserving order. One bad row fails
// the whole list; a partially mapped list would desync the statistics.
func Assignments(raw []dto.RawAssignment) ([]models.AssignmentRecord, error) {
	out := make([]models.AssignmentRecord, 0, len(raw))
	for _, r := range raw {
		record, err := Assignment(r)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
