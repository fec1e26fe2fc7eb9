package models

import "time"

// SubmissionStatus is the server-reported state of one assignment.
//
// Transitions are driven entirely by the server; the client only parses the
// last reported value and re-fetches after a mutating action. The server-side
// table is:
//
//	Belum Mengerjakan -> Mengerjakan  (submitted before the deadline)
//	Belum Mengerjakan -> Terlambat    (submitted after the deadline)
//	Mengerjakan       -> Terlambat    (deadline passed without a grade)
//	Mengerjakan       -> Dinilai      (grade assigned)
//	Terlambat         -> Dinilai      (grade assigned)
type SubmissionStatus string

const (
	SubmissionNotStarted SubmissionStatus = "Belum Mengerjakan"
	SubmissionInProgress SubmissionStatus = "Mengerjakan"
	SubmissionLate       SubmissionStatus = "Terlambat"
	SubmissionGraded     SubmissionStatus = "Dinilai"
)

// Valid returns true when the status is a supported value.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionNotStarted, SubmissionInProgress, SubmissionLate, SubmissionGraded:
		return true
	default:
		return false
	}
}

// ParseSubmissionStatus maps a server status string onto the closed enum,
// rejecting anything outside the known set.
func ParseSubmissionStatus(raw string) (SubmissionStatus, bool) {
	s := SubmissionStatus(raw)
	if !s.Valid() {
		return "", false
	}
	return s, true
}

// TaskType distinguishes individual from group assignments.
type TaskType string

const (
	TaskIndividual TaskType = "Individu"
	TaskGroup      TaskType = "Kelompok"
)

// AssignmentRecord is the flattened view of one assignment plus the student's
// submission state. The list is refetched after every mutation, never patched
// locally.
type AssignmentRecord struct {
	TaskID       int64
	ScheduleID   int64
	Title        string
	Description  string
	ClassLabel   string
	SubjectLabel string
	Type         TaskType
	TeacherFile  string
	CreatedAt    time.Time
	Deadline     time.Time
	MaxPoints    float64

	Status       SubmissionStatus
	AnswerFile   string
	StudentNote  string
	SubmittedAt  *time.Time
	Grade        *float64
	TeacherNote  string
	PointsEarned float64
}

// AssignmentStatistics counts submission states over a (filtered) record set.
type AssignmentStatistics struct {
	Total      int
	NotStarted int
	InProgress int
	Late       int
	Graded     int
}
