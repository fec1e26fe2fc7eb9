package models

import "time"

// AttendanceStatus represents the attendance state of one meeting.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Hadir"
	AttendanceExcused AttendanceStatus = "Izin"
	AttendanceSick    AttendanceStatus = "Sakit"
	AttendanceAbsent  AttendanceStatus = "Alpha"
	// AttendanceUnset means the student has not checked in for the meeting yet.
	AttendanceUnset AttendanceStatus = "Belum Absen"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceExcused, AttendanceSick, AttendanceAbsent, AttendanceUnset:
		return true
	default:
		return false
	}
}

// ParseAttendanceStatus maps a server status string onto the closed enum.
// An empty string maps to AttendanceUnset; anything outside the known set is
// rejected rather than silently defaulted.
func ParseAttendanceStatus(raw string) (AttendanceStatus, bool) {
	switch raw {
	case "":
		return AttendanceUnset, true
	case string(AttendancePresent), string(AttendanceExcused), string(AttendanceSick), string(AttendanceAbsent), string(AttendanceUnset):
		return AttendanceStatus(raw), true
	default:
		return "", false
	}
}

// AttendanceRecord is one meeting row of a course attendance table.
// Records are immutable once fetched; the page owns them for its session.
type AttendanceRecord struct {
	MeetingID     int
	MeetingNumber int
	MeetingDate   time.Time
	Material      string
	Status        AttendanceStatus
	Token         string
	CheckedInAt   string
}
