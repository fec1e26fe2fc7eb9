package models

// CourseView is one entry of the student's course list.
type CourseView struct {
	ID              string
	Title           string
	ClassName       string
	Semester        string
	TeacherName     string
	TeacherNIP      string
	AttendanceCount int
}

// CourseInfoView is the header block of one course attendance page.
type CourseInfoView struct {
	ScheduleID  int64
	SubjectName string
	ClassName   string
	TeacherName string
	TeacherNIP  string
}

// CoursePage bundles the combined course-info + attendance fetch. Both parts
// load together or not at all; a half-loaded page is never exposed.
type CoursePage struct {
	Info       CourseInfoView
	Attendance []AttendanceRecord
}
