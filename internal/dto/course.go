package dto

// RawTeacher is the nested teacher block of a course list entry.
type RawTeacher struct {
	Name string `json:"name"`
	NIP  string `json:"nip"`
}

// RawCourse is one course list entry as the server sends it.
type RawCourse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Class           string     `json:"class"`
	Semester        string     `json:"semester"`
	Teacher         RawTeacher `json:"teacher"`
	AttendanceCount int        `json:"absensi_count"`
}

// RawCourseInfo is the course header payload of the attendance detail page.
type RawCourseInfo struct {
	ScheduleID  int64  `json:"id_jadwal_pelajaran"`
	SubjectName string `json:"nama_mapel"`
	ClassName   string `json:"nama_kelas"`
	TeacherName string `json:"guru_pengampu"`
	TeacherNIP  string `json:"nip_guru"`
}
