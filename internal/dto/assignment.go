package dto

// RawSubject is the nested subject block of a schedule.
type RawSubject struct {
	Name string `json:"nama_mapel"`
}

// RawClass is the nested class block of a schedule.
type RawClass struct {
	Name string `json:"nama_kelas"`
}

// RawSchedule is the optional schedule block attached to an assignment.
type RawSchedule struct {
	ScheduleID int64       `json:"jadwal_id"`
	Subject    *RawSubject `json:"mata_pelajaran,omitempty"`
	Class      *RawClass   `json:"kelas,omitempty"`
}

// RawAssignment is one assignment entry as the server sends it, including the
// student's submission fields.
type RawAssignment struct {
	TaskID      int64        `json:"tugas_id"`
	ScheduleID  int64        `json:"jadwal_id"`
	Title       string       `json:"judul_tugas"`
	Description string       `json:"deskripsi_tugas"`
	TeacherFile string       `json:"file_tugas_guru,omitempty"`
	CreatedAt   string       `json:"tanggal_dibuat"`
	Deadline    string       `json:"deadline_pengumpulan"`
	MaxPoints   float64      `json:"poin_maksimal"`
	TaskType    string       `json:"tipe_tugas"`
	Schedule    *RawSchedule `json:"jadwal_pelajaran,omitempty"`

	Status       string   `json:"status_pengumpulan"`
	AnswerFile   string   `json:"file_jawaban_siswa,omitempty"`
	StudentNote  string   `json:"catatan_siswa,omitempty"`
	SubmittedAt  string   `json:"tanggal_pengumpulan,omitempty"`
	Grade        *float64 `json:"nilai,omitempty"`
	TeacherNote  string   `json:"catatan_guru,omitempty"`
	PointsEarned float64  `json:"poin_didapat"`
}

// RawSubmissionDetail is the payload of the per-assignment submission detail
// endpoint.
type RawSubmissionDetail struct {
	SubmissionID int64    `json:"pengumpulan_id"`
	TaskID       int64    `json:"tugas_id"`
	StudentID    int64    `json:"siswa_id"`
	AnswerFile   string   `json:"file_jawaban_siswa,omitempty"`
	StudentNote  string   `json:"catatan_siswa,omitempty"`
	SubmittedAt  string   `json:"tanggal_pengumpulan"`
	Grade        *float64 `json:"nilai,omitempty"`
	TeacherNote  string   `json:"catatan_guru,omitempty"`
	Status       string   `json:"status_pengumpulan"`
	PointsEarned float64  `json:"poin_didapat"`
}
