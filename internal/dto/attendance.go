package dto

// RawAttendance is one meeting row of the attendance detail payload.
type RawAttendance struct {
	MeetingID     int    `json:"id_pertemuan"`
	MeetingNumber int    `json:"pertemuan_ke"`
	MeetingDate   string `json:"tanggal_pertemuan"`
	Material      string `json:"materi_pertemuan"`
	Token         string `json:"token_absen,omitempty"`
	Status        string `json:"status_kehadiran,omitempty"`
	CheckedInAt   string `json:"waktu_absen,omitempty"`
	AttendanceID  *int   `json:"id_absensi,omitempty"`
}
