package dto

// SubmitAssignmentRequest is the submit/update payload for one assignment.
type SubmitAssignmentRequest struct {
	AnswerFile  string `json:"file_jawaban_siswa,omitempty"`
	StudentNote string `json:"catatan_siswa,omitempty"`
}

// RegisterTeacherRequest is the teacher registration payload. The tags mirror
// the server-side shape check; interactive per-field validation lives in the
// validation package.
type RegisterTeacherRequest struct {
	NIP             string `json:"nip" validate:"required,numeric,min=8,max=20"`
	FullName        string `json:"nama_lengkap" validate:"required,min=3,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// UploadResponse is the payload returned by the answer-file upload endpoint.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
