package service

import (
	"context"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/models"
	"github.com/pasti-app/siswa-client/internal/normalize"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
	"github.com/pasti-app/siswa-client/pkg/metrics"
)

type assignmentAPI interface {
	ListAssignments(ctx context.Context) ([]dto.RawAssignment, error)
	SubmitAssignment(ctx context.Context, taskID int64, req dto.SubmitAssignmentRequest) error
	DeleteSubmission(ctx context.Context, taskID int64) error
	SubmissionDetail(ctx context.Context, taskID int64) (dto.RawSubmissionDetail, error)
	UploadFile(ctx context.Context, filename string, content io.Reader) (dto.UploadResponse, error)
}

// Draft is the mutable state of one submission-modal session. It is created
// when the modal opens and reset on close or success.
type Draft struct {
	Selected    *models.AssignmentRecord
	FileName    string
	FileContent io.Reader
	ManualURL   string
	Note        string
}

// AttachFile records the locally selected answer file.
func (d *Draft) AttachFile(name string, content io.Reader) {
	d.FileName = name
	d.FileContent = content
}

// CanSubmit reports whether the draft carries an answer: a selected file or a
// non-blank manual URL. The submit path is disabled otherwise.
func (d *Draft) CanSubmit() bool {
	return d.FileName != "" || strings.TrimSpace(d.ManualURL) != ""
}

func (d *Draft) reset() {
	d.Selected = nil
	d.FileName = ""
	d.FileContent = nil
	d.ManualURL = ""
	d.Note = ""
}

// SubmitOutcome reports a finished submission round-trip. Assignments is the
// authoritative refetched list, never a local patch.
type SubmitOutcome struct {
	Assignments []models.AssignmentRecord
	// Degraded is set when the upload failed and the file name went out as a
	// placeholder instead of a real URL. UploadErr then carries the upload
	// failure behind it.
	Degraded  bool
	UploadErr error
}

// SubmissionService orchestrates the assignment submission flow: optional
// upload, submit, authoritative list reload, draft reset. It owns the single
// in-flight flag for the modal session; a second mutation while one is
// pending is rejected synchronously without touching the network.
type SubmissionService struct {
	api     assignmentAPI
	logger  *zap.Logger
	metrics *metrics.Recorder

	mu       sync.Mutex
	inFlight bool
}

// NewSubmissionService constructs a SubmissionService.
func NewSubmissionService(api assignmentAPI, logger *zap.Logger, recorder *metrics.Recorder) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{api: api, logger: logger, metrics: recorder}
}

// Assignments fetches and normalizes the assignment list.
func (s *SubmissionService) Assignments(ctx context.Context) ([]models.AssignmentRecord, error) {
	raw, err := s.api.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Assignments(raw)
}

// OpenDraft starts a modal session for one assignment, pre-filling the draft
// with the existing submission so an edit does not lose data.
func (s *SubmissionService) OpenDraft(record models.AssignmentRecord) *Draft {
	return &Draft{
		Selected:  &record,
		ManualURL: record.AnswerFile,
		Note:      record.StudentNote,
	}
}

// Submit runs the submission sequence for the draft. Step order matters: the
// upload runs first when a file is attached, and its URL overrides the manual
// URL in the final payload. An upload failure does not abort the submission;
// the local file name goes out as a placeholder and the outcome is marked
// degraded. On any other failure the draft is left intact for a retry; on
// success the list is refetched and the draft cleared.
func (s *SubmissionService) Submit(ctx context.Context, draft *Draft) (*SubmitOutcome, error) {
	if draft == nil || draft.Selected == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no assignment selected")
	}
	if !draft.CanSubmit() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "attach a file or enter a file URL")
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	taskID := draft.Selected.TaskID
	resolved := draft.ManualURL
	degraded := false
	var uploadErr error

	if draft.FileName != "" {
		uploaded, err := s.api.UploadFile(ctx, draft.FileName, draft.FileContent)
		if err != nil {
			if appErrors.IsSessionExpired(err) {
				return nil, err
			}
			// Known degraded mode: keep the submission alive with the file
			// name as a placeholder instead of aborting.
			resolved = draft.FileName
			degraded = true
			uploadErr = appErrors.Wrap(err,
				appErrors.ErrUploadDegraded.Code, appErrors.ErrUploadDegraded.Status,
				"upload failed for "+draft.FileName)
			s.metrics.ObserveUploadFallback()
			s.logger.Warn("upload failed, submitting file name placeholder",
				zap.Int64("task_id", taskID),
				zap.String("filename", draft.FileName),
				zap.Error(err))
		} else {
			resolved = uploaded.URL
		}
	}

	req := dto.SubmitAssignmentRequest{
		AnswerFile:  resolved,
		StudentNote: draft.Note,
	}
	if err := s.api.SubmitAssignment(ctx, taskID, req); err != nil {
		if appErrors.IsSessionExpired(err) {
			return nil, err
		}
		return nil, appErrors.Wrap(err, appErrors.ErrSubmission.Code, appErrors.ErrSubmission.Status, "submit assignment")
	}

	assignments, err := s.Assignments(ctx)
	if err != nil {
		if appErrors.IsSessionExpired(err) {
			return nil, err
		}
		return nil, appErrors.Wrap(err, appErrors.ErrSubmission.Code, appErrors.ErrSubmission.Status, "reload assignments after submit")
	}

	draft.reset()
	return &SubmitOutcome{Assignments: assignments, Degraded: degraded, UploadErr: uploadErr}, nil
}

// Delete removes the student's submission and returns the refetched list. It
// shares the in-flight guard with Submit.
func (s *SubmissionService) Delete(ctx context.Context, taskID int64) ([]models.AssignmentRecord, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if err := s.api.DeleteSubmission(ctx, taskID); err != nil {
		if appErrors.IsSessionExpired(err) {
			return nil, err
		}
		return nil, appErrors.Wrap(err, appErrors.ErrSubmission.Code, appErrors.ErrSubmission.Status, "delete submission")
	}
	assignments, err := s.Assignments(ctx)
	if err != nil {
		if appErrors.IsSessionExpired(err) {
			return nil, err
		}
		return nil, appErrors.Wrap(err, appErrors.ErrSubmission.Code, appErrors.ErrSubmission.Status, "reload assignments after delete")
	}
	return assignments, nil
}

// Detail fetches the submission detail for one assignment.
func (s *SubmissionService) Detail(ctx context.Context, taskID int64) (dto.RawSubmissionDetail, error) {
	return s.api.SubmissionDetail(ctx, taskID)
}

func (s *SubmissionService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return appErrors.ErrSubmissionInFlight
	}
	s.inFlight = true
	return nil
}

func (s *SubmissionService) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
