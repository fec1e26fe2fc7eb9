package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/validation"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

type registrationAPI interface {
	RegisterTeacher(ctx context.Context, req dto.RegisterTeacherRequest) error
}

// RegistrationService submits teacher registrations gated by the interactive
// form validation, with a final struct-level shape check before the wire.
type RegistrationService struct {
	api      registrationAPI
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(api registrationAPI, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{api: api, validate: validate, logger: logger}
}

// Register sends the form if every field is valid. A failed submit leaves the
// form untouched; a successful one resets it.
func (s *RegistrationService) Register(ctx context.Context, form *validation.Form) error {
	if form == nil {
		return appErrors.Clone(appErrors.ErrValidation, "no form")
	}
	if !form.Valid() {
		return appErrors.Clone(appErrors.ErrValidation, "Mohon perbaiki semua field yang tidak valid")
	}

	req := form.Request()
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "registration payload invalid")
	}

	if err := s.api.RegisterTeacher(ctx, req); err != nil {
		return err
	}

	s.logger.Info("teacher registered", zap.String("nip", req.NIP))
	form.Reset()
	return nil
}
