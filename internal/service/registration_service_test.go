package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/validation"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

type stubRegistrationAPI struct {
	err  error
	reqs []dto.RegisterTeacherRequest
}

func (s *stubRegistrationAPI) RegisterTeacher(ctx context.Context, req dto.RegisterTeacherRequest) error {
	s.reqs = append(s.reqs, req)
	return s.err
}

func validRegistrationForm() *validation.Form {
	form := validation.NewForm(nil)
	form.SetIdentifier("198701012024")
	form.SetFullName("Dewi Lestari")
	form.SetEmail("dewi.lestari@gmail.com")
	form.SetPassword("Rahasia1!")
	form.SetConfirmPassword("Rahasia1!")
	return form
}

func TestRegisterSendsPayloadAndResetsForm(t *testing.T) {
	api := &stubRegistrationAPI{}
	svc := NewRegistrationService(api, nil, nil)
	form := validRegistrationForm()

	err := svc.Register(context.Background(), form)
	require.NoError(t, err)
	require.Len(t, api.reqs, 1)
	assert.Equal(t, "198701012024", api.reqs[0].NIP)
	assert.Equal(t, "dewi.lestari@gmail.com", api.reqs[0].Email)

	assert.Empty(t, form.Identifier.Value)
	assert.False(t, form.Valid())
}

func TestRegisterRejectsInvalidFormWithoutNetwork(t *testing.T) {
	api := &stubRegistrationAPI{}
	svc := NewRegistrationService(api, nil, nil)
	form := validRegistrationForm()
	form.SetIdentifier("123")

	err := svc.Register(context.Background(), form)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, api.reqs)
}

func TestRegisterRejectsNilForm(t *testing.T) {
	svc := NewRegistrationService(&stubRegistrationAPI{}, nil, nil)

	err := svc.Register(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestRegisterAPIFailureLeavesFormIntact(t *testing.T) {
	api := &stubRegistrationAPI{err: errors.New("conflict")}
	svc := NewRegistrationService(api, nil, nil)
	form := validRegistrationForm()

	err := svc.Register(context.Background(), form)
	require.Error(t, err)
	assert.Equal(t, "198701012024", form.Identifier.Value)
	assert.True(t, form.Valid())
}
