package validation

import "github.com/pasti-app/siswa-client/internal/dto"

// FieldState is the derived state of one form field.
type FieldState struct {
	Value   string
	Valid   bool
	Message string
	Touched bool
}

func (f *FieldState) apply(value string, result Result) {
	f.Value = value
	f.Valid = result.Valid
	f.Message = result.Message
	f.Touched = true
}

// Form holds the registration form with per-field derived state. Validity is
// recomputed on every field change, never cached separately.
type Form struct {
	Identifier      FieldState
	FullName        FieldState
	Email           FieldState
	Password        FieldState
	ConfirmPassword FieldState

	PasswordStrength Strength

	validator *Validator
}

// NewForm creates an empty registration form bound to a validator.
func NewForm(v *Validator) *Form {
	if v == nil {
		v = NewValidator(nil)
	}
	return &Form{validator: v}
}

// SetIdentifier applies the digits-only input mask and revalidates.
func (f *Form) SetIdentifier(value string) {
	clean := StripNonDigits(value)
	f.Identifier.apply(clean, f.validator.ValidateIdentifier(clean))
}

// SetFullName updates the name field and revalidates.
func (f *Form) SetFullName(value string) {
	f.FullName.apply(value, f.validator.ValidateFullName(value))
}

// SetEmail updates the email field and revalidates.
func (f *Form) SetEmail(value string) {
	f.Email.apply(value, f.validator.ValidateEmail(value))
}

// SetPassword updates the password field, recomputes strength, and
// revalidates the confirmation against the new value.
func (f *Form) SetPassword(value string) {
	result, strength := f.validator.ValidatePassword(value)
	f.Password.apply(value, result)
	f.PasswordStrength = strength

	if f.ConfirmPassword.Touched {
		f.ConfirmPassword.apply(f.ConfirmPassword.Value,
			f.validator.ValidateConfirmPassword(f.ConfirmPassword.Value, value))
	}
}

// SetConfirmPassword updates the confirmation field and revalidates.
func (f *Form) SetConfirmPassword(value string) {
	f.ConfirmPassword.apply(value, f.validator.ValidateConfirmPassword(value, f.Password.Value))
}

// Valid reports form-level validity: the AND of the five field flags.
func (f *Form) Valid() bool {
	return f.Identifier.Valid &&
		f.FullName.Valid &&
		f.Email.Valid &&
		f.Password.Valid &&
		f.ConfirmPassword.Valid
}

// Request builds the registration payload from the current field values.
func (f *Form) Request() dto.RegisterTeacherRequest {
	return dto.RegisterTeacherRequest{
		NIP:             f.Identifier.Value,
		FullName:        f.FullName.Value,
		Email:           f.Email.Value,
		Password:        f.Password.Value,
		ConfirmPassword: f.ConfirmPassword.Value,
	}
}

// Reset clears all values and derived state, as after a successful submit.
func (f *Form) Reset() {
	v := f.validator
	*f = Form{validator: v}
}
