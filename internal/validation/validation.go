// Package validation implements the interactive field checks of the
// registration form. Every function is pure and safe to call on each
// keystroke; surrounding state updates are the caller's responsibility.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Result is the outcome of validating one field. An empty value yields
// {Valid: false, Message: ""}: the field is not yet evaluated, not wrong.
type Result struct {
	Valid   bool
	Message string
}

// Strength classifies a password by satisfied character classes.
type Strength string

const (
	StrengthWeak   Strength = "Lemah"
	StrengthMedium Strength = "Sedang"
	StrengthStrong Strength = "Kuat"
)

const (
	identifierMinDigits = 8
	identifierMaxDigits = 20
	fullNameMinLen      = 3
	fullNameMaxLen      = 100
	emailMinLen         = 5
	passwordMinLen      = 8
	specialCharSet      = "!@#$%^&*(),.?\":{}|<>"
)

// DefaultEmailDomains is the provider allow-list used when none is configured.
var DefaultEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"sekolah.sch.id", "education.ac.id",
}

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	fullNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitRe    = regexp.MustCompile(`\d`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
)

// Validator evaluates registration form fields.
type Validator struct {
	emailDomains []string
}

// NewValidator builds a Validator with the given email provider allow-list,
// falling back to DefaultEmailDomains when empty.
func NewValidator(emailDomains []string) *Validator {
	if len(emailDomains) == 0 {
		emailDomains = DefaultEmailDomains
	}
	return &Validator{emailDomains: emailDomains}
}

// StripNonDigits removes everything but digits, matching the input mask the
// identifier field applies while typing.
func StripNonDigits(value string) string {
	return nonDigitRe.ReplaceAllString(value, "")
}

// ValidateIdentifier checks the NIP/NISN field: digits only, 8-20 characters
// after stripping formatting.
func (v *Validator) ValidateIdentifier(value string) Result {
	if value == "" {
		return Result{}
	}

	clean := StripNonDigits(value)
	if len(clean) < identifierMinDigits {
		return Result{Message: fmt.Sprintf("NIP minimal %d digit", identifierMinDigits)}
	}
	if len(clean) > identifierMaxDigits {
		return Result{Message: fmt.Sprintf("NIP maksimal %d digit", identifierMaxDigits)}
	}
	return Result{Valid: true}
}

// ValidateFullName checks the full name field: letters and spaces, 3-100
// characters.
func (v *Validator) ValidateFullName(value string) Result {
	if value == "" {
		return Result{}
	}

	if len(value) < fullNameMinLen {
		return Result{Message: fmt.Sprintf("Nama terlalu pendek (minimal %d karakter)", fullNameMinLen)}
	}
	if len(value) > fullNameMaxLen {
		return Result{Message: fmt.Sprintf("Nama terlalu panjang (maksimal %d karakter)", fullNameMaxLen)}
	}
	if !fullNameRe.MatchString(value) {
		return Result{Message: "Nama hanya boleh berisi huruf dan spasi"}
	}
	return Result{Valid: true}
}

// ValidateEmail checks format plus the provider allow-list. The allow-list
// matches on the provider's first label, so "gmail.co.uk" passes for "gmail.com".
func (v *Validator) ValidateEmail(value string) Result {
	if value == "" {
		return Result{}
	}

	if len(value) < emailMinLen {
		return Result{Message: fmt.Sprintf("Email terlalu pendek (minimal %d karakter)", emailMinLen)}
	}
	if !emailRe.MatchString(value) {
		return Result{Message: "Format email tidak valid (contoh: user@domain.com)"}
	}

	domain := value[strings.LastIndex(value, "@")+1:]
	for _, allowed := range v.emailDomains {
		label := allowed
		if i := strings.Index(allowed, "."); i > 0 {
			label = allowed[:i]
		}
		if strings.Contains(domain, label) {
			return Result{Valid: true}
		}
	}
	return Result{Message: "Gunakan email dari domain yang umum (gmail, yahoo, dll)"}
}

// ValidatePassword checks length then the four character classes. The length
// gate short-circuits with StrengthWeak before class counting runs; past the
// gate, strength depends only on the class count.
func (v *Validator) ValidatePassword(value string) (Result, Strength) {
	if value == "" {
		return Result{}, ""
	}

	if len(value) < passwordMinLen {
		return Result{Message: fmt.Sprintf("Password minimal %d karakter", passwordMinLen)}, StrengthWeak
	}

	classes := 0
	var missing []string

	if lowerRe.MatchString(value) {
		classes++
	} else {
		missing = append(missing, "huruf kecil")
	}
	if upperRe.MatchString(value) {
		classes++
	} else {
		missing = append(missing, "huruf besar")
	}
	if digitRe.MatchString(value) {
		classes++
	} else {
		missing = append(missing, "angka")
	}
	if strings.ContainsAny(value, specialCharSet) {
		classes++
	} else {
		missing = append(missing, "karakter khusus (!@#$%^&*)")
	}

	var strength Strength
	switch {
	case classes <= 2:
		strength = StrengthWeak
	case classes == 3:
		strength = StrengthMedium
	default:
		strength = StrengthStrong
	}

	if len(missing) > 0 {
		return Result{Message: "Password harus mengandung: " + strings.Join(missing, ", ")}, strength
	}
	return Result{Valid: true}, strength
}

// ValidateConfirmPassword checks the confirmation against the password value.
func (v *Validator) ValidateConfirmPassword(value, password string) Result {
	if value == "" {
		return Result{}
	}
	if value != password {
		return Result{Message: "Password tidak cocok"}
	}
	return Result{Valid: true}
}
