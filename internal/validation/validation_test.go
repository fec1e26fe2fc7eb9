package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIdentifierLengths(t *testing.T) {
	v := NewValidator(nil)

	tests := []struct {
		name    string
		value   string
		valid   bool
		message string
	}{
		{"empty is not evaluated", "", false, ""},
		{"too short", "1234567", false, "NIP minimal 8 digit"},
		{"minimum length", "12345678", true, ""},
		{"maximum length", strings.Repeat("9", 20), true, ""},
		{"too long", strings.Repeat("9", 21), false, "NIP maksimal 20 digit"},
		{"non-digits stripped before length check", "12-34-56", false, "NIP minimal 8 digit"},
		{"formatted but enough digits", "1982-0314-0601", true, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := v.ValidateIdentifier(tc.value)
			assert.Equal(t, tc.valid, result.Valid)
			assert.Equal(t, tc.message, result.Message)
		})
	}
}

func TestValidateFullName(t *testing.T) {
	v := NewValidator(nil)

	assert.False(t, v.ValidateFullName("").Valid)
	assert.Empty(t, v.ValidateFullName("").Message)

	result := v.ValidateFullName("Al")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "pendek")

	result = v.ValidateFullName(strings.Repeat("a", 101))
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "panjang")

	result = v.ValidateFullName("Budi S4ntoso")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "huruf dan spasi")

	assert.True(t, v.ValidateFullName("Budi Santoso").Valid)
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator(nil)

	assert.False(t, v.ValidateEmail("").Valid)
	assert.Contains(t, v.ValidateEmail("a@b").Message, "pendek")
	assert.Contains(t, v.ValidateEmail("not-an-email").Message, "Format email")
	assert.Contains(t, v.ValidateEmail("siswa@example.org").Message, "domain yang umum")

	assert.True(t, v.ValidateEmail("siswa@gmail.com").Valid)
	assert.True(t, v.ValidateEmail("guru@sekolah.sch.id").Valid)
	// The allow-list matches on the provider label, not the exact domain.
	assert.True(t, v.ValidateEmail("siswa@gmail.co.uk").Valid)
}

func TestValidateEmailCustomDomains(t *testing.T) {
	v := NewValidator([]string{"kampus.ac.id"})

	assert.True(t, v.ValidateEmail("mahasiswa@kampus.ac.id").Valid)
	assert.False(t, v.ValidateEmail("siswa@gmail.com").Valid)
}

func TestValidatePasswordEmpty(t *testing.T) {
	v := NewValidator(nil)

	result, strength := v.ValidatePassword("")
	assert.False(t, result.Valid)
	assert.Empty(t, result.Message)
	assert.Equal(t, Strength(""), strength)
}

func TestValidatePasswordLengthGate(t *testing.T) {
	v := NewValidator(nil)

	// Short but with all four classes: the length gate short-circuits with
	// weak before class counting runs.
	result, strength := v.ValidatePassword("Ab1!")
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "minimal 8")
	assert.Equal(t, StrengthWeak, strength)
}

func TestValidatePasswordClassCount(t *testing.T) {
	v := NewValidator(nil)

	tests := []struct {
		name     string
		value    string
		valid    bool
		strength Strength
	}{
		// Length 8 passes the gate; one class only, so weak via class count.
		{"single class", "abcdefgh", false, StrengthWeak},
		{"two classes", "abcdefg1", false, StrengthWeak},
		{"three classes", "Abcdefg1", false, StrengthMedium},
		{"four classes", "Abcdefg1!", true, StrengthStrong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, strength := v.ValidatePassword(tc.value)
			assert.Equal(t, tc.valid, result.Valid)
			assert.Equal(t, tc.strength, strength)
		})
	}
}

func TestValidatePasswordListsMissingClasses(t *testing.T) {
	v := NewValidator(nil)

	result, _ := v.ValidatePassword("abcdefgh")
	require.False(t, result.Valid)
	assert.Contains(t, result.Message, "huruf besar")
	assert.Contains(t, result.Message, "angka")
	assert.Contains(t, result.Message, "karakter khusus")
	assert.NotContains(t, result.Message, "huruf kecil")
}

func TestValidateConfirmPassword(t *testing.T) {
	v := NewValidator(nil)

	assert.False(t, v.ValidateConfirmPassword("", "Abcdefg1!").Valid)
	assert.Empty(t, v.ValidateConfirmPassword("", "Abcdefg1!").Message)

	result := v.ValidateConfirmPassword("other", "Abcdefg1!")
	assert.False(t, result.Valid)
	assert.Equal(t, "Password tidak cocok", result.Message)

	assert.True(t, v.ValidateConfirmPassword("Abcdefg1!", "Abcdefg1!").Valid)
}
