package service

import (
	"fmt"
	"path/filepath"
	"strings"

	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
)

// UploadPolicy gates answer files before they reach the wire. An empty
// extension list allows every type; a zero size limit allows every size.
type UploadPolicy struct {
	MaxFileSizeBytes  int64
	AllowedExtensions []string
}

// Check validates one candidate answer file against the policy.
func (p UploadPolicy) Check(filename string, size int64) error {
	if len(p.AllowedExtensions) > 0 {
		ext := strings.ToLower(filepath.Ext(filename))
		allowed := false
		for _, candidate := range p.AllowedExtensions {
			if ext == strings.ToLower(candidate) {
				allowed = true
				break
			}
		}
		if !allowed {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("Tipe file %s tidak didukung", ext))
		}
	}

	if p.MaxFileSizeBytes > 0 && size > p.MaxFileSizeBytes {
		return appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("Ukuran file maksimal %d MB", p.MaxFileSizeBytes/(1024*1024)))
	}

	return nil
}
