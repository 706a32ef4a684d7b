package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the registration and assessment workflow. The
// HTTP layer maps these to response codes; messages reaching users are
// built where the error is raised.
var (
	ErrProgramUnavailable    = errors.New("program tidak tersedia")
	ErrDuplicateRegistration = errors.New("pendaftaran untuk program ini sudah ada")
	ErrNotFound              = errors.New("data tidak ditemukan")
	ErrForbidden             = errors.New("akses ditolak")
	ErrNotCancellable        = errors.New("pendaftaran tidak dapat dibatalkan")
	ErrInvalidStatus         = errors.New("status tidak valid")
)

// ValidationError carries per-field messages for malformed or missing
// form input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validasi gagal: %s", strings.Join(keys, ", "))
}

// ActiveRegistrationError blocks a new internship registration while an
// earlier one is unresolved. Reason is shown to the student as-is.
type ActiveRegistrationError struct {
	Reason string
}

func (e *ActiveRegistrationError) Error() string {
	return e.Reason
}
