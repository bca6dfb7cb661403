package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kiadmin_backend/internals/helpers/logger"
)

type ErrorKind string

const (
	KindValidation       ErrorKind = "VALIDATION_ERROR"
	KindUnauthorized     ErrorKind = "UNAUTHORIZED"
	KindForbidden        ErrorKind = "FORBIDDEN"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindReferenceMissing ErrorKind = "REFERENCE_MISSING"
	KindReferenceInUse   ErrorKind = "REFERENCE_IN_USE"
	KindConflict         ErrorKind = "CONFLICT"
	KindUploadFailed     ErrorKind = "UPLOAD_FAILED"
	KindInternal         ErrorKind = "INTERNAL_ERROR"
)

// AppError adalah error domain yang bisa langsung dirender ke HTTP.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is mencocokkan berdasarkan Kind, jadi errors.Is(err, ErrUnauthorized) cukup.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Message == "" {
		return e.Kind == t.Kind
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation, KindReferenceMissing:
		return fiber.StatusUnprocessableEntity
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindReferenceInUse, KindConflict:
		return fiber.StatusConflict
	case KindUploadFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func newAppError(kind ErrorKind, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

// Sentinel untuk errors.Is.
var (
	ErrValidation       = &AppError{Kind: KindValidation}
	ErrUnauthorized     = &AppError{Kind: KindUnauthorized}
	ErrForbidden        = &AppError{Kind: KindForbidden}
	ErrNotFound         = &AppError{Kind: KindNotFound}
	ErrReferenceMissing = &AppError{Kind: KindReferenceMissing}
	ErrReferenceInUse   = &AppError{Kind: KindReferenceInUse}
	ErrConflict         = &AppError{Kind: KindConflict}
	ErrUploadFailed     = &AppError{Kind: KindUploadFailed}
)

func Validation(msg string, fields map[string][]string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg, Fields: fields}
}

func Unauthorized(msg string) *AppError {
	if msg == "" {
		msg = "User belum login"
	}
	return newAppError(KindUnauthorized, msg, nil)
}

func Forbidden(msg string) *AppError { return newAppError(KindForbidden, msg, nil) }
func NotFound(msg string) *AppError  { return newAppError(KindNotFound, msg, nil) }

func ReferenceMissing(msg string) *AppError { return newAppError(KindReferenceMissing, msg, nil) }
func ReferenceInUse(msg string) *AppError   { return newAppError(KindReferenceInUse, msg, nil) }
func Conflict(msg string) *AppError         { return newAppError(KindConflict, msg, nil) }

func UploadFailed(msg string, err error) *AppError {
	return newAppError(KindUploadFailed, msg, err)
}

func Internal(msg string, err error) *AppError {
	return newAppError(KindInternal, msg, err)
}

// IsUniqueViolation mengenali pelanggaran unique index di Postgres (23505) maupun SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// AsAppError membungkus error apa pun menjadi *AppError.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return &AppError{Kind: ErrorKind(statusToErrorCode(fe.Code)), Message: fe.Message, Err: err}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Data tidak ditemukan")
	}
	return Internal("Terjadi kesalahan pada server", err)
}

// JsonFromError merender error domain ke response JSON standar.
func JsonFromError(c *fiber.Ctx, err error) error {
	ae := AsAppError(err)
	if ae.Kind == KindValidation && len(ae.Fields) > 0 {
		return JsonValidationError(c, ae.Fields)
	}
	status := ae.Status()
	if fe := (*fiber.Error)(nil); errors.As(err, &fe) {
		status = fe.Code
	}
	if status >= 500 {
		logger.L().Error("[ERROR] request gagal",
			"method", c.Method(), "path", c.OriginalURL(), "err", err)
	}
	return jsonErrorWithCode(c, status, ae.Message, string(ae.Kind))
}

// FromWriteError dipakai setelah transaksi tulis: AppError diteruskan apa adanya,
// unique violation menjadi Conflict, sisanya Internal.
func FromWriteError(err error, conflictMsg, internalMsg string) error {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	if IsUniqueViolation(err) {
		return Conflict(conflictMsg)
	}
	return Internal(internalMsg, err)
}
