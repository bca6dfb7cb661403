package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAppErrorStatus(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{Validation("x", nil), fiber.StatusUnprocessableEntity},
		{ReferenceMissing("x"), fiber.StatusUnprocessableEntity},
		{Unauthorized(""), fiber.StatusUnauthorized},
		{Forbidden("x"), fiber.StatusForbidden},
		{NotFound("x"), fiber.StatusNotFound},
		{ReferenceInUse("x"), fiber.StatusConflict},
		{Conflict("x"), fiber.StatusConflict},
		{UploadFailed("x", nil), fiber.StatusBadGateway},
		{Internal("x", nil), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.err.Kind), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Status())
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	wrapped := fmt.Errorf("hapus instansi: %w", ReferenceInUse("Instansi masih digunakan oleh Sentra KI"))
	assert.ErrorIs(t, wrapped, ErrReferenceInUse)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
}

func TestFromWriteError(t *testing.T) {
	assert.Nil(t, FromWriteError(nil, "c", "i"))

	nf := NotFound("PKS tidak ditemukan")
	assert.Same(t, nf, FromWriteError(nf, "c", "i"))

	assert.ErrorIs(t, FromWriteError(gorm.ErrDuplicatedKey, "bentrok", "gagal"), ErrConflict)
	assert.ErrorIs(t, FromWriteError(errors.New("UNIQUE constraint failed: pks.pks_no"), "bentrok", "gagal"), ErrConflict)

	got := AsAppError(FromWriteError(errors.New("koneksi putus"), "bentrok", "gagal"))
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "gagal", got.Message)
}

func TestAsAppError(t *testing.T) {
	assert.Nil(t, AsAppError(nil))
	assert.Equal(t, KindNotFound, AsAppError(gorm.ErrRecordNotFound).Kind)
	assert.Equal(t, KindUnauthorized, AsAppError(fiber.ErrUnauthorized).Kind)
	assert.Equal(t, KindInternal, AsAppError(errors.New("boom")).Kind)
}

func TestJsonFromError(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return JsonFromError(c, ReferenceInUse("Sentra KI masih digunakan oleh PKS"))
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return JsonFromError(c, Validation("Validasi gagal", map[string][]string{"pks_name": {"wajib diisi"}}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/conflict", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, string(KindReferenceInUse), body.ErrorCode)
	assert.Equal(t, "Sentra KI masih digunakan oleh PKS", body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/validation", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body = ErrorResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"wajib diisi"}, body.Errors["pks_name"])
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	type req struct {
		Type string `json:"daftar_ki_type" validate:"required,ki_type"`
		Date string `json:"daftar_ki_registration_date" validate:"required,mdy_date"`
	}
	assert.NoError(t, ValidateStruct(req{Type: "DTLST", Date: "1/2/2025"}))

	err := ValidateStruct(req{Type: "Lainnya", Date: "2025-01-02"})
	ae := AsAppError(err)
	require.NotNil(t, ae)
	assert.Equal(t, KindValidation, ae.Kind)
	assert.Contains(t, ae.Fields, "daftar_ki_type")
	assert.Contains(t, ae.Fields, "daftar_ki_registration_date")
}
