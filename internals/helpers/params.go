package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseIDParam membaca path param UUID (default "id").
func ParseIDParam(c *fiber.Ctx, name ...string) (uuid.UUID, error) {
	key := "id"
	if len(name) > 0 && name[0] != "" {
		key = name[0]
	}
	raw := strings.TrimSpace(c.Params(key))
	if raw == "" {
		return uuid.Nil, Validation("ID wajib diisi", map[string][]string{key: {"wajib diisi"}})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, Validation("ID tidak valid", map[string][]string{key: {"format ID tidak valid"}})
	}
	return id, nil
}

// ParseBody membaca body JSON. Body rusak → 400.
func ParseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	return nil
}

// ParseYearQuery membaca ?<key>=YYYY; kosong → def.
func ParseYearQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	y, err := strconv.Atoi(raw)
	if err != nil || y < 1900 || y > 9999 {
		return 0, Validation("Tahun tidak valid", map[string][]string{key: {"tahun tidak valid"}})
	}
	return y, nil
}
