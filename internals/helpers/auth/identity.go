package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kiadmin_backend/internals/constants"
	helper "kiadmin_backend/internals/helpers"
)

// Nama locals yang diisi middleware auth.
const (
	LocUserID     = "user_id"
	LocUserRole   = "userRole"
	LocUserName   = "user_name"
	LocInstansiID = "instansi_id"
)

// Identity adalah identitas pemanggil yang dibawa ke service.
// Nilai nol berarti belum login; setiap mutasi wajib menolaknya.
type Identity struct {
	UserID     uuid.UUID
	Role       string
	UserName   string
	InstansiID *uuid.UUID
}

func (i Identity) IsZero() bool  { return i.UserID == uuid.Nil }
func (i Identity) IsAdmin() bool { return i.Role == constants.RoleAdmin }

// Require gagal dengan Unauthorized bila identitas kosong.
func (i Identity) Require() error {
	if i.IsZero() {
		return helper.Unauthorized("")
	}
	return nil
}

// CanModify true bila pemanggil admin atau pemilik data.
func (i Identity) CanModify(owner uuid.UUID) bool {
	return i.IsAdmin() || (owner != uuid.Nil && owner == i.UserID)
}

// IdentityFromCtx membaca identitas dari locals. Tanpa login → Identity{} dan ErrUnauthorized.
func IdentityFromCtx(c *fiber.Ctx) (Identity, error) {
	id, err := userIDFromLocals(c.Locals(LocUserID))
	if err != nil {
		return Identity{}, err
	}
	ident := Identity{UserID: id}
	if r, ok := c.Locals(LocUserRole).(string); ok {
		ident.Role = r
	}
	if n, ok := c.Locals(LocUserName).(string); ok {
		ident.UserName = n
	}
	if s, ok := c.Locals(LocInstansiID).(string); ok && s != "" {
		if iid, err := uuid.Parse(s); err == nil {
			ident.InstansiID = &iid
		}
	}
	return ident, nil
}

func userIDFromLocals(v any) (uuid.UUID, error) {
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, helper.Unauthorized("")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, helper.Unauthorized("")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, helper.Unauthorized("User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, helper.Unauthorized("")
	}
}
