// file: internals/middlewares/auth/claim_utils.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authService "kiadmin_backend/internals/features/users/auth/service"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

var errUserInactive = errors.New("user inactive")

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if strings.TrimSpace(c.Get("Authorization")) == "" && c.Cookies("access_token") == "" {
		return "", fmt.Errorf("Token tidak ditemukan")
	}
	tok := helperAuth.RawAccessToken(c)
	if tok == "" {
		return "", fmt.Errorf("Format token tidak valid")
	}
	return tok, nil
}

type activeUser struct {
	ID         uuid.UUID
	Role       string
	UserName   string
	InstansiID *uuid.UUID
	IsActive   bool
}

func ensureUserActive(ctx context.Context, db *gorm.DB, rawID string) (*activeUser, error) {
	userID, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var u activeUser
	if err := db.WithContext(ctx).Table("users").
		Select("id, role, user_name, instansi_id, is_active").
		Where("id = ?", userID).
		Take(&u).Error; err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, errUserInactive
	}
	return &u, nil
}

/* ======== Store claims to Locals ======== */

func storeIdentityToLocals(c *fiber.Ctx, claims *authService.AccessClaims, u *activeUser) {
	c.Locals(helperAuth.LocUserID, u.ID.String())
	role := u.Role
	if role == "" {
		role = claims.Role
	}
	c.Locals(helperAuth.LocUserRole, role)
	c.Locals(helperAuth.LocUserName, u.UserName)
	if u.InstansiID != nil {
		c.Locals(helperAuth.LocInstansiID, u.InstansiID.String())
	}
}
