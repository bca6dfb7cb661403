// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "kiadmin_backend/internals/features/users/auth/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/logger"
)

// AuthMiddleware memverifikasi access token (header Bearer atau cookie access_token),
// menolak token yang sudah di-blacklist, lalu mengisi locals identitas.
// Role dan instansi dibaca ulang dari tabel users supaya perubahan admin langsung berlaku.
func AuthMiddleware(db *gorm.DB, tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonFromError(c, helper.Unauthorized(err.Error()))
		}

		// cek blacklist sekali per request
		if c.Locals("token_checked") == nil {
			black, err := helperAuth.IsBlacklisted(c.UserContext(), db, raw, string(tokens.Secret))
			if err != nil {
				logger.L().Error("[AUTH] cek blacklist gagal", "err", err)
				return helper.JsonFromError(c, helper.Internal("Internal Server Error", err))
			}
			if black {
				return helper.JsonFromError(c, helper.Unauthorized("Token sudah tidak berlaku, silakan login ulang"))
			}
			c.Locals("token_checked", true)
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			return helper.JsonFromError(c, helper.Unauthorized("Token tidak valid atau sudah kedaluwarsa"))
		}

		acct, err := ensureUserActive(c.UserContext(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonFromError(c, helper.Unauthorized("User tidak ditemukan"))
			}
			if errors.Is(err, errUserInactive) {
				return helper.JsonFromError(c, helper.Forbidden("Akun Anda telah dinonaktifkan"))
			}
			logger.L().Error("[AUTH] ensureUserActive", "err", err)
			return helper.JsonFromError(c, helper.Internal("Internal Server Error", err))
		}

		storeIdentityToLocals(c, claims, acct)
		c.Locals("access_token", raw)
		return c.Next()
	}
}
