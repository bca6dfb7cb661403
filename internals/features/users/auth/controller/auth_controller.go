// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"kiadmin_backend/internals/features/users/auth/dto"
	"kiadmin_backend/internals/features/users/auth/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
)

type AuthController struct {
	Svc *service.AuthService
	// SecureCookie=false hanya untuk development via http.
	SecureCookie bool
}

func NewAuthController(svc *service.AuthService, secureCookie bool) *AuthController {
	return &AuthController{Svc: svc, SecureCookie: secureCookie}
}

func (ctl *AuthController) setAccessCookie(c *fiber.Ctx, token string, exp time.Time) {
	sameSite := fiber.CookieSameSiteNoneMode
	if !ctl.SecureCookie {
		sameSite = fiber.CookieSameSiteLaxMode
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   ctl.SecureCookie,
		SameSite: sameSite,
		Expires:  exp,
	})
}

func (ctl *AuthController) clearAccessCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   ctl.SecureCookie,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ctl.Svc.Login(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	ctl.setAccessCookie(c, res.AccessToken, res.ExpiresAt)
	return helper.JsonOK(c, "Login berhasil", res)
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	u, err := ctl.Svc.Register(c.UserContext(), req)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Registrasi berhasil", u)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if err := ctl.Svc.Logout(c.UserContext(), helperAuth.RawAccessToken(c)); err != nil {
		return helper.JsonFromError(c, err)
	}
	ctl.clearAccessCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	u, err := ctl.Svc.Me(c.UserContext(), actor)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", u)
}

// POST /api/auth/change-password
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	actor, err := helperAuth.IdentityFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.ChangePasswordRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := ctl.Svc.ChangePassword(c.UserContext(), actor, req); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}
