package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/users/auth/dto"
	"kiadmin_backend/internals/features/users/auth/service"
	userModel "kiadmin_backend/internals/features/users/user/model"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
)

const secret = "rahasia-test"

func newAuth(t *testing.T) (*service.AuthService, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	return service.NewAuthService(db, service.NewTokenService(secret, time.Hour)), db
}

func register(t *testing.T, svc *service.AuthService) *userModel.UserModel {
	t.Helper()
	u, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Dewi Lestari",
		UserName: "dewi",
		Email:    " Dewi@Example.com ",
		Password: "rahasia123",
	})
	require.NoError(t, err)
	return u
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuth(t)

	u := register(t, svc)
	assert.Equal(t, constants.RoleUser, u.Role)
	assert.Equal(t, "dewi@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "rahasia123", u.Password)

	for _, ident := range []string{"dewi", "DEWI@example.com"} {
		res, err := svc.Login(ctx, dto.LoginRequest{Identifier: ident, Password: "rahasia123"})
		require.NoError(t, err, ident)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, u.ID, res.User.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuth(t)
	register(t, svc)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Name: "Dewi Dua", UserName: "dewi", Email: "DEWI@example.com", Password: "rahasia123",
	})
	require.ErrorIs(t, err, helper.ErrConflict)

	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "user_name")
	assert.Contains(t, appErr.Fields, "email")
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc, db := newAuth(t)
	u := register(t, svc)

	_, err := svc.Login(ctx, dto.LoginRequest{Identifier: "dewi", Password: "salah-sekali"})
	assert.ErrorIs(t, err, helper.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "tidakada", Password: "rahasia123"})
	assert.ErrorIs(t, err, helper.ErrUnauthorized)

	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).Update("is_active", false).Error)
	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "dewi", Password: "rahasia123"})
	assert.ErrorIs(t, err, helper.ErrForbidden)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	ctx := context.Background()
	svc, db := newAuth(t)
	register(t, svc)

	res, err := svc.Login(ctx, dto.LoginRequest{Identifier: "dewi", Password: "rahasia123"})
	require.NoError(t, err)

	black, err := helperAuth.IsBlacklisted(ctx, db, res.AccessToken, secret)
	require.NoError(t, err)
	assert.False(t, black)

	require.NoError(t, svc.Logout(ctx, res.AccessToken))
	require.NoError(t, svc.Logout(ctx, res.AccessToken), "logout kedua tetap sukses")

	black, err = helperAuth.IsBlacklisted(ctx, db, res.AccessToken, secret)
	require.NoError(t, err)
	assert.True(t, black)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuth(t)
	u := register(t, svc)
	actor := helperAuth.Identity{UserID: u.ID, Role: u.Role}

	err := svc.ChangePassword(ctx, actor, dto.ChangePasswordRequest{CurrentPassword: "keliru123", NewPassword: "baru12345"})
	assert.ErrorIs(t, err, helper.ErrValidation)

	err = svc.ChangePassword(ctx, actor, dto.ChangePasswordRequest{CurrentPassword: "rahasia123", NewPassword: "rahasia123"})
	assert.ErrorIs(t, err, helper.ErrValidation)

	require.NoError(t, svc.ChangePassword(ctx, actor, dto.ChangePasswordRequest{CurrentPassword: "rahasia123", NewPassword: "baru12345"}))

	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "dewi", Password: "rahasia123"})
	assert.ErrorIs(t, err, helper.ErrUnauthorized)
	_, err = svc.Login(ctx, dto.LoginRequest{Identifier: "dewi", Password: "baru12345"})
	assert.NoError(t, err)

	me, err := svc.Me(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, "dewi", me.UserName)
}
