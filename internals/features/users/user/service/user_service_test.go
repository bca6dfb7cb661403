package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	"kiadmin_backend/internals/features/users/user/dto"
	"kiadmin_backend/internals/features/users/user/service"
	helper "kiadmin_backend/internals/helpers"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/dbtest"
)

func newAdmin(t *testing.T, svc *service.UserService) helperAuth.Identity {
	t.Helper()
	root := helperAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin}
	u, err := svc.Create(context.Background(), root, dto.CreateUserRequest{
		Name: "Admin Pusat", UserName: "adminpusat", Email: "admin@kiadmin.id",
		Password: "rahasia123", Role: constants.RoleAdmin,
	})
	require.NoError(t, err)
	return helperAuth.Identity{UserID: u.ID, Role: u.Role}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	svc := service.NewUserService(db, nil)
	admin := newAdmin(t, svc)

	in := instansiModel.InstansiModel{InstansiName: "Universitas Jember", InstansiType: "Perguruan Tinggi"}
	require.NoError(t, db.Create(&in).Error)

	inactive := false
	u, err := svc.Create(ctx, admin, dto.CreateUserRequest{
		Name: "Operator Unej", UserName: "opunej", Email: "OP@unej.ac.id",
		Password: "rahasia123", Role: " USER ", InstansiID: &in.InstansiID, IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.RoleUser, u.Role)
	assert.Equal(t, "op@unej.ac.id", u.Email)

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	require.NotNil(t, got.InstansiID)
	assert.Equal(t, in.InstansiID, *got.InstansiID)

	missing := uuid.New()
	_, err = svc.Create(ctx, admin, dto.CreateUserRequest{
		Name: "Operator Lain", UserName: "oplain", Email: "lain@example.com",
		Password: "rahasia123", Role: constants.RoleUser, InstansiID: &missing,
	})
	assert.ErrorIs(t, err, helper.ErrReferenceMissing)

	_, err = svc.Create(ctx, admin, dto.CreateUserRequest{
		Name: "Kembar", UserName: "opunej", Email: "kembar@example.com",
		Password: "rahasia123", Role: constants.RoleUser,
	})
	assert.ErrorIs(t, err, helper.ErrConflict)

	_, err = svc.Create(ctx, admin, dto.CreateUserRequest{
		Name: "Super", UserName: "super", Email: "super@example.com",
		Password: "rahasia123", Role: "superadmin",
	})
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestAdminSelfProtection(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUserService(dbtest.Open(t), nil)
	admin := newAdmin(t, svc)

	off := false
	_, err := svc.Update(ctx, admin, admin.UserID, dto.UpdateUserRequest{IsActive: &off})
	assert.ErrorIs(t, err, helper.ErrValidation)

	role := constants.RoleUser
	_, err = svc.Update(ctx, admin, admin.UserID, dto.UpdateUserRequest{Role: &role})
	assert.ErrorIs(t, err, helper.ErrValidation)

	assert.ErrorIs(t, svc.Remove(ctx, admin, admin.UserID), helper.ErrForbidden)

	name := "Admin Pusat Baru"
	u, err := svc.Update(ctx, admin, admin.UserID, dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)
	assert.True(t, u.IsActive)
}

func TestUpdateAndRemoveOtherUser(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUserService(dbtest.Open(t), nil)
	admin := newAdmin(t, svc)

	u, err := svc.Create(ctx, admin, dto.CreateUserRequest{
		Name: "Operator", UserName: "operator", Email: "operator@example.com",
		Password: "rahasia123", Role: constants.RoleUser,
	})
	require.NoError(t, err)

	off := false
	taken := "admin@kiadmin.id"
	_, err = svc.Update(ctx, admin, u.ID, dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, helper.ErrConflict)

	out, err := svc.Update(ctx, admin, u.ID, dto.UpdateUserRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	require.NoError(t, svc.Remove(ctx, admin, u.ID))
	assert.ErrorIs(t, svc.Remove(ctx, admin, u.ID), helper.ErrNotFound)
}
