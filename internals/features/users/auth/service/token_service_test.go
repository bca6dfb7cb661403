package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/features/users/auth/service"
	userModel "kiadmin_backend/internals/features/users/user/model"
)

func TestIssueAndParse(t *testing.T) {
	instansi := uuid.New()
	u := userModel.UserModel{ID: uuid.New(), UserName: "sentra01", Role: constants.RoleUser, InstansiID: &instansi}
	ts := service.NewTokenService("rahasia-test", time.Hour)

	raw, exp, err := ts.Issue(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, constants.RoleUser, claims.Role)
	assert.Equal(t, "sentra01", claims.UserName)
	assert.Equal(t, instansi.String(), claims.InstansiID)
}

func TestParseRejects(t *testing.T) {
	u := userModel.UserModel{ID: uuid.New(), UserName: "admin", Role: constants.RoleAdmin}
	ts := service.NewTokenService("rahasia-test", time.Minute)
	raw, _, err := ts.Issue(u)
	require.NoError(t, err)

	other := service.NewTokenService("rahasia-lain", time.Minute)
	_, err = other.Parse(raw)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = ts.Parse("")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	_, err = ts.Parse("bukan.jwt.sama-sekali")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	ts.Now = func() time.Time { return time.Now().UTC().Add(2 * time.Minute) }
	_, err = ts.Parse(raw)
	assert.ErrorIs(t, err, service.ErrInvalidToken, "token kedaluwarsa")
}

func TestIssueWithoutSecret(t *testing.T) {
	ts := service.NewTokenService("", 0)
	_, _, err := ts.Issue(userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}
