// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "kiadmin_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

var ErrInvalidToken = errors.New("token tidak valid")

// AccessClaims: isi access token; user id disimpan di klaim "id".
type AccessClaims struct {
	UserID     string `json:"id"`
	Role       string `json:"role"`
	UserName   string `json:"user_name"`
	InstansiID string `json:"instansi_id,omitempty"`
	jwt.RegisteredClaims
}

type TokenService struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	return &TokenService{Secret: []byte(secret), TTL: ttl, Now: func() time.Time { return time.Now().UTC() }}
}

// Issue membuat access token HS256 untuk user.
func (s *TokenService) Issue(u userModel.UserModel) (string, time.Time, error) {
	if len(s.Secret) == 0 {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}
	now := s.Now()
	exp := now.Add(s.TTL)
	claims := AccessClaims{
		UserID:   u.ID.String(),
		Role:     u.Role,
		UserName: u.UserName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	if u.InstansiID != nil {
		claims.InstansiID = u.InstansiID.String()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

// Parse memverifikasi tanda tangan dan masa berlaku (toleransi 30 detik).
func (s *TokenService) Parse(raw string) (*AccessClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidToken
	}
	claims := &AccessClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true, ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}); err != nil {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || s.Now().After(claims.ExpiresAt.Time.Add(30*time.Second)) {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
