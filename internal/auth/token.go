package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"peritaje_crm/internal/domain/entities"
)

// Identity is what a verified token resolves to.
type Identity struct {
	Subject string
	Role    entities.Role
	Name    string
}

// AdminSubject is the sentinel subject meaning "acting as admin, no CRM
// user reference to attach".
const AdminSubject = "admin"

// ErrUnauthenticated covers every verification failure: bad signature,
// expired, malformed. Callers never see the distinction.
var ErrUnauthenticated = errors.New("unauthenticated")

type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an identity into a compact JWT valid for ttl.
func IssueToken(secret []byte, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Name: id.Name,
		Role: string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

// VerifyToken checks integrity and expiry and extracts the identity.
// Any failure yields ErrUnauthenticated.
func VerifyToken(secret []byte, token string) (Identity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrUnauthenticated
	}
	if c.Subject == "" || c.Role == "" {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{Subject: c.Subject, Role: entities.Role(c.Role), Name: c.Name}, nil
}
