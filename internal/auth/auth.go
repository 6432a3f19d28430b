// Package auth verifies bearer tokens and scopes requests to the customer
// or admin realm. Token issuance happens in the identity service upstream;
// this package only checks the HS256 signature and the realm claim.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Realm is the authentication realm a token was issued for.
type Realm string

const (
	RealmCustomer Realm = "customer"
	RealmAdmin    Realm = "admin"
)

// Claims is the token payload: standard registered claims plus the realm.
type Claims struct {
	Realm Realm `json:"realm"`
	jwt.RegisteredClaims
}

// Identity is the authenticated principal resolved from a bearer token.
type Identity struct {
	ID    uuid.UUID
	Realm Realm
}

// Verifier validates HS256-signed bearer tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for tokens signed with the given secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a raw token string and resolves the identity.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	if claims.Realm != RealmCustomer && claims.Realm != RealmAdmin {
		return nil, fmt.Errorf("unknown realm: %q", claims.Realm)
	}

	return &Identity{ID: id, Realm: claims.Realm}, nil
}

type contextKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFrom extracts the authenticated identity from the context.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*Identity)
	return id, ok
}
