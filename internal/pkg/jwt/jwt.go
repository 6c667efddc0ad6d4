package jwt

import (
	"errors"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess = "access"
	TokenTypeSSE    = "sse"

	sseTokenLifetime = 5 * time.Minute
)

var ErrWrongTokenType = errors.New("token type mismatch")

// Claims is the identity carried by every token this service signs.
type Claims struct {
	ID   string
	Role string
	Name string
}

type Service interface {
	GenerateAccessToken(claims Claims) (token string, expiresAt time.Time, err error)
	GenerateSSEToken(claims Claims) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(jti string, expiresAt time.Time)
	IsTokenRevoked(jti string) bool
	// PurgeExpiredRevocations forgets revoked ids whose tokens have expired
	// by now and returns how many were removed.
	PurgeExpiredRevocations(now time.Time) int
}

type JWTService struct {
	accessTokenLifetime time.Duration
	tokenAuth           *jwtauth.JWTAuth
	revokedTokens       map[string]time.Time
	mu                  sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService signs HS256 tokens with secretKey. accessTokenExpirationTime
// is a Go duration string; an unparsable value falls back to 8h.
func NewJWTService(secretKey string, accessTokenExpirationTime string) *JWTService {
	lifetime, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil || lifetime <= 0 {
		lifetime = 8 * time.Hour
	}
	return &JWTService{
		accessTokenLifetime: lifetime,
		tokenAuth:           jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:       make(map[string]time.Time),
	}
}

func (j *JWTService) GenerateAccessToken(claims Claims) (token string, expiresAt time.Time, err error) {
	expiresAt = time.Now().Add(j.accessTokenLifetime)
	token, err = j.encode(claims, TokenTypeAccess, expiresAt)
	return token, expiresAt, err
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(claims Claims) (token string, expiresIn int, err error) {
	token, err = j.encode(claims, TokenTypeSSE, time.Now().Add(sseTokenLifetime))
	if err != nil {
		return "", 0, err
	}
	return token, int(sseTokenLifetime.Seconds()), nil
}

// ValidateSSEToken verifies signature, expiry and type of an SSE token.
func (j *JWTService) ValidateSSEToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeSSE {
		return Claims{}, ErrWrongTokenType
	}

	if j.IsTokenRevoked(token.JwtID()) {
		return Claims{}, jwtauth.ErrUnauthorized
	}

	return ClaimsFromMap(token.PrivateClaims())
}

func (j *JWTService) RevokeToken(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[jti] = expiresAt
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}

func (j *JWTService) PurgeExpiredRevocations(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	removed := 0
	for jti, expiresAt := range j.revokedTokens {
		if !expiresAt.After(now) {
			delete(j.revokedTokens, jti)
			removed++
		}
	}
	return removed
}

func (j *JWTService) encode(claims Claims, tokenType string, expiresAt time.Time) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":  uuid.NewString(),
		"id":   claims.ID,
		"role": claims.Role,
		"name": claims.Name,
		"type": tokenType,
		"exp":  expiresAt.Unix(),
	})
	return tokenString, err
}

// ClaimsFromMap reads the identity claims out of a decoded token.
func ClaimsFromMap(m map[string]interface{}) (Claims, error) {
	id, ok := m["id"].(string)
	if !ok || id == "" {
		return Claims{}, jwt.ErrInvalidJWT()
	}
	role, _ := m["role"].(string)
	name, _ := m["name"].(string)
	return Claims{ID: id, Role: role, Name: name}, nil
}
