package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ezz105/ecommerce-analytics/internal/auth/jwt"
	"github.com/ezz105/ecommerce-analytics/internal/auth/pwhash"
	"github.com/go-chi/jwtauth/v5"
)

// Server guards the analytics routes. Admin identity itself is owned by an
// external user service; this server only validates the master password and
// issues/verifies short-lived tokens.
type Server struct {
	pwhash     *pwhash.PasswordHasher
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	masterHash string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	MasterPassword           string `mapstructure:"master_password"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}
	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		pwhash:     ph,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:     ttl,
		masterHash: hash,
	}, nil
}

// Login gets an auth token for the provided username and password.
func (s *Server) Login(username, password string) (string, error) {
	if err := s.pwhash.Validate(password, s.masterHash); err != nil {
		return "", fmt.Errorf("not authenticated")
	}
	return jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, strings.ToLower(username))
}

// WithAuth middleware checks if the user is authenticated.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		_, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
