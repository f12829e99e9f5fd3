package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/sipradi/pvbu/core"
)

var tracer = otel.Tracer("auth")

// Claims is the session token payload
type Claims struct {
	Email string    `json:"email"`
	Role  core.Role `json:"role"`
	jwt.RegisteredClaims
}

type service struct {
	repository Repository
	account    core.AccountService
	policy     core.PolicyService
	config     core.Config
}

// NewService creates a new auth service
func NewService(repository Repository, account core.AccountService, policy core.PolicyService, config core.Config) core.AuthService {
	return &service{repository, account, policy, config}
}

// IssueToken signs a session token for user
func (s *service) IssueToken(user core.ActingUser) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			ID:        xid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *service) parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.config.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Login verifies the credentials of a principal and returns a session token with its compiled policy
func (s *service) Login(ctx context.Context, role core.Role, email, password string) (core.LoginResponse, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	user, err := s.account.GetByEmail(ctx, role, email)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, core.ErrorNotFound{}) {
			return core.LoginResponse{}, pkgerrors.Wrap(core.NewErrorPermissionDenied(), "invalid credentials")
		}
		return core.LoginResponse{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return core.LoginResponse{}, pkgerrors.Wrap(core.NewErrorPermissionDenied(), "invalid credentials")
	}
	user.PasswordHash = ""

	token, err := s.IssueToken(user)
	if err != nil {
		span.RecordError(err)
		return core.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	rules := core.NewCompiledPolicy()
	if user.PolicyID != nil {
		rules, err = s.policy.Compile(ctx, *user.PolicyID)
		if err != nil {
			span.RecordError(err)
			return core.LoginResponse{}, err
		}
	}

	return core.LoginResponse{
		AccessToken: token,
		User:        user,
		AccessRules: rules,
	}, nil
}

// Revoke rejects the token with the given id until it expires
func (s *service) Revoke(ctx context.Context, jti string, exp time.Time) error {
	ctx, span := tracer.Start(ctx, "Auth.Service.Revoke")
	defer span.End()

	return s.repository.Revoke(ctx, jti, exp)
}
