package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meditrack/internal/features/auth/domain"
	"meditrack/internal/features/auth/ports"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrTokenInvalid signals a token that fails signature or claim checks.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired signals a token past its expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// AuthService registers operator accounts and issues session tokens.
type AuthService struct {
	repo     ports.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(repo ports.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Register creates a new operator account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email, err := domain.ValidateRegistration(email, password)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// An unknown email and a wrong password both yield
// domain.ErrInvalidCredentials so the response does not reveal which
// field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.generateToken(user.Email)
}

func (s *AuthService) generateToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks a session token and returns its subject.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %s", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return "", ErrTokenInvalid
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return "", ErrTokenInvalid
	}
	return subject, nil
}
