package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/M-U-C-K-A/matcha/internal/common/utils"
)

var (
	ErrUserNotFound       = errors.New("account does not exist")
	ErrEmailTaken         = errors.New("email already used")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error)
	Logout(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, userID int64) (*User, error)
}

// Config for token issuing
type Config struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	BCryptCost         int
}

type service struct {
	repo   Repository
	redis  *redis.Client // optional; logout denylist degrades without it
	config *Config
}

func NewService(repo Repository, redisClient *redis.Client, config *Config) Service {
	return &service{
		repo:   repo,
		redis:  redisClient,
		config: config,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	taken, err := s.repo.IsEmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.repo.IsUsernameTaken(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		return nil, fmt.Errorf("invalid birthdate: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Email:        req.Email,
		Username:     req.Username,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, user, birthdate); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.ValidateToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, errors.New("not a refresh token")
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *service) ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error) {
	claims, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		revoked, err := s.redis.Exists(ctx, denylistKey(token)).Result()
		if err == nil && revoked > 0 {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// Logout denylists the token for the rest of its lifetime. Without
// Redis the token simply expires on its own.
func (s *service) Logout(ctx context.Context, token string) error {
	if s.redis == nil {
		return nil
	}

	claims, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return nil // already unusable
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}

	return s.redis.Set(ctx, denylistKey(token), "revoked", ttl).Err()
}

func (s *service) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *service) buildAuthResponse(user *User) (*AuthResponse, error) {
	access, err := s.generateToken(user, "access", s.config.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refresh, err := s.generateToken(user, "refresh", s.config.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.config.AccessTokenExpiry.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

func (s *service) generateToken(user *User, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	return utils.GenerateJWT(&utils.JWTClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Type:      tokenType,
		ExpiresAt: now.Add(expiry).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    "matcha",
	}, s.config.JWTSecret)
}

func denylistKey(token string) string {
	return "auth:denylist:" + token
}
