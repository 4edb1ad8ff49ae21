package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintracker/internal/models"
	"fintracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// bcrypt.DefaultCost (10) balances brute-force resistance against login
// latency; it matches the work factor the stored hashes were created with.
const bcryptCost = bcrypt.DefaultCost

// Domain errors for auth flows.
var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login and bearer tokens.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Claims defines the JWT payload: registered claims plus the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Register normalizes the email, hashes the password and creates the user.
// Returns a freshly issued token for the new account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailRegistered
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	id, err := s.users.Create(ctx, &models.User{
		Name:       in.Name,
		Email:      email,
		Password:   hash,
		Role:       role,
		ProfilePic: in.ProfilePic,
	})
	if err != nil {
		// The unique index catches the race between check and insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailRegistered
		}
		return "", err
	}

	return s.issueToken(id)
}

// Login verifies the credentials and returns a token plus the user record.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := verifyPassword(u.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// UserFromToken parses the token and resolves it to a live user record.
// Fails with ErrInvalidToken if the user behind the token no longer exists.
func (s *AuthService) UserFromToken(ctx context.Context, accessToken string) (*models.User, error) {
	userID, err := s.parseToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// Profile fetches the user record behind an id.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// parseToken validates the signature and expiry, returning the user id.
func (s *AuthService) parseToken(accessToken string) (primitive.ObjectID, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}

	return primitive.ObjectIDFromHex(claims.UserID)
}

// issueToken signs a time-limited JWT carrying the user id.
func (s *AuthService) issueToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID.Hex(),
	})
	return token.SignedString(s.signingKey)
}

// normalizeEmail lowercases and trims the address before any store access.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashPassword produces a salted bcrypt hash.
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword compares in constant time via bcrypt, never string equality.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
