package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

// AuthService implements registration, login, token verification and logout.
type AuthService struct {
	users     ports.UserRepository
	revoker   ports.TokenRevoker
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	revoker ports.TokenRevoker,
	activity ports.ActivityRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		revoker:   revoker,
		activity:  activity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil || !role.Registerable() {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.mintToken(created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role.String()).Msg("user registered")
	s.record(created, domain.ActionRegister, "")

	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(user)
	if err != nil {
		return "", nil, err
	}

	s.record(user, domain.ActionLogin, "")

	return token, user, nil
}

// Verify resolves a bearer token into its user record. The user is always
// re-read from the repository so the caller never works from stale claims.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.JTI)
	if err != nil {
		// Fail closed: an unreachable revocation store means we cannot prove
		// the token is still good.
		return nil, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	return s.users.FindByID(ctx, claims.UserID)
}

// Logout revokes the token's jti for the remainder of its lifetime. An
// already-expired token is a no-op success.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}

	remaining := claims.ExpiresAt - time.Now().Unix()
	if remaining <= 0 {
		return nil
	}

	if err := s.revoker.Revoke(ctx, claims.JTI, remaining); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.record(&domain.User{ID: claims.UserID, Role: claims.Role}, domain.ActionLogout, "")
	return nil
}

// ParseToken validates a raw bearer token and extracts its claims without a
// repository round-trip. Used by the auth middleware.
func (s *AuthService) ParseToken(token string) (*ports.TokenClaims, error) {
	return s.parseToken(token)
}

func (s *AuthService) mintToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role.String(),
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidCredentials
	}

	rawRole, _ := claims["role"].(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	email, _ := claims["email"].(string)
	jti, _ := claims["jti"].(string)

	var exp int64
	if v, ok := claims["exp"].(float64); ok {
		exp = int64(v)
	}

	return &ports.TokenClaims{
		UserID:    sub,
		Email:     email,
		Role:      role,
		JTI:       jti,
		ExpiresAt: exp,
	}, nil
}

func (s *AuthService) record(user *domain.User, action, subject string) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.ActivityEvent{
		ActorID:   user.ID,
		ActorRole: user.Role,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}
