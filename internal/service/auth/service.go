package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	operatorRepo "github.com/estudioluz/booking-service/internal/infra/storage/operator"
	"github.com/estudioluz/booking-service/pkg/brphone"
)

// Claims is the JWT payload issued to a signed-in operator
type Claims struct {
	OperatorID uuid.UUID `json:"operatorId"`
	Name       string    `json:"name"`
	jwt.RegisteredClaims
}

// LoginResponse carries the signed token and its expiry
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service signs operators in and verifies their tokens. Passwords are
// stored as argon2id hashes; tokens are HS256 JWTs.
type Service struct {
	operatorRepo OperatorRepository
	secret       []byte
	tokenTTL     time.Duration
	logger       Logger
}

func NewService(operatorRepo OperatorRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		operatorRepo: operatorRepo,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Login checks the phone + password pair and issues a token. The phone is
// normalized and validated before the lookup, so formatted input works.
func (s *Service) Login(ctx context.Context, phone, password string) (*LoginResponse, error) {
	digits := brphone.Normalize(phone)
	if err := brphone.Validate(digits); err != nil {
		s.logger.Warn("Login: phone rejected: %v", err)
		return nil, ErrInvalidCredentials
	}

	op, err := s.operatorRepo.GetByPhone(ctx, digits)
	if err != nil {
		if errors.Is(err, operatorRepo.ErrOperatorNotFound) {
			s.logger.Warn("Login: no operator for phone %s", brphone.Mask(digits))
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	match, err := argon2id.ComparePasswordAndHash(password, op.PasswordHash)
	if err != nil {
		s.logger.Error("Login: hash comparison failed for operator %s: %v", op.ID, err)
		return nil, fmt.Errorf("%w: Login - hash comparison: %v", ErrInternal, err)
	}
	if !match {
		s.logger.Warn("Login: wrong password for operator %s", op.ID)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := Claims{
		OperatorID: op.ID,
		Name:       op.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   op.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: token signing failed for operator %s: %v", op.ID, err)
		return nil, fmt.Errorf("%w: Login - token signing: %v", ErrInternal, err)
	}

	s.logger.Info("Login: operator %s signed in", op.ID)
	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyToken parses and validates a bearer token, returning its claims
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
