package usecase

import (
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the seam between the auth middleware and the token
// implementation; handler tests substitute it wholesale.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	return t.jwtService.ValidateToken(tokenString)
}
