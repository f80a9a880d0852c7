package usecase

import (
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/pkg/jwt"
	"car-rental-core/internal/usecase/queries"
)

var ErrUnknownRole = errs.Define("unknown caller role", errs.ErrUnauthorized)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (queries.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (queries.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return queries.Actor{}, err
	}

	switch claims.Role {
	case queries.RoleCustomer, queries.RoleEmployee:
	default:
		return queries.Actor{}, ErrUnknownRole
	}

	return queries.Actor{ID: claims.UserID, Role: claims.Role}, nil
}
