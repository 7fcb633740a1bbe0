package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"qr-dine/internal/auth"
	"qr-dine/internal/repository"
)

const tokenTTL = 24 * time.Hour

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (token string, restaurantID int64, err error)
}

type AuthService struct {
	repo   repository.RestaurantRepositoryInterface
	secret string
}

func NewAuthService(repo repository.RestaurantRepositoryInterface, secret string) AuthServiceInterface {
	return &AuthService{repo: repo, secret: secret}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, int64, error) {
	creds, err := s.repo.GetCredentials(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", 0, ErrBadCredentials
	}
	if err != nil {
		return "", 0, err
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		return "", 0, ErrBadCredentials
	}

	token, err := auth.Sign(creds.RestaurantID, creds.Username, s.secret, tokenTTL)
	if err != nil {
		return "", 0, err
	}
	return token, creds.RestaurantID, nil
}
