package user

import (
	"context"
	"fmt"
	"strings"

	"shipping/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Name == nil ||
		userModify.Email == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if userModify.Phone != nil && !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}

	userEntity := &entities.User{
		Name:  strings.TrimSpace(*userModify.Name),
		Email: strings.ToLower(strings.TrimSpace(*userModify.Email)),
	}
	if userModify.Phone != nil {
		userEntity.Phone = strings.TrimSpace(*userModify.Phone)
	}

	created, err := s.repository.Create(ctx, userEntity)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userEntity, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	userEntity, err := s.repository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return userEntity, nil
}
