package service

import (
	"errors"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
	"dicey_decisions/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser 建立新用戶，用戶名和電子郵件都不能重複
func (s *UserService) CreateUser(user *models.User) error {
	if _, err := s.userRepo.FindByUsername(user.Username); err == nil {
		return apperrors.Validation("用戶名已被使用")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.userRepo.FindByEmail(user.Email); err == nil {
		return apperrors.Validation("電子郵件已被使用")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	return s.userRepo.Create(user)
}

func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("用戶不存在")
		}
		return nil, err
	}
	return user, nil
}
