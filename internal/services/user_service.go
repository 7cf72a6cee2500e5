package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type UserService interface {
	CreateUser(user *models.User, password string) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsersByRole(role string) ([]models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	ChangePassword(userID uint, newPassword string) error
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(user *models.User, password string) error {
	if !models.ValidRole(user.Role) {
		return errors.New("unknown role: " + user.Role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	return s.userRepo.Create(user)
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

func (s *userService) GetUsersByRole(role string) ([]models.User, error) {
	return s.userRepo.GetByRole(role)
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) UpdateUser(user *models.User) error {
	if !models.ValidRole(user.Role) {
		return errors.New("unknown role: " + user.Role)
	}
	return s.userRepo.Update(user)
}

func (s *userService) ChangePassword(userID uint, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	return s.userRepo.Update(user)
}

func (s *userService) DeleteUser(id uint) error {
	return s.userRepo.Delete(id)
}
