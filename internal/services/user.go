package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shophub/storefront/internal/errors"
	"github.com/shophub/storefront/internal/models"
	repository "github.com/shophub/storefront/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}

type userService struct {
	repo   *repository.UserRepository
	jwtKey []byte
}

func NewUserService(repo *repository.UserRepository, jwtKey []byte) UserService {
	return &userService{repo: repo, jwtKey: jwtKey}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {

	if _, exists := s.repo.GetUserByEmail(req.Email); exists {
		return nil, errors.DuplicateEntryError("User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, errors.InternalError("Failed to create user").WithError(err)
	}

	token, expiresIn, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		User:      models.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Token:     token,
		ExpiresIn: expiresIn,
		Message:   fmt.Sprintf("Welcome to ShopHub, %s! Your account has been created successfully.", user.Name),
	}, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {

	user, ok := s.repo.GetUserByEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.UnauthorizedError("Invalid credentials")
	}

	token, expiresIn, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		User:      models.UserResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Token:     token,
		ExpiresIn: expiresIn,
		Message:   "Login successful",
	}, nil
}

func (s *userService) issueToken(user models.User) (string, int, error) {

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", 0, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return tokenString, int(time.Until(claims.ExpiresAt.Time).Seconds()), nil
}
