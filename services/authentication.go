package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Patricia-Kubende/MaizeMate-Backend/models"
	"github.com/Patricia-Kubende/MaizeMate-Backend/utils"
)

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type AuthenticationService interface {
	SignUp(ctx context.Context, req *models.SignupRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
}

type authenticationService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthenticationService(db *gorm.DB, secret []byte) AuthenticationService {
	return &authenticationService{db: db, secret: secret}
}

func (s *authenticationService) SignUp(ctx context.Context, req *models.SignupRequest) error {
	// 1. Reject duplicate usernames
	var existing models.User
	if err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// 2. Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 3. Create user
	user := models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}
	return s.db.WithContext(ctx).Create(&user).Error
}

func (s *authenticationService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	// 1. Find user by username
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Issue access token
	token, err := utils.GenerateAccessToken(user.Username, s.secret)
	if err != nil {
		return nil, errors.New("failed to generate access token")
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
