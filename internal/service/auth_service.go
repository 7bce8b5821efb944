package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/internal/repository"
	"github.com/gems2004/Stocky-sub001/pkg/apperror"
	"github.com/gems2004/Stocky-sub001/pkg/jwt"
	"github.com/gems2004/Stocky-sub001/pkg/logger"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type AuthService interface {
	Login(req *LoginRequest) (*LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *jwt.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperror.Validation("username and password are required")
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		// Same answer for unknown user and bad password.
		return nil, apperror.Unauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("account is deactivated")
	}
	if !user.CheckPassword(req.Password) {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperror.Internal("failed to issue token").WithDetails(err.Error())
	}

	logger.Get().Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)
	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}
