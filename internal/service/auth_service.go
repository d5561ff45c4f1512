package service

import (
	"errors"
	"strings"
	"time"

	"studytrack_backend/internal/config"
	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
	"studytrack_backend/internal/util"
	"studytrack_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register creates the account with an empty ledger, no achievements and
// streak 0.
func (s *AuthService) Register(user *model.User) error {
	if len(user.Password) < 8 {
		return util.ErrWeakPassword
	}

	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// GetCurrentUser resolves the request's claims to an account row. A valid
// token whose row has gone missing self-heals: a fresh default account is
// recreated from the claims rather than failing the request.
func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err == nil {
		return user
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}

	name := claims.Name
	if name == "" {
		name = strings.SplitN(claims.Email, "@", 2)[0]
	}
	fresh := &model.User{
		Name:     name,
		Email:    claims.Email,
		Password: "-", // unusable; forces a password reset path
		LastSeen: time.Now(),
	}
	fresh.ID = claims.UserID
	if err := s.UserRepo.Create(fresh); err != nil {
		logger.Log.Error("failed to recreate missing account", zap.Uint("userID", claims.UserID), zap.Error(err))
		return nil
	}
	logger.Log.Warn("recreated missing account from session claims", zap.Uint("userID", claims.UserID))
	return fresh
}
