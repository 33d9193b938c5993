package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"festacconnect_backend/internal/auth"
	"festacconnect_backend/internal/config"
	"festacconnect_backend/internal/email"
	"festacconnect_backend/internal/logger"
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	mailer           email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	mailer email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		mailer:           mailer,
	}
}

// Register creates the user, its profile and the default role grant in one
// transaction, then issues a session.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	accountType := models.AccountTypeBuyer
	if req.AccountType == string(models.AccountTypeSeller) {
		accountType = models.AccountTypeSeller
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Status:       models.UserStatusActive,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		profile := &models.Profile{
			UserID:      user.ID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Phone:       req.Phone,
			AccountType: accountType,
		}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		user.Profile = profile

		if err := s.userRepo.GrantRole(tx, user.ID, models.AppRoleUser); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Welcome mail is best effort; registration never fails on it.
	go func(to, name string) {
		if err := s.mailer.SendWelcome(to, name); err != nil {
			logger.WithError(err).Warn("Failed to send welcome email")
		}
	}(user.Email, req.FirstName)

	return s.issueSession(db, user, []string{string(models.AppRoleUser)})
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrAccountSuspended
	}

	return s.issueSession(db, user, rolesOf(user))
}

func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrAccountSuspended
	}

	// Rotate: the old token dies with the new issuance.
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueSession(db, user, rolesOf(user))
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(db, refreshToken)
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("password_hash", hash).Error; err != nil {
			return apperrors.InternalError(err)
		}
		// Every other session is invalidated with the password.
		if err := s.refreshTokenRepo.DeleteByUser(tx, userID); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
}

func (s *AuthServiceImpl) issueSession(db *gorm.DB, user *models.User, roles []string) (*dto.LoginResponse, error) {
	role := primaryRole(roles)

	accessToken, err := auth.GenerateToken(user.ID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := generateRandomToken()
	expiresAt := time.Now().Add(refreshTokenTTL)
	if err := s.refreshTokenRepo.Create(db, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	accessTTL := time.Duration(cfg.JWT.TTL) * time.Minute

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(accessTTL),
		User:         buildUserResponse(user, roles),
	}, nil
}

func rolesOf(user *models.User) []string {
	if len(user.Roles) == 0 {
		return []string{string(models.AppRoleUser)}
	}
	roles := make([]string, 0, len(user.Roles))
	for _, grant := range user.Roles {
		roles = append(roles, string(grant.Role))
	}
	return roles
}

// primaryRole picks the most privileged grant for the token claim.
func primaryRole(roles []string) string {
	best := string(models.AppRoleUser)
	for _, role := range roles {
		switch role {
		case string(models.AppRoleAdmin):
			return role
		case string(models.AppRoleModerator):
			best = role
		}
	}
	return best
}

func buildUserResponse(user *models.User, roles []string) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Status:    string(user.Status),
		Roles:     roles,
		CreatedAt: user.CreatedAt,
	}
	if user.Profile != nil {
		resp.Profile = buildProfileResponse(user.Profile)
	}
	return resp
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}
