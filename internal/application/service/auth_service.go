package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/restrobill/restrobill-api/pkg/sms"
	"github.com/restrobill/restrobill-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo      repository.UserRepository
	franchiseRepo repository.FranchiseRepository
	jwtManager    *utils.JWTManager
	smsSender     sms.Sender
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	franchiseRepo repository.FranchiseRepository,
	jwtManager *utils.JWTManager,
	smsSender sms.Sender,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		franchiseRepo: franchiseRepo,
		jwtManager:    jwtManager,
		smsSender:     smsSender,
	}
}

// RegisterInput represents the registration input
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	MobileNo    string
	FranchiseID *uuid.UUID
}

// Register creates a new franchise admin account and sends a verification OTP
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	existing, err = s.userRepo.GetByMobile(ctx, input.MobileNo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Mobile number already registered")
	}

	if input.FranchiseID != nil {
		franchise, err := s.franchiseRepo.GetByID(ctx, *input.FranchiseID)
		if err != nil {
			return nil, err
		}
		if franchise == nil {
			return nil, apperror.NewNotFoundError("Franchise")
		}
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	otp, err := sms.GenerateOTP()
	if err != nil {
		return nil, err
	}
	expiry := sms.OTPExpiry()

	user := &entity.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashed,
		MobileNo:    input.MobileNo,
		Role:        enum.RoleFranchiseAdmin,
		FranchiseID: input.FranchiseID,
		IsActive:    true,
		OTP:         &otp,
		OTPExpiry:   &expiry,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.smsSender.SendOTP(ctx, user.MobileNo, otp); err != nil {
		// Registration stands; the user can request a fresh OTP.
		log.Error().Err(err).Str("mobile", user.MobileNo).Msg("failed to send OTP")
	}

	return user, nil
}

// VerifyOTPInput represents the OTP verification input
type VerifyOTPInput struct {
	MobileNo string
	OTP      string
}

// VerifyOTP confirms the mobile number and clears the stored OTP
func (s *AuthService) VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*entity.User, error) {
	user, err := s.userRepo.GetByMobile(ctx, input.MobileNo)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if user.OTP == nil || user.OTPExpiry == nil {
		return nil, apperror.ErrOTPMismatch
	}
	if time.Now().After(*user.OTPExpiry) {
		return nil, apperror.ErrOTPExpired
	}
	if *user.OTP != input.OTP {
		return nil, apperror.ErrOTPMismatch
	}

	user.IsVerified = true
	user.OTP = nil
	user.OTPExpiry = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResendOTP issues a fresh OTP for an unverified mobile number
func (s *AuthService) ResendOTP(ctx context.Context, mobileNo string) error {
	user, err := s.userRepo.GetByMobile(ctx, mobileNo)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if user.IsVerified {
		return apperror.NewBadRequestError("Mobile number already verified")
	}

	otp, err := sms.GenerateOTP()
	if err != nil {
		return err
	}
	expiry := sms.OTPExpiry()
	user.OTP = &otp
	user.OTPExpiry = &expiry
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.smsSender.SendOTP(ctx, user.MobileNo, otp)
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}
	if !user.IsVerified {
		return nil, apperror.ErrMobileNotVerified
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, string(user.Role), user.FranchiseID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.RefreshToken = &refreshToken
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken rotates the token pair for a valid refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, apperror.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, string(user.Role), user.FranchiseID)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.RefreshToken = &newRefresh
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

// Logout invalidates the stored refresh token
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	user.RefreshToken = nil
	return s.userRepo.Update(ctx, user)
}

// GetProfile returns the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
