package service

import (
	"context"
	"testing"
	"time"

	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/restrobill/restrobill-api/pkg/sms"
	"github.com/restrobill/restrobill-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAuthTestService(db *gorm.DB) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(
		infraRepo.NewUserRepository(db),
		infraRepo.NewFranchiseRepository(db),
		jwtManager,
		sms.NewNullSender(),
	)
}

func registerTestUser(t *testing.T, svc *AuthService, email, mobile string) string {
	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Ravi",
		Email:    email,
		Password: "secret123",
		MobileNo: mobile,
	})
	if err != nil {
		t.Fatalf("Failed to register user: %v", err)
	}
	if user.OTP == nil {
		t.Fatal("Expected an OTP to be issued on registration")
	}
	return *user.OTP
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	registerTestUser(t, svc, "ravi@example.com", "9876543210")

	_, err := svc.Register(ctx, &RegisterInput{
		Name: "Other", Email: "ravi@example.com", Password: "pw123456", MobileNo: "9000000000",
	})
	assert.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = svc.Register(ctx, &RegisterInput{
		Name: "Other", Email: "other@example.com", Password: "pw123456", MobileNo: "9876543210",
	})
	assert.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLoginRequiresVerifiedMobile(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	otp := registerTestUser(t, svc, "ravi@example.com", "9876543210")

	_, err := svc.Login(ctx, &LoginInput{Email: "ravi@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrMobileNotVerified)

	_, err = svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: otp})
	assert.NoError(t, err)

	out, err := svc.Login(ctx, &LoginInput{Email: "ravi@example.com", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	otp := registerTestUser(t, svc, "ravi@example.com", "9876543210")
	_, err := svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: otp})
	assert.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "ravi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestVerifyOTPMismatchAndExpiry(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	registerTestUser(t, svc, "ravi@example.com", "9876543210")

	_, err := svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: "000000"})
	assert.ErrorIs(t, err, apperror.ErrOTPMismatch)

	// Expire the stored OTP
	expired := time.Now().Add(-time.Minute)
	err = db.Table("users").Where("mobile_no = ?", "9876543210").
		Update("otp_expiry", expired).Error
	assert.NoError(t, err)

	_, err = svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: "000000"})
	assert.ErrorIs(t, err, apperror.ErrOTPExpired)
}

func TestVerifyOTPConsumesCode(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	otp := registerTestUser(t, svc, "ravi@example.com", "9876543210")

	user, err := svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: otp})
	assert.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Nil(t, user.OTP)

	// Replaying the same code fails once consumed
	_, err = svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: otp})
	assert.ErrorIs(t, err, apperror.ErrOTPMismatch)
}

func TestRefreshTokenRotation(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	otp := registerTestUser(t, svc, "ravi@example.com", "9876543210")
	_, err := svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: otp})
	assert.NoError(t, err)

	out, err := svc.Login(ctx, &LoginInput{Email: "ravi@example.com", Password: "secret123"})
	assert.NoError(t, err)

	rotated, err := svc.RefreshToken(ctx, out.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The old refresh token is no longer accepted
	_, err = svc.RefreshToken(ctx, out.RefreshToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newAuthTestService(db)
	ctx := context.Background()

	otp := registerTestUser(t, svc, "ravi@example.com", "9876543210")
	_, err := svc.VerifyOTP(ctx, &VerifyOTPInput{MobileNo: "9876543210", OTP: otp})
	assert.NoError(t, err)

	out, err := svc.Login(ctx, &LoginInput{Email: "ravi@example.com", Password: "secret123"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx, out.User.ID))

	_, err = svc.RefreshToken(ctx, out.RefreshToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
