package request

import "github.com/google/uuid"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name        string     `json:"name" binding:"required,min=2,max=255"`
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required,min=8"`
	MobileNo    string     `json:"mobile_no" binding:"required,min=10,max=15"`
	FranchiseID *uuid.UUID `json:"franchise_id"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	MobileNo string `json:"mobile_no" binding:"required,min=10,max=15"`
	OTP      string `json:"otp" binding:"required,len=6"`
}

// ResendOTPRequest represents an OTP resend request
type ResendOTPRequest struct {
	MobileNo string `json:"mobile_no" binding:"required,min=10,max=15"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
