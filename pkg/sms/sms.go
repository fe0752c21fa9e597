package sms

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// Sender delivers one-time passwords to a mobile number.
type Sender interface {
	SendOTP(ctx context.Context, mobileNo, otp string) error
}

// Config holds settings for the SMS gateway.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Fast2SMSSender sends OTP messages through the Fast2SMS bulk API.
type Fast2SMSSender struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFast2SMSSender creates a sender backed by the Fast2SMS gateway.
func NewFast2SMSSender(cfg Config) *Fast2SMSSender {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://www.fast2sms.com/dev/bulkV2"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Fast2SMSSender{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SendOTP delivers the OTP via the gateway's dedicated OTP route.
func (s *Fast2SMSSender) SendOTP(ctx context.Context, mobileNo, otp string) error {
	params := url.Values{}
	params.Set("authorization", s.apiKey)
	params.Set("variables_values", otp)
	params.Set("route", "otp")
	params.Set("numbers", mobileNo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send OTP SMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}

	log.Info().Str("mobile_no", mobileNo).Msg("OTP SMS sent")
	return nil
}

// NullSender is used when no SMS gateway is configured; it logs the OTP
// instead of delivering it. Intended for development and tests.
type NullSender struct{}

// NewNullSender creates a no-op sender.
func NewNullSender() *NullSender {
	return &NullSender{}
}

// SendOTP logs the OTP without contacting any gateway.
func (s *NullSender) SendOTP(_ context.Context, mobileNo, otp string) error {
	log.Info().Str("mobile_no", mobileNo).Str("otp", otp).Msg("SMS sender not configured, OTP logged only")
	return nil
}

// GenerateOTP returns a 6-digit one-time password.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// OTPExpiry returns the expiry timestamp for a freshly issued OTP.
func OTPExpiry() time.Time {
	return time.Now().Add(10 * time.Minute)
}
