package auth

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"shipment-portal/internal/config"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// BotChecker gates login submissions behind a human-verification challenge.
type BotChecker interface {
	Verify(clientToken string) bool
}

// CaptchaVerifier checks challenge tokens against the reCAPTCHA siteverify
// API. The server-side secret never leaves this type.
type CaptchaVerifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

func NewCaptchaVerifier(cfg *config.Config) *CaptchaVerifier {
	return &CaptchaVerifier{
		secret:   cfg.RecaptchaSecretKey,
		endpoint: siteVerifyURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify reports whether the verification service accepted the
// client-supplied challenge token. Transport errors, timeouts, non-200
// responses and unparseable bodies all count as a failed check.
func (v *CaptchaVerifier) Verify(clientToken string) bool {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", clientToken)

	resp, err := v.client.PostForm(v.endpoint, form)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false
	}

	return result.Success
}
