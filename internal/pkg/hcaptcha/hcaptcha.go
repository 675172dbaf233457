package hcaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/boldgroup/website/internal/pkg/env"
)

const siteVerifyURL = "https://hcaptcha.com/siteverify"

var ErrEmptyToken = errors.New("hCaptcha token is empty")

type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier checks hCaptcha tokens against the siteverify endpoint.
type Verifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: siteVerifyURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// FromEnv returns a verifier for HCAPTCHA_SECRET, or nil when it is unset.
func FromEnv() *Verifier {
	secret := env.GetEnv("HCAPTCHA_SECRET", "")
	if secret == "" {
		return nil
	}
	return NewVerifier(secret)
}

func (v *Verifier) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	formData := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return fmt.Errorf("build hCaptcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to hCaptcha API: %w", err)
	}
	defer resp.Body.Close()

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode hCaptcha API response: %w", err)
	}

	if !response.Success {
		errorMsg := "hCaptcha validation failed"
		if len(response.ErrorCodes) > 0 {
			errorMsg = errorMsg + ": " + strings.Join(response.ErrorCodes, ", ")
		}
		return errors.New(errorMsg)
	}

	return nil
}
