package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"google.golang.org/api/idtoken"
)

const defaultFacebookBaseURL = "https://graph.facebook.com"

// getJSON performs a GET and decodes a 200 JSON body into dst.
// It reports rejected=true for 4xx answers.
func getJSON(ctx context.Context, client *http.Client, endpoint string, dst any) (rejected bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return true, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("provider answered %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, fmt.Errorf("decode provider response: %w", err)
	}
	return false, nil
}

// GoogleVerifier validates Google ID tokens locally against Google's
// published signing keys.
type GoogleVerifier struct {
	clientID string
	timeout  time.Duration
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier creates a verifier accepting tokens issued for clientID.
func NewGoogleVerifier(clientID string, timeout time.Duration) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		timeout:  timeout,
		validate: idtoken.Validate,
	}
}

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// Verify returns the profile behind idToken, or nil when the token is not a
// valid Google ID token for this client.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*models.ExternalProfile, error) {
	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		var netErr net.Error
		if ctx.Err() != nil || errors.As(err, &netErr) {
			logger.Log.Errorw("google key fetch failed", "error", err)
			return nil, err
		}
		logger.Log.Warnw("google rejected token", "error", err)
		return nil, nil
	}
	if _, ok := googleIssuers[payload.Issuer]; !ok || payload.Subject == "" {
		logger.Log.Warnw("google token from unexpected issuer", "iss", payload.Issuer)
		return nil, nil
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &models.ExternalProfile{
		Provider:      models.ProviderGoogle,
		ID:            payload.Subject,
		Email:         strings.ToLower(email),
		EmailVerified: verified,
		Name:          name,
		Picture:       picture,
	}, nil
}

// FacebookVerifier validates Facebook user access tokens with the Graph API.
type FacebookVerifier struct {
	appID   string
	baseURL string
	client  *http.Client
}

// NewFacebookVerifier creates a verifier accepting tokens issued to appID.
func NewFacebookVerifier(appID string, timeout time.Duration) *FacebookVerifier {
	return &FacebookVerifier{
		appID:   appID,
		baseURL: defaultFacebookBaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type facebookApp struct {
	ID string `json:"id"`
}

type facebookMe struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// Verify returns the profile behind accessToken, or nil when Facebook rejects it.
func (v *FacebookVerifier) Verify(ctx context.Context, accessToken string) (*models.ExternalProfile, error) {
	token := url.QueryEscape(accessToken)

	var app facebookApp
	rejected, err := getJSON(ctx, v.client, v.baseURL+"/app?access_token="+token, &app)
	if err != nil {
		logger.Log.Errorw("facebook app lookup failed", "error", err)
		return nil, err
	}
	if rejected || app.ID != v.appID {
		logger.Log.Warnw("facebook rejected token", "app_id", app.ID)
		return nil, nil
	}

	var me facebookMe
	endpoint := v.baseURL + "/me?fields=id,name,email,picture.type(large)&access_token=" + token
	rejected, err = getJSON(ctx, v.client, endpoint, &me)
	if err != nil {
		logger.Log.Errorw("facebook profile lookup failed", "error", err)
		return nil, err
	}
	if rejected || me.ID == "" {
		return nil, nil
	}

	return &models.ExternalProfile{
		Provider:      models.ProviderFacebook,
		ID:            me.ID,
		Email:         strings.ToLower(me.Email),
		EmailVerified: me.Email != "",
		Name:          me.Name,
		Picture:       me.Picture.Data.URL,
	}, nil
}
