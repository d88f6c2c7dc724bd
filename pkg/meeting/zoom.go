package meeting

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.zoom.us"
	defaultAuthURL = "https://zoom.us/oauth/token"

	// Her dış çağrı 30 saniye ile sınırlıdır.
	requestTimeout = 30 * time.Second
)

var ErrMissingCredentials = errors.New("missing zoom credentials")

// Meeting sağlayıcının onayladığı toplantı kaynağıdır.
type Meeting struct {
	ID        string
	JoinURL   string
	StartTime string
}

type CreateMeetingParams struct {
	Topic     string
	StartTime string // "2025-01-10T09:00:00" (yerel, timezone alanıyla birlikte)
	Timezone  string
	Duration  int // dakika
}

type UpdateMeetingParams struct {
	Topic     string
	StartTime string
	Timezone  string
}

// Provider toplantı sağlayıcısının servis katmanına açılan yüzüdür.
type Provider interface {
	CreateMeeting(ctx context.Context, params CreateMeetingParams) (*Meeting, error)
	UpdateMeeting(ctx context.Context, meetingID string, params UpdateMeetingParams) error
	DeleteMeeting(ctx context.Context, meetingID string) error
}

type Credentials struct {
	AccountID    string
	ClientID     string
	ClientSecret string
}

type ZoomClient struct {
	creds      Credentials
	baseURL    string
	authURL    string
	httpClient *http.Client
}

func NewZoomClient(creds Credentials) *ZoomClient {
	return &ZoomClient{
		creds:      creds,
		baseURL:    defaultBaseURL,
		authURL:    defaultAuthURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// accessToken server-to-server OAuth (account_credentials) ile token alır.
func (c *ZoomClient) accessToken(ctx context.Context) (string, error) {
	if c.creds.AccountID == "" || c.creds.ClientID == "" || c.creds.ClientSecret == "" {
		return "", ErrMissingCredentials
	}

	tokenURL := fmt.Sprintf("%s?grant_type=account_credentials&account_id=%s",
		c.authURL, url.QueryEscape(c.creds.AccountID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, nil)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.creds.ClientID + ":" + c.creds.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("zoom token error: %s", string(body))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("zoom token error: %v", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("zoom token error: empty access_token")
	}
	return token.AccessToken, nil
}

func (c *ZoomClient) CreateMeeting(ctx context.Context, params CreateMeetingParams) (*Meeting, error) {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"topic":      params.Topic,
		"type":       2, // planlanmış toplantı
		"start_time": params.StartTime,
		"duration":   params.Duration,
		"timezone":   params.Timezone,
		"settings": map[string]interface{}{
			"join_before_host": false,
			"waiting_room":     true,
		},
	}

	body, err := c.do(ctx, http.MethodPost, "/v2/users/me/meetings", accessToken, payload)
	if err != nil {
		return nil, fmt.Errorf("zoom meeting error: %w", err)
	}

	var created struct {
		ID        int64  `json:"id"`
		JoinURL   string `json:"join_url"`
		StartTime string `json:"start_time"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("zoom meeting error: %v", err)
	}

	m := &Meeting{
		JoinURL:   created.JoinURL,
		StartTime: created.StartTime,
	}
	if created.ID != 0 {
		m.ID = strconv.FormatInt(created.ID, 10)
	}
	return m, nil
}

func (c *ZoomClient) UpdateMeeting(ctx context.Context, meetingID string, params UpdateMeetingParams) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"start_time": params.StartTime,
		"timezone":   params.Timezone,
	}
	if params.Topic != "" {
		payload["topic"] = params.Topic
	}

	path := "/v2/meetings/" + url.PathEscape(meetingID)
	if _, err := c.do(ctx, http.MethodPatch, path, accessToken, payload); err != nil {
		return fmt.Errorf("zoom update error: %w", err)
	}
	return nil
}

func (c *ZoomClient) DeleteMeeting(ctx context.Context, meetingID string) error {
	accessToken, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	path := "/v2/meetings/" + url.PathEscape(meetingID)
	if _, err := c.do(ctx, http.MethodDelete, path, accessToken, nil); err != nil {
		return fmt.Errorf("zoom cancel error: %w", err)
	}
	return nil
}

// do isteği gönderir; 2xx dışı yanıtlarda sağlayıcının hata metnini aynen döndürür.
func (c *ZoomClient) do(ctx context.Context, method, path, accessToken string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New(string(body))
	}
	return body, nil
}
