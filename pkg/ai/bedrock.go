package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	maxTokens        = 1024
	requestTimeout   = 30 * time.Second
)

// BedrockClient Bedrock üzerindeki Anthropic modelini invoke eder.
type BedrockClient struct {
	invokeURL   string
	bearerToken string
	httpClient  *http.Client
}

func NewBedrockClient(region, modelID, bearerToken string) *BedrockClient {
	return &BedrockClient{
		invokeURL:   fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com/model/%s/invoke", region, modelID),
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// GenerateRecipe verilen malzeme listesi için tarif metni üretir.
func (c *BedrockClient) GenerateRecipe(ctx context.Context, ingredients []string) (string, error) {
	if len(ingredients) == 0 {
		return "", errors.New("ingredients are required")
	}

	prompt := "Generate a recipe using these ingredients: " + strings.Join(ingredients, ", ")
	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.invokeURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("bedrock invoke error: %s", string(respBody))
	}

	var result invokeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("bedrock invoke error: %v", err)
	}
	if len(result.Content) == 0 || result.Content[0].Text == "" {
		return "", errors.New("bedrock invoke error: empty model response")
	}
	return result.Content[0].Text, nil
}
