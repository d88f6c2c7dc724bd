package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateRecipe(t *testing.T) {
	var gotReq invokeRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{
				{"type": "text", "text": "Tomato Basil Pasta\n1. Boil pasta..."},
			},
		})
	}))
	defer srv.Close()

	c := NewBedrockClient("us-west-2", "anthropic.claude-3-sonnet-20240229-v1:0", "test-token")
	c.invokeURL = srv.URL
	c.httpClient = srv.Client()

	recipe, err := c.GenerateRecipe(context.Background(), []string{"tomato", "basil", "pasta"})
	if err != nil {
		t.Fatalf("GenerateRecipe: %v", err)
	}
	if !strings.Contains(recipe, "Tomato Basil Pasta") {
		t.Errorf("recipe = %q", recipe)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotReq.AnthropicVersion != "bedrock-2023-05-31" {
		t.Errorf("anthropic_version = %q", gotReq.AnthropicVersion)
	}
	if gotReq.MaxTokens != 1024 {
		t.Errorf("max_tokens = %d", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 1 || !strings.Contains(gotReq.Messages[0].Content, "tomato, basil, pasta") {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestGenerateRecipeEmptyIngredients(t *testing.T) {
	c := NewBedrockClient("us-west-2", "model", "token")
	if _, err := c.GenerateRecipe(context.Background(), nil); err == nil {
		t.Error("expected error for empty ingredients")
	}
}

func TestGenerateRecipeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	c := NewBedrockClient("us-west-2", "model", "bad-token")
	c.invokeURL = srv.URL
	c.httpClient = srv.Client()

	if _, err := c.GenerateRecipe(context.Background(), []string{"egg"}); err == nil {
		t.Error("expected error on 403")
	}
}

func TestGenerateRecipeEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
	}))
	defer srv.Close()

	c := NewBedrockClient("us-west-2", "model", "token")
	c.invokeURL = srv.URL
	c.httpClient = srv.Client()

	if _, err := c.GenerateRecipe(context.Background(), []string{"egg"}); err == nil {
		t.Error("expected error on empty content")
	}
}
