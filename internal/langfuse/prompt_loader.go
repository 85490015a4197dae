package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Prompt sources, in order of preference.
const (
	PromptSourceLangfuse = "langfuse"
	PromptSourceFile     = "file"
	PromptSourceDefault  = "default"
)

// Prompt is a resolved prompt text and where it came from.
type Prompt struct {
	Text    string
	Version int
	Source  string
}

// PromptLoaderConfig describes how to resolve a prompt. The Langfuse copy
// wins; CachePath holds the last fetched text; Default is the last resort.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName  string
	PromptLabel string
	CachePath   string
	Default     string

	HTTPClient *http.Client
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// LoadPrompt resolves a prompt from Langfuse, the local cache file or the
// default text. It fails only when all three are unavailable.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	remote, err := fetchPrompt(ctx, cfg)
	if err == nil {
		if cfg.CachePath != "" {
			if err := writeCache(cfg.CachePath, remote.Text); err != nil {
				log.Printf("[langfuse] failed to cache prompt %q locally: %v", cfg.PromptName, err)
			}
		}
		return remote, nil
	}
	if !errors.Is(err, errLangfuseDisabled) {
		log.Printf("[langfuse] prompt %q fetch failed: %v", cfg.PromptName, err)
	}

	if cfg.CachePath != "" {
		data, err := os.ReadFile(cfg.CachePath)
		if err == nil && len(data) > 0 {
			return Prompt{Text: string(data), Source: PromptSourceFile}, nil
		}
	}

	if cfg.Default != "" {
		return Prompt{Text: cfg.Default, Source: PromptSourceDefault}, nil
	}
	return Prompt{}, fmt.Errorf("prompt %q unavailable", cfg.PromptName)
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	if cfg.PromptName == "" || cfg.BaseURL == "" || cfg.PublicKey == "" || cfg.SecretKey == "" {
		return Prompt{}, errLangfuseDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return Prompt{}, fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		query := parsed.Query()
		query.Set("label", cfg.PromptLabel)
		parsed.RawQuery = query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Type    string          `json:"type"`
		Version int             `json:"version"`
		Prompt  json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Prompt{}, fmt.Errorf("decode Langfuse prompt response: %w", err)
	}

	text, err := promptText(payload.Type, payload.Prompt)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{Text: text, Version: payload.Version, Source: PromptSourceLangfuse}, nil
}

func promptText(kind string, raw json.RawMessage) (string, error) {
	switch kind {
	case "", "text":
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := json.Unmarshal(raw, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return systemText(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", kind)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// systemText joins the system messages of a chat prompt. Other roles are
// rebuilt per request, so they are not part of the system prompt.
func systemText(messages []chatMessage) string {
	var parts []string
	for _, msg := range messages {
		if msg.Role == "system" && strings.TrimSpace(msg.Content) != "" {
			parts = append(parts, msg.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}

func writeCache(path, text string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0o600)
}
