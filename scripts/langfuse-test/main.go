// Script to test Langfuse connectivity: resolves the advice prompt, then
// ships a test trace and a score through the batched ingestion client.
// Usage: go run scripts/langfuse-test/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/step-tracker/internal/config"
	"github.com/blaisecz/step-tracker/internal/langfuse"
	"github.com/blaisecz/step-tracker/internal/llm"
)

func main() {
	cfg := config.Load()

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.LangfuseBaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.LangfusePublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.LangfuseSecretKey))
	fmt.Printf("Environment: %s\n", cfg.LangfuseEnv)
	fmt.Println()

	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})
	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfusePromptLabel,
		Default:     llm.DefaultSystemPrompt,
	})
	if err != nil {
		log.Fatalf("Failed to load prompt: %v", err)
	}
	fmt.Printf("✓ Prompt %q resolved from %s (version %d, %d chars)\n",
		cfg.LangfusePromptName, prompt.Source, prompt.Version, len(prompt.Text))

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		UserID: "test-user-123",
		Name:   "test-trace",
		Input: map[string]any{
			"message": "Hello from langfuse-test script",
			"time":    time.Now().Format(time.RFC3339),
		},
		Output: map[string]any{
			"status": "success",
		},
		Tags:     []string{"test", "manual"},
		Metadata: map[string]any{"prompt_version": prompt.Version},
	})
	if err != nil {
		log.Fatalf("Failed to queue trace: %v", err)
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   5,
		Comment: "langfuse-test script",
	}); err != nil {
		log.Fatalf("Failed to queue score: %v", err)
	}

	// Close flushes the queue; rejected batches are logged with a [langfuse] prefix.
	if err := client.Close(ctx); err != nil {
		log.Fatalf("Failed to flush events: %v", err)
	}

	fmt.Println("✓ Test trace shipped")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.LangfuseBaseURL, traceID)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
