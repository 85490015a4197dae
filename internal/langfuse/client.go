// Package langfuse is a small client for the Langfuse ingestion and prompt APIs.
// Events are queued and shipped in batches by a background worker so request
// handlers never wait on Langfuse. Without credentials the client is a no-op.
package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBatchSize     = 20
	defaultFlushInterval = 2 * time.Second
	defaultQueueSize     = 256
	sendTimeout          = 5 * time.Second
)

// Client is the interface for Langfuse operations.
type Client interface {
	// IsEnabled returns true if Langfuse is configured and enabled.
	IsEnabled() bool
	// CreateTrace queues a trace and returns its ID.
	CreateTrace(ctx context.Context, in TraceInput) (string, error)
	// CreateScore queues a score for an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// Close ships queued events and stops the worker.
	Close(ctx context.Context) error
}

// TraceInput contains the data for creating a trace.
type TraceInput struct {
	ID       string // generated when empty
	UserID   string
	Name     string // e.g. "step-advice"
	Input    any
	Output   any
	Tags     []string
	Metadata map[string]any
}

// ScoreInput contains the data for creating a score.
type ScoreInput struct {
	TraceID string
	Name    string // e.g. "user_rating"
	Value   float64
	Comment string
}

// Config holds Langfuse client configuration.
type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string

	// Zero values select the package defaults.
	BatchSize     int
	FlushInterval time.Duration
	HTTPClient    *http.Client
}

func (c Config) enabled() bool {
	return c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

// NewClient creates a new Langfuse client and starts its worker.
// If baseURL or keys are empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	if !cfg.enabled() {
		switch {
		case cfg.BaseURL == "":
			log.Println("[langfuse] disabled: LANGFUSE_BASE_URL is empty")
		case cfg.PublicKey == "":
			log.Println("[langfuse] disabled: LANGFUSE_PUBLIC_KEY is empty")
		default:
			log.Println("[langfuse] disabled: LANGFUSE_SECRET_KEY is empty")
		}
		return noopClient{}
	}

	log.Printf("[langfuse] enabled: base_url=%s env=%s", cfg.BaseURL, cfg.Environment)

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}

	c := &client{
		cfg:    cfg,
		events: make(chan ingestionEvent, defaultQueueSize),
		done:   make(chan struct{}),
	}
	c.wg.Add(1)
	go c.run()
	return c
}

type client struct {
	cfg    Config
	events chan ingestionEvent
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func (c *client) IsEnabled() bool {
	return true
}

func (c *client) CreateTrace(ctx context.Context, in TraceInput) (string, error) {
	traceID := in.ID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	metadata := in.Metadata
	if c.cfg.Environment != "" {
		if metadata == nil {
			metadata = make(map[string]any)
		}
		metadata["environment"] = c.cfg.Environment
	}

	return traceID, c.enqueue(newEvent("trace-create", traceBody{
		ID:       traceID,
		Name:     in.Name,
		UserID:   in.UserID,
		Input:    in.Input,
		Output:   in.Output,
		Tags:     in.Tags,
		Metadata: metadata,
	}))
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if in.TraceID == "" {
		return fmt.Errorf("score %q: trace id is required", in.Name)
	}
	return c.enqueue(newEvent("score-create", scoreBody{
		ID:      uuid.New().String(),
		TraceID: in.TraceID,
		Name:    in.Name,
		Value:   in.Value,
		Comment: in.Comment,
	}))
}

func (c *client) Close(ctx context.Context) error {
	c.once.Do(func() { close(c.done) })

	stopped := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// enqueue never blocks; a full queue drops the event.
func (c *client) enqueue(event ingestionEvent) error {
	select {
	case <-c.done:
		return fmt.Errorf("langfuse client closed")
	default:
	}

	select {
	case c.events <- event:
		return nil
	default:
		log.Printf("[langfuse] queue full, dropping %s", event.Type)
		return fmt.Errorf("langfuse queue full")
	}
}

func (c *client) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]ingestionEvent, 0, c.cfg.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := c.sendBatch(ctx, batch); err != nil {
			log.Printf("[langfuse] batch of %d events failed: %v", len(batch), err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case event := <-c.events:
			batch = append(batch, event)
			if len(batch) >= c.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-c.done:
			for {
				select {
				case event := <-c.events:
					batch = append(batch, event)
				default:
					flush()
					return
				}
			}
		}
	}
}

func (c *client) sendBatch(ctx context.Context, events []ingestionEvent) error {
	body, err := json.Marshal(batchPayload{Batch: events})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.PublicKey, c.cfg.SecretKey)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("ingestion failed with status %d", resp.StatusCode)
	}
	return nil
}

type noopClient struct{}

func (noopClient) IsEnabled() bool { return false }

func (noopClient) CreateTrace(context.Context, TraceInput) (string, error) { return "", nil }

func (noopClient) CreateScore(context.Context, ScoreInput) error { return nil }

func (noopClient) Close(context.Context) error { return nil }

func newEvent(eventType string, body any) ingestionEvent {
	return ingestionEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body:      body,
	}
}

type batchPayload struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type traceBody struct {
	ID       string         `json:"id"`
	Name     string         `json:"name,omitempty"`
	UserID   string         `json:"userId,omitempty"`
	Input    any            `json:"input,omitempty"`
	Output   any            `json:"output,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type scoreBody struct {
	ID      string  `json:"id"`
	TraceID string  `json:"traceId"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Comment string  `json:"comment,omitempty"`
}
