package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const requestsPath = "/v1/requests"

// Config holds configuration for the HTTP coordinator client
type Config struct {
	// BaseURL of the randomness coordinator
	BaseURL string

	// KeyHash routes the request to an oracle keypair
	KeyHash string

	// SubscriptionID is the funded account the request is billed to
	SubscriptionID string

	// RequestConfirmations is how deep the coordinator waits before
	// responding
	RequestConfirmations uint16

	// CallbackGasLimit bounds the resources the fulfillment callback
	// may spend
	CallbackGasLimit uint32

	// CallbackURL is where the coordinator delivers the fulfillment
	CallbackURL string

	// Optional HTTP client, defaults to one with a 10s timeout
	HTTPClient *http.Client
}

// httpClient implements the Client interface against a coordinator's
// REST API
type httpClient struct {
	config *Config
	client *http.Client
}

// NewHTTP creates a new HTTP-backed oracle client
func NewHTTP(cfg *Config) (*httpClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if cfg.KeyHash == "" {
		return nil, errors.New("key hash cannot be empty")
	}

	if cfg.SubscriptionID == "" {
		return nil, errors.New("subscription ID cannot be empty")
	}

	if cfg.CallbackURL == "" {
		return nil, errors.New("callback URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &httpClient{
		config: cfg,
		client: client,
	}, nil
}

type requestBody struct {
	KeyHash              string `json:"key_hash"`
	SubscriptionID       string `json:"subscription_id"`
	RequestConfirmations uint16 `json:"request_confirmations"`
	CallbackGasLimit     uint32 `json:"callback_gas_limit"`
	NumWords             uint32 `json:"num_words"`
	CallbackURL          string `json:"callback_url"`
}

type responseBody struct {
	RequestID string `json:"request_id"`
}

// RequestRandomWords submits a randomness request to the coordinator and
// returns the assigned request ID
func (c *httpClient) RequestRandomWords(ctx context.Context, input *RequestRandomWordsInput) (*RequestRandomWordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	numWords := input.NumWords
	if numWords == 0 {
		numWords = 1
	}

	body, err := json.Marshal(&requestBody{
		KeyHash:              c.config.KeyHash,
		SubscriptionID:       c.config.SubscriptionID,
		RequestConfirmations: c.config.RequestConfirmations,
		CallbackGasLimit:     c.config.CallbackGasLimit,
		NumWords:             numWords,
		CallbackURL:          c.config.CallbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal randomness request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+requestsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build randomness request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call randomness coordinator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("randomness coordinator returned %d: %s", resp.StatusCode, msg)
	}

	var respBody responseBody
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("failed to decode coordinator response: %w", err)
	}

	if respBody.RequestID == "" {
		return nil, errors.New("coordinator response missing request ID")
	}

	return &RequestRandomWordsOutput{
		RequestID: respBody.RequestID,
	}, nil
}
