package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/op/go-logging.v1"

	"quatex/internal/domain"
)

// ErrUnavailable wraps every failure to reach the hosted service. The answer
// returned alongside it is the fallback text.
var ErrUnavailable = errors.New("assistant unavailable")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const systemPrompt = "You are a tutor for a quaternion conjugation key-exchange simulator. " +
	"Quaternions are reduced modulo m and multiplied with the Hamilton product, which is not commutative. " +
	"Each party publishes S·G·S⁻¹; the two derived values are (AB)·G·(AB)⁻¹ and (BA)·G·(BA)⁻¹, which almost never agree. " +
	"Answer briefly and concretely."

// maxResponseBytes bounds the response body read from the service.
const maxResponseBytes = 1 << 20

// Client talks to a chat-completions endpoint.
type Client struct {
	Endpoint string
	Model    string
	APIKey   string
	HTTP     *http.Client

	log *logging.Logger
}

// New constructs a Client. A nil httpClient uses http.DefaultClient.
func New(endpoint, model, apiKey string, httpClient *http.Client, log *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		Endpoint: endpoint,
		Model:    model,
		APIKey:   apiKey,
		HTTP:     httpClient,
		log:      log,
	}
}

// Configured reports whether requests will be sent at all.
func (c *Client) Configured() bool {
	return c.Endpoint != "" && c.APIKey != ""
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Ask sends history followed by utterance and returns the reply.
//
// An unconfigured client answers with Fallback and a nil error. A failed
// request answers with Fallback and an error wrapping ErrUnavailable.
func (c *Client) Ask(ctx context.Context, history []domain.Turn, utterance string) (string, error) {
	if !c.Configured() {
		return Fallback(utterance), nil
	}
	answer, err := c.complete(ctx, history, utterance)
	if err != nil {
		if c.log != nil {
			c.log.Warningf("assistant: %v", err)
		}
		return Fallback(utterance), fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return answer, nil
}

func (c *Client) complete(ctx context.Context, history []domain.Turn, utterance string) (string, error) {
	req := chatRequest{
		Model:    c.Model,
		Messages: make([]message, 0, len(history)+2),
	}
	req.Messages = append(req.Messages, message{Role: string(domain.RoleSystem), Content: systemPrompt})
	for _, t := range history {
		req.Messages = append(req.Messages, message{Role: string(t.Role), Content: t.Text})
	}
	req.Messages = append(req.Messages, message{Role: string(domain.RoleUser), Content: utterance})

	var out chatResponse
	if err := c.post(ctx, req, &out); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", errors.New(out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("empty response")
	}
	answer := strings.TrimSpace(out.Choices[0].Message.Content)
	if answer == "" {
		return "", errors.New("empty answer")
	}
	return answer, nil
}

func (c *Client) post(ctx context.Context, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return fmt.Errorf("post %s: %s", c.Endpoint, resp.Status)
	}
	return json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out)
}

// Compile-time assertion that Client implements domain.Assistant.
var _ domain.Assistant = (*Client)(nil)
