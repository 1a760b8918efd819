package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAPIURL = "https://api.anthropic.com/v1/messages"
	apiVersion    = "2023-06-01"

	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-sonnet-4-20250514"

	// historyTurns is the number of trailing conversation turns prefixed
	// to each prompt.
	historyTurns = 3
)

// Turn is one prior message in the conversation.
type Turn struct {
	Role    string
	Content string
}

// Client talks to the model's messages API.
type Client struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

// NewClient creates a new Client. Requires ANTHROPIC_API_KEY env var. An
// empty model selects [DefaultModel]. ANTHROPIC_API_URL overrides the
// endpoint so tests can use local servers.
func NewClient(model string) (*Client, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is not set")
	}
	if model == "" {
		model = DefaultModel
	}
	apiURL := os.Getenv("ANTHROPIC_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		apiKey: key,
		model:  model,
		apiURL: apiURL,
		client: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// Converse sends one prompt to the model with the design and generic tool
// schemas attached and temperature pinned to zero. At most the last three
// history turns are prepended to the prompt as "role: content" lines. The
// returned ToolResult is the input of the first tool invocation in the
// response; a response with no tool invocation is wrapped as a generic
// result carrying the raw message text.
func (c *Client) Converse(ctx context.Context, prompt string, history []Turn, system string) (*ToolResult, error) {
	body := request{
		Model:       c.model,
		MaxTokens:   4096,
		Temperature: 0.0,
		System:      system,
		Messages: []message{
			{Role: "user", Content: buildPrompt(prompt, history)},
		},
		Tools: toolSchemas(),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != 200 {
		return nil, fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return extractToolResult(result.Content)
}

// buildPrompt prepends the trailing history turns to the new prompt.
func buildPrompt(prompt string, history []Turn) string {
	if len(history) == 0 {
		return prompt
	}
	if len(history) > historyTurns {
		history = history[len(history)-historyTurns:]
	}
	var b strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
	}
	b.WriteString("\n")
	b.WriteString(prompt)
	return b.String()
}

// extractToolResult picks the first tool invocation out of the response
// blocks, or synthesizes a generic result from the message text.
func extractToolResult(blocks []block) (*ToolResult, error) {
	for _, blk := range blocks {
		if blk.Type != "tool_use" {
			continue
		}
		return decodeToolInput(blk.Name, blk.Input)
	}

	var text strings.Builder
	for _, blk := range blocks {
		if blk.Type == "text" {
			text.WriteString(blk.Text)
		}
	}
	return &ToolResult{
		RequestType: RequestTypeGeneric,
		Response:    text.String(),
	}, nil
}

func decodeToolInput(name string, input json.RawMessage) (*ToolResult, error) {
	switch name {
	case RequestTypeDesign:
		var design Design
		if err := json.Unmarshal(input, &design); err != nil {
			return nil, fmt.Errorf("parsing design input: %w", err)
		}
		return &ToolResult{
			RequestType: RequestTypeDesign,
			Response:    design.Response,
			Design:      &design,
		}, nil
	default:
		var generic struct {
			Response string `json:"response"`
		}
		if err := json.Unmarshal(input, &generic); err != nil {
			return nil, fmt.Errorf("parsing tool input: %w", err)
		}
		return &ToolResult{
			RequestType: RequestTypeGeneric,
			Response:    generic.Response,
		}, nil
	}
}

type request struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
	Tools       []tool    `json:"tools"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Content []block `json:"content"`
}

type block struct {
	Type  string          `json:"type"`
	Text  string          `json:"text,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`
}
