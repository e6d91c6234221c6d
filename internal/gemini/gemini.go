package gemini

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
	"strings"
	"time"

	"go-radiology-assistant/internal/llm"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Client calls the Gemini generateContent REST API.
//
// All four harm categories are submitted with threshold BLOCK_NONE:
// radiographs and clinical photographs routinely trip the default
// filters, so over-filtering is disabled on purpose. SAFETY finish
// reasons can therefore still occur but are rarer and depend on the
// provider's non-overridable checks.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Gemini client. The timeout bounds the whole
// round trip; there is no automatic retry of a completed call.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		model:   strings.TrimSpace(model),
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint.
// Used by tests to point at a local server.
func NewClientWithBaseURL(apiKey, model, baseURL string, timeout time.Duration) *Client {
	c := NewClient(apiKey, model, timeout)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

func (c *Client) SourceName() string { return "Gemini" }

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	Contents       []content       `json:"contents"`
	SafetySettings []safetySetting `json:"safetySettings,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text,omitempty"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// permissiveSafetySettings disables blocking for every overridable harm
// category.
func permissiveSafetySettings() []safetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]safetySetting, 0, len(categories))
	for _, cat := range categories {
		settings = append(settings, safetySetting{Category: cat, Threshold: "BLOCK_NONE"})
	}
	return settings
}

// Analyze submits the prompt and JPEG image and interprets the reply.
func (c *Client) Analyze(ctx context.Context, prompt string, imageJPEG []byte) llm.Outcome {
	parts := []part{{Text: prompt}}
	if len(imageJPEG) > 0 {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: "image/jpeg",
				Data:     base64.StdEncoding.EncodeToString(imageJPEG),
			},
		})
	}

	reqBody := generateRequest{
		Contents:       []content{{Role: "user", Parts: parts}},
		SafetySettings: permissiveSafetySettings(),
	}

	resp, err := c.generateContent(ctx, reqBody)
	if err != nil {
		return transportOutcome(err)
	}
	return interpret(resp)
}

// TestConnection performs a text-only round trip. Failures here are
// advisory; the analysis path never depends on this check.
func (c *Client) TestConnection(ctx context.Context) (bool, string) {
	if !c.Enabled() {
		return false, "Clé API Google Gemini non configurée"
	}

	reqBody := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: "Réponds uniquement par OK."}},
		}},
	}

	resp, err := c.generateContent(ctx, reqBody)
	if err != nil {
		return false, fmt.Sprintf("Connexion à l'API Gemini impossible : %v", err)
	}
	if outcome := interpret(resp); outcome.Kind != llm.OutcomeSuccess {
		return false, fmt.Sprintf("Réponse API inattendue (%s)", outcome.Kind)
	}
	return true, "Connexion à l'API Gemini opérationnelle"
}

// generateContent posts the request, trying v1beta first and falling
// back to v1 only when the first endpoint itself fails. A completed
// call is never retried.
func (c *Client) generateContent(ctx context.Context, body generateRequest) (*generateResponse, error) {
	endpoints := []string{
		fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey),
		fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for _, ep := range endpoints {
		resp, callErr := c.call(ctx, ep, payload)
		if callErr == nil {
			return resp, nil
		}
		lastErr = callErr
		// A context-level failure will not improve on the next endpoint.
		if ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) call(ctx context.Context, endpoint string, payload []byte) (*generateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", c.redactKey(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.redactKey(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var gr generateResponse
	if jsonErr := json.Unmarshal(bodyBytes, &gr); jsonErr == nil && gr.Error != nil {
		return nil, fmt.Errorf("API error (status %d, %s): %s", resp.StatusCode, gr.Error.Status, gr.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &gr, nil
}

// interpret maps the structured reply onto the outcome sum type by
// inspecting the first candidate's finish indicator.
func interpret(gr *generateResponse) llm.Outcome {
	if gr == nil || len(gr.Candidates) == 0 {
		return llm.Outcome{Kind: llm.OutcomeEmpty}
	}

	cand := gr.Candidates[0]
	switch cand.FinishReason {
	case "STOP", "":
		var sb strings.Builder
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		text := sb.String()
		if strings.TrimSpace(text) == "" {
			return llm.Outcome{Kind: llm.OutcomeEmpty}
		}
		return llm.Outcome{Kind: llm.OutcomeSuccess, Text: text}
	case "MAX_TOKENS":
		return llm.Outcome{Kind: llm.OutcomeTruncated, FinishReason: cand.FinishReason}
	case "SAFETY":
		return llm.Outcome{Kind: llm.OutcomeBlockedSafety, FinishReason: cand.FinishReason}
	case "RECITATION":
		return llm.Outcome{Kind: llm.OutcomeBlockedRecitation, FinishReason: cand.FinishReason}
	default:
		return llm.Outcome{Kind: llm.OutcomeMalformed, FinishReason: cand.FinishReason}
	}
}

// redactKey strips the credential-bearing query from transport errors.
// The http package embeds the full request URL, key included, in its
// errors; nothing past this point may see the key.
func (c *Client) redactKey(err error) error {
	if err == nil {
		return nil
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		if u, parseErr := url.Parse(ue.URL); parseErr == nil && u.RawQuery != "" {
			u.RawQuery = ""
			return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
		}
	}
	if c.apiKey != "" && strings.Contains(err.Error(), c.apiKey) {
		return errors.New(strings.ReplaceAll(err.Error(), c.apiKey, "[REDACTED]"))
	}
	return err
}

func transportOutcome(err error) llm.Outcome {
	return llm.Outcome{
		Kind:          llm.OutcomeTransportError,
		TransportKind: classifyTransportError(err),
		Err:           err,
	}
}

// classifyTransportError infers the failure category from the error.
// Substring inference is confined to this one function: it is the true
// edge where the external API only gives unstructured text.
func classifyTransportError(err error) llm.TransportErrorKind {
	if err == nil {
		return llm.TransportUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.TransportTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "client.timeout"),
		strings.Contains(msg, "timeout"):
		return llm.TransportTimeout
	case strings.Contains(msg, "invalid_argument"),
		strings.Contains(msg, "invalid argument"),
		strings.Contains(msg, "api key not valid"),
		strings.Contains(msg, "status 400"):
		return llm.TransportInvalidArgument
	case strings.Contains(msg, "permission_denied"),
		strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "status 403"):
		return llm.TransportPermissionDenied
	case strings.Contains(msg, "resource_exhausted"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "status 429"):
		return llm.TransportQuotaExceeded
	default:
		return llm.TransportUnknown
	}
}
