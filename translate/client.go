package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

const defaultTimeout = 30 * time.Second

// HTTPClient calls the hosted translate-content function over JSON.
type HTTPClient struct {
	endpoint string
	session  interfaces.SessionProvider
	httpc    *http.Client
	logger   interfaces.Logger
}

// HTTPOption customises the HTTP client.
type HTTPOption func(*HTTPClient)

// WithHTTPDoer overrides the underlying http.Client, mainly for tests.
func WithHTTPDoer(c *http.Client) HTTPOption {
	return func(h *HTTPClient) {
		if c != nil {
			h.httpc = c
		}
	}
}

// WithLogger attaches a logger provider to the client.
func WithLogger(provider interfaces.LoggerProvider) HTTPOption {
	return func(h *HTTPClient) {
		h.logger = logging.TranslateLogger(provider)
	}
}

// NewHTTPClient creates a client for the translation endpoint. The session
// provider supplies the bearer token on every call; translation is refused
// without a valid session.
func NewHTTPClient(endpoint string, session interfaces.SessionProvider, opts ...HTTPOption) *HTTPClient {
	h := &HTTPClient{
		endpoint: endpoint,
		session:  session,
		httpc:    &http.Client{Timeout: defaultTimeout},
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// wire shapes match the deployed translate-content function.
type wireRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	ContentType    string `json:"contentType"`
}

type wireResponse struct {
	TranslatedText string `json:"translatedText"`
	ErrorMessage   string `json:"error"`
}

// Translate sends the fragment to the remote endpoint and returns the
// translated text. Failures come back as *Error carrying the request's
// language and field.
func (h *HTTPClient) Translate(ctx context.Context, req Request) (string, error) {
	token, err := h.session.AccessToken(ctx)
	if err != nil {
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: ErrNotAuthenticated}
	}

	payload, err := json.Marshal(wireRequest{
		Text:           req.Text,
		TargetLanguage: string(req.TargetLanguage),
		ContentType:    string(req.FieldType),
	})
	if err != nil {
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpc.Do(httpReq)
	if err != nil {
		h.logger.Error("translation request failed",
			"lang", string(req.TargetLanguage),
			"field", string(req.FieldType),
			"error", err,
		)
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: err}
	}

	var decoded wireResponse
	if err := json.Unmarshal(body, &decoded); err != nil && resp.StatusCode < 300 {
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := decoded.ErrorMessage
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		h.logger.Warn("translation rejected",
			"lang", string(req.TargetLanguage),
			"field", string(req.FieldType),
			"status", resp.StatusCode,
		)
		return "", &Error{Lang: req.TargetLanguage, Field: req.FieldType, Err: fmt.Errorf("%s", msg)}
	}

	return decoded.TranslatedText, nil
}
