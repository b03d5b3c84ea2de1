package api

import (
	"fmt"
	"io"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/tidwall/gjson"

	"github.com/diogo/planet/internal/config"
	apierrors "github.com/diogo/planet/internal/errors"
	"github.com/diogo/planet/internal/logging"
	"github.com/diogo/planet/internal/models"
)

// DefaultTimeout bounds a single request when no timeout option is given
const DefaultTimeout = 120 * time.Second

// ClientInterface defines the backend operations used by the chat panel and the CLI
type ClientInterface interface {
	Upload(file *models.SelectedFile) (*UploadResult, error)
	Ask(question string) (*AskResult, error)
	Ping() (string, error)
	BaseURL() string
	Close()
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// Client talks to the PDF Q&A backend
type Client struct {
	httpClient tls_client.HttpClient
	baseURL    string
	timeout    time.Duration
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Client for the backend at baseURL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	client := &Client{
		baseURL: config.NormalizeBaseURL(baseURL),
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout.Seconds())),
			tls_client.WithClientProfile(profiles.Chrome_120),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections
func (c *Client) Close() {
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
}

// endpointURL joins an endpoint path onto the base URL
func (c *Client) endpointURL(path string) string {
	return c.baseURL + path
}

// Ping queries the backend root and returns its status message
func (c *Client) Ping() (string, error) {
	req, err := fhttp.NewRequest(fhttp.MethodGet, c.endpointURL(models.PathRoot), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, models.PathRoot, isSuccess)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(body, PathMessage).String(), nil
}

// isSuccess accepts any 2xx status
func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// isOK accepts exactly 200
func isOK(status int) bool {
	return status == fhttp.StatusOK
}

// do executes req and returns the response body when accept(status) holds.
// Other statuses become ServerError, failures without a response become
// TransportError.
func (c *Client) do(req *fhttp.Request, endpoint string, accept func(int) bool) ([]byte, error) {
	log := logging.WithFields("endpoint", endpoint, "method", req.Method)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err, "duration", time.Since(start))
		return nil, apierrors.NewTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("failed to read response", "status", resp.StatusCode, "error", err)
		return nil, apierrors.NewTransportError(endpoint, fmt.Errorf("failed to read response: %w", err))
	}

	log.Info("request finished", "status", resp.StatusCode, "duration", time.Since(start), "bytes", len(body))

	if !accept(resp.StatusCode) {
		return nil, apierrors.NewServerError(resp.StatusCode, endpoint, serverMessage(body), string(body))
	}

	return body, nil
}

// serverMessage extracts the error text from a failure body: the "error"
// field the backend sets, or the "detail" field of framework-level errors.
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if msg := gjson.GetBytes(body, PathError); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	detail := gjson.GetBytes(body, PathDetail)
	switch {
	case !detail.Exists():
		return ""
	case detail.IsArray():
		return detail.Get("0.msg").String()
	default:
		return detail.String()
	}
}
