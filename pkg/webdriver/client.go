package webdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of a non-protocol response body is kept for
// error display.
const maxErrorBody = 512

// Client speaks the driver's HTTP command protocol against one endpoint.
// It owns envelope unwrapping and error classification; it holds no
// session state of its own.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client, including its timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a client for the driver endpoint at addr, which may omit the
// scheme ("localhost:4444" and "http://localhost:4444" are equivalent).
func New(addr string, options ...Option) (*Client, error) {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	baseURL, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("webdriver: parse endpoint address: %w", err)
	}
	c := &Client{baseURL: baseURL, httpClient: http.DefaultClient}
	for _, option := range options {
		option(c)
	}
	return c, nil
}

// NewForPort returns a client for a driver listening on localhost.
func NewForPort(port int, options ...Option) *Client {
	c := &Client{
		baseURL:    &url.URL{Scheme: "http", Host: net.JoinHostPort("localhost", strconv.Itoa(port))},
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Addr returns the endpoint this client talks to, without the scheme.
func (c *Client) Addr() string { return c.baseURL.Host }

// envelope is the outer object every protocol response is wrapped in.
type envelope struct {
	Value json.RawMessage `json:"value"`
}

// protocolError is the shape of the value member when a command failed.
type protocolError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// emptyBody satisfies endpoints that require a JSON object body even when
// the command takes no parameters.
var emptyBody = struct{}{}

// roundTrip issues one command and returns the unwrapped value member.
// When the response is not JSON at all but the request succeeded at the
// HTTP level, the raw body is returned with plain set, so endpoints that
// reply with bare text still work.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any) (raw json.RawMessage, plain bool, err error) {
	var payload io.Reader
	if body != nil {
		data, merr := json.Marshal(body)
		if merr != nil {
			return nil, false, fmt.Errorf("webdriver: encode request body: %w", merr)
		}
		payload = bytes.NewReader(data)
	}

	reqURL := *c.baseURL
	reqURL.Path = path
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), payload)
	if err != nil {
		return nil, false, fmt.Errorf("webdriver: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{"method": method, "path": path}).Debug("sending driver command")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, &Error{Kind: KindConnection, Addr: c.baseURL.Host, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, &Error{Kind: KindConnection, Addr: c.baseURL.Host, Err: err}
	}

	var env envelope
	if uerr := json.Unmarshal(data, &env); uerr != nil {
		if resp.StatusCode >= 400 {
			return nil, false, &Error{Kind: KindHTTP, Status: resp.StatusCode, Body: clipBody(data)}
		}
		// Success status with a non-envelope body: pass it through.
		return json.RawMessage(data), true, nil
	}

	if len(env.Value) > 0 {
		var perr protocolError
		if json.Unmarshal(env.Value, &perr) == nil && perr.Code != "" {
			message := perr.Message
			if message == "" {
				message = perr.Code
			}
			return nil, false, &Error{
				Kind:    KindProtocol,
				Code:    perr.Code,
				Message: message,
				Status:  resp.StatusCode,
			}
		}
	}
	return env.Value, false, nil
}

// Do issues a command and decodes the value member into a generic Go
// value: objects become maps, arrays slices, and so on. Script results
// and other payloads with no fixed shape go through here.
func (c *Client) Do(ctx context.Context, method, path string, body any) (any, error) {
	raw, plain, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if plain {
		return string(raw), nil
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("webdriver: decode response value: %w", err)
	}
	return out, nil
}

// call issues a command and decodes the value member into out, which must
// be a pointer. A nil out discards the value.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	raw, plain, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if plain {
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		return fmt.Errorf("webdriver: endpoint %s returned a non-JSON body", path)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("webdriver: decode response value: %w", err)
	}
	return nil
}

func clipBody(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
