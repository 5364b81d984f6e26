// Package transport sends signed requests to the LINE Pay Online API.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

const (
	// EnvSandbox selects the LINE Pay sandbox
	EnvSandbox = "sandbox"

	// EnvProduction selects the live LINE Pay API
	EnvProduction = "production"

	SandboxBaseURL    = "https://sandbox-api-pay.line.me"
	ProductionBaseURL = "https://api-pay.line.me"

	// DefaultTimeout applies when Config.Timeout is zero
	DefaultTimeout = 20 * time.Second

	maxResponseSize = 1 << 20
)

// Request headers used by the LINE Pay API
const (
	HeaderChannelID               = "X-LINE-ChannelId"
	HeaderNonce                   = "X-LINE-Authorization-Nonce"
	HeaderAuthorization           = "X-LINE-Authorization"
	HeaderMerchantDeviceProfileID = "X-LINE-MerchantDeviceProfileId"
)

// Config holds the merchant credentials and connection settings
type Config struct {
	ChannelID               string
	ChannelSecret           string
	Env                     string
	Timeout                 time.Duration
	MerchantDeviceProfileID string
	HTTPClient              *http.Client
}

// Client signs and sends requests to LINE Pay
type Client struct {
	channelID               string
	channelSecret           string
	merchantDeviceProfileID string
	baseURL                 string
	httpClient              *http.Client
	newNonce                func() string
}

// BaseURL returns the LINE Pay host for env. An empty env selects the sandbox.
func BaseURL(env string) (string, error) {
	switch env {
	case EnvSandbox, "":
		return SandboxBaseURL, nil
	case EnvProduction:
		return ProductionBaseURL, nil
	default:
		return "", fmt.Errorf("unknown LINE Pay environment [%s]", env)
	}
}

// NewClient returns a client for the environment named in cfg
func NewClient(cfg Config) (*Client, error) {
	baseURL, err := BaseURL(cfg.Env)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		channelID:               cfg.ChannelID,
		channelSecret:           cfg.ChannelSecret,
		merchantDeviceProfileID: cfg.MerchantDeviceProfileID,
		baseURL:                 baseURL,
		httpClient:              httpClient,
		newNonce:                uuid.NewString,
	}, nil
}

// BaseURL returns the host requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SendRequest signs and sends a request to path. body is JSON encoded for
// requests other than GET; query is only sent with GET requests. A non-2xx
// status is returned as an *APIError and a failure to reach LINE Pay as a
// *TransportError. The return code of a 2xx response is left for the caller
// to interpret.
func (c *Client) SendRequest(ctx context.Context, method, path string, body interface{}, query url.Values) (*Response, error) {
	var payload []byte
	var signed string

	if method == http.MethodGet {
		signed = query.Encode()
	} else {
		if body == nil {
			body = struct{}{}
		}
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling LINE Pay request body: [%w]", err)
		}
		signed = string(payload)
	}

	target := c.baseURL + path
	if method == http.MethodGet && len(query) > 0 {
		target += "?" + signed
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating LINE Pay request: [%w]", err)
	}

	nonce := c.newNonce()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderChannelID, c.channelID)
	req.Header.Set(HeaderNonce, nonce)
	req.Header.Set(HeaderAuthorization, Sign(c.channelSecret, path, signed, nonce))
	if c.merchantDeviceProfileID != "" {
		req.Header.Set(HeaderMerchantDeviceProfileID, c.merchantDeviceProfileID)
	}

	log.Trace("sending LINE Pay request", log.Data{"method": method, "path": path})

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: res.StatusCode, Body: string(data)}
		var envelope Response
		if json.Unmarshal(data, &envelope) == nil {
			apiErr.ReturnCode = envelope.ReturnCode
			apiErr.ReturnMessage = envelope.ReturnMessage
		}
		return nil, apiErr
	}

	response := &Response{}
	if err := json.Unmarshal(data, response); err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("error decoding response: [%w]", err)}
	}
	response.StatusCode = res.StatusCode

	log.Debug("received LINE Pay response", log.Data{"path": path, "return_code": response.ReturnCode})

	return response, nil
}
