package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// ZipCloud search endpoint.
	zipCloudSearchURL = "https://zipcloud.ibsnet.co.jp/api/search"

	defaultTimeout = 10 * time.Second
)

var (
	// ErrNotFound is returned when the code resolves to no address.
	ErrNotFound = errors.New("postal: address not found")
	// ErrLookupFailed is returned when the lookup service cannot be reached
	// or answers with an error.
	ErrLookupFailed = errors.New("postal: lookup failed")
	// ErrInvalidCode is returned when the code is not seven bare digits.
	ErrInvalidCode = errors.New("postal: code must be 7 digits")
)

// Address is the resolved address for a postal code.
type Address struct {
	Prefecture string // 都道府県
	City       string // 市区町村
	Town       string // 町域
}

// Full returns the concatenation used to fill the address field.
func (a Address) Full() string {
	return a.Prefecture + a.City + a.Town
}

// Resolver resolves a bare 7-digit postal code to an address.
type Resolver interface {
	Lookup(ctx context.Context, code string) (Address, error)
}

// Client is a ZipCloud-backed Resolver.
type Client struct {
	baseURL string
	client  *http.Client
}

// ClientOption configures the ZipCloud client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client, ignoring nil.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithBaseURL overrides the search endpoint. Intended for tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// NewClient creates a ZipCloud resolver.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: zipCloudSearchURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// zipCloudResponse mirrors the ZipCloud API payload.
type zipCloudResponse struct {
	Status  int     `json:"status"`
	Message *string `json:"message"`
	Results []struct {
		ZipCode  string `json:"zipcode"`
		Address1 string `json:"address1"`
		Address2 string `json:"address2"`
		Address3 string `json:"address3"`
	} `json:"results"`
}

// Lookup resolves code to an address. The first result wins when the code
// maps to several towns. An empty result set maps to ErrNotFound; transport
// and API failures map to ErrLookupFailed.
func (c *Client) Lookup(ctx context.Context, code string) (Address, error) {
	if len(code) != CodeLength || Normalize(code) != code {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	reqURL := c.baseURL + "?zipcode=" + url.QueryEscape(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Address{}, errors.Join(ErrLookupFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Address{}, errors.Join(ErrLookupFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("%w: unexpected status %d", ErrLookupFailed, resp.StatusCode)
	}

	var body zipCloudResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Address{}, errors.Join(ErrLookupFailed, err)
	}

	if body.Status != http.StatusOK {
		msg := ""
		if body.Message != nil {
			msg = *body.Message
		}
		return Address{}, fmt.Errorf("%w: api status %d: %s", ErrLookupFailed, body.Status, msg)
	}
	if len(body.Results) == 0 {
		return Address{}, ErrNotFound
	}

	r := body.Results[0]
	return Address{
		Prefecture: r.Address1,
		City:       r.Address2,
		Town:       r.Address3,
	}, nil
}
