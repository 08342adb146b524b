package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "http://localhost:4000"
	DefaultAPIPrefix = "/api"
	DefaultTimeout   = 10 * time.Second

	defaultScheme = "http://"
	maxBodyBytes  = 8 << 20
)

// Doer - минимальный контракт http клиента, *http.Client его реализует.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Credentials int

const (
	// CredentialsInclude прикладывает Authorization, если токен сконфигурирован.
	CredentialsInclude Credentials = iota
	CredentialsOmit
)

type Options struct {
	Method      string
	Body        any
	Headers     http.Header
	Query       url.Values
	Credentials Credentials
}

type Config struct {
	BaseURL   string
	APIPrefix string
	Timeout   time.Duration
	AuthToken string
}

type Client struct {
	baseURL   string
	prefix    string
	timeout   time.Duration
	authToken string
	doer      Doer
}

type Option func(*Client)

// WithDoer подменяет транспорт, по умолчанию http.Client без собственного таймаута:
// запрос ограничивается контекстом.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.doer = d
	}
}

func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:   ResolveBaseURL(cfg.BaseURL, cfg.APIPrefix),
		prefix:    normalizePrefix(cfg.APIPrefix),
		timeout:   timeout,
		authToken: cfg.AuthToken,
		doer:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveBaseURL: пустое значение -> DefaultBaseURL, без схемы -> http://,
// хвостовые слэши срезаются, затем один раз добавляется prefix.
func ResolveBaseURL(raw, prefix string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		base = DefaultBaseURL
	}
	if !hasScheme(base) {
		base = defaultScheme + base
	}
	base = strings.TrimRight(base, "/")

	p := normalizePrefix(prefix)
	if p != "" && !strings.HasSuffix(base, p) {
		base += p
	}
	return base
}

func (c *Client) Request(ctx context.Context, path string, opts Options) (any, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.resolve(path, opts.Query)

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, fmt.Errorf("encode request body for %s %s: %w", method, target, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, newTransportError(method, target, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" && opts.Credentials == CredentialsInclude {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	for key, values := range opts.Headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timeout of %s exceeded: %w", c.timeout, context.DeadlineExceeded)
		}
		return nil, newTransportError(method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, newTransportError(method, target, fmt.Errorf("read response body: %w", err))
	}

	payload := parseBody(raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(method, target, resp.StatusCode, payload)
	}
	return payload, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	var u string
	switch {
	case hasScheme(path):
		u = path
	default:
		p := "/" + strings.TrimLeft(path, "/")
		// вызовы вида "/api/orders" при base с "/api" не должны давать "/api/api"
		if c.prefix != "" && (p == c.prefix || strings.HasPrefix(p, c.prefix+"/")) {
			p = strings.TrimPrefix(p, c.prefix)
		}
		u = c.baseURL + p
	}

	if len(query) > 0 {
		sep := "?"
		if strings.Contains(u, "?") {
			sep = "&"
		}
		u += sep + query.Encode()
	}
	return u
}

// parseBody: валидный JSON -> структура, иначе строка (например html страница
// от неправильно настроенного base url), пустое тело -> nil.
// Числа остаются json.Number: id больше 2^53 во float64 теряют точность.
func parseBody(raw []byte) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	if dec.More() {
		return string(raw)
	}
	return v
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(encoded), nil
	}
}

// LooksLikeHTML - признак того что вместо API ответил фронтенд/прокси.
func LooksLikeHTML(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	head := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") || strings.Contains(head, "<!doctype html")
}

func hasScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func normalizePrefix(prefix string) string {
	p := strings.Trim(strings.TrimSpace(prefix), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
