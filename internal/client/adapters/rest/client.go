// Package rest содержит HTTP-клиент REST бэкенда goodnotes.
package rest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"
	"go.uber.org/zap"

	"goodnotes/internal/client/config"
	"goodnotes/internal/client/domain/errs"
	"goodnotes/pkg/logger"
)

// Константы для логирования.
const (
	LogAPIRequest  = "API request"
	LogAPIResponse = "API response"
	LogAPIError    = "API error"

	ErrMsgBaseURLRequired = "rest: base URL is required"
	ErrMsgDecodeResponse  = "decode response"

	HeaderRequestID = "X-Request-ID"
)

// DefaultTimeout используется, если таймаут не задан.
const DefaultTimeout = 10 * time.Second

// Option настраивает Client.
type Option func(*Client)

// WithTimeout переопределяет таймаут запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHeader добавляет заголовок ко всем запросам (например, Authorization).
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithMetrics включает сбор метрик запросов.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client выполняет запросы к REST API относительно базового URL.
// Ответы вне 2xx возвращаются как *errs.Error вида KindTransport.
type Client struct {
	http    *client.Client
	baseURL string
	timeout time.Duration
	headers map[string]string
	metrics *Metrics
}

// NewClient создает клиент для baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New(ErrMsgBaseURLRequired)
	}

	c := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
		headers: map[string]string{"Content-Type": "application/json"},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = client.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		AddRequestHook(c.onRequest).
		AddResponseHook(c.onResponse)
	for k, v := range c.headers {
		c.http.SetHeader(k, v)
	}

	return c, nil
}

// NewClientFromConfig создает клиент по конфигурации API.
func NewClientFromConfig(cfg *config.APIConfig, opts ...Option) (*Client, error) {
	return NewClient(cfg.BaseURL, append([]Option{WithTimeout(cfg.Timeout)}, opts...)...)
}

// BaseURL возвращает базовый URL API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// onRequest логирует исходящий запрос и передает request id.
// Заголовки авторизации пока не добавляются.
func (c *Client) onRequest(_ *client.Client, req *client.Request) error {
	ctx := req.Context()
	if id, ok := logger.GetRequestID(ctx); ok {
		req.SetHeader(HeaderRequestID, id)
	}
	logger.Log(ctx).Debug(ctx, LogAPIRequest,
		zap.String("method", req.Method()),
		zap.String("url", req.URL()))
	return nil
}

func (c *Client) onResponse(_ *client.Client, resp *client.Response, req *client.Request) error {
	ctx := req.Context()
	logger.Log(ctx).Debug(ctx, LogAPIResponse,
		zap.String("method", req.Method()),
		zap.String("url", req.URL()),
		zap.Int("status", resp.StatusCode()))
	return nil
}

// call описывает один запрос к API.
type call struct {
	method string
	path   string
	query  map[string]string
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, in call) error {
	op := in.method + " " + in.path
	log := logger.Log(ctx).With(zap.String("op", op))

	req := c.http.R().SetContext(ctx)

	for k, v := range in.query {
		req.SetParam(k, v)
	}
	if in.body != nil {
		req.SetJSON(in.body)
	}

	start := time.Now()
	resp, err := send(req, in.method, in.path)
	elapsed := time.Since(start)
	if err != nil {
		client.ReleaseRequest(req)
		c.metrics.observe(in.method, 0, elapsed)
		log.Error(ctx, LogAPIError, zap.Error(err))
		return errs.Transport(op, err)
	}
	// Close возвращает в пул и ответ, и связанный с ним запрос.
	defer resp.Close()

	status := resp.StatusCode()
	c.metrics.observe(in.method, status, elapsed)

	if status < 200 || status > 299 {
		apiErr := errs.HTTP(op, status, resp.Status())
		log.Error(ctx, LogAPIError,
			zap.Int("status", status),
			zap.ByteString("body", resp.Body()))
		return apiErr
	}

	if in.out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := resp.JSON(in.out); err != nil {
		log.Error(ctx, LogAPIError, zap.String("stage", ErrMsgDecodeResponse), zap.Error(err))
		return errs.Transport(op, fmt.Errorf("%s: %w", ErrMsgDecodeResponse, err))
	}
	return nil
}

func send(req *client.Request, method, path string) (*client.Response, error) {
	switch method {
	case fiber.MethodPost:
		return req.Post(path)
	case fiber.MethodPut:
		return req.Put(path)
	case fiber.MethodDelete:
		return req.Delete(path)
	default:
		return req.Get(path)
	}
}
