package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Client HTTP клиент сервиса уведомлений (рассылка подтверждений студентам)
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     Logger
}

// NewClient создает новый клиент сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, logger Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// SendRegistrationCompleted отправляет событие успешной регистрации
func (c *Client) SendRegistrationCompleted(ctx context.Context, event RegistrationCompletedEvent) error {
	return c.post(ctx, "/api/v1/notifications/registration-completed", event)
}

// SendCancellation отправляет событие отмены записи
func (c *Client) SendCancellation(ctx context.Context, event CancellationEvent) error {
	return c.post(ctx, "/api/v1/notifications/appointment-cancelled", event)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: post - marshal payload: %v", ErrBadRequest, err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: post - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("notifier: POST %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: post - request failed: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: post - status %d", ErrBadRequest, resp.StatusCode)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: post - status %d", ErrInternal, resp.StatusCode)
	default:
		return fmt.Errorf("%w: post - unexpected status %d", ErrInvalidResponse, resp.StatusCode)
	}
}
