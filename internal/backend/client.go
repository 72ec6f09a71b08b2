package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Ricardolsanchez/training-calendar-sub000/internal/config"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	instance *Client
	once     sync.Once
)

// Client — обёртка над HTTP-клиентом бэкенда бронирований.
// Несёт bearer-токен администратора и XSRF-куку, полученную через PrimeCSRF.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// Get возвращает общий клиент, настроенный из конфигурации.
func Get() *Client {
	once.Do(func() {
		cfg := config.LoadConfig()
		instance = New(cfg.Backend.BaseURL, cfg.Timeout())
		log.Printf("Клиент бэкенда готов: %s", cfg.Backend.BaseURL)
	})
	return instance
}

// New создаёт клиент с собственной cookie jar (для XSRF-куки бэкенда).
func New(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// WithToken возвращает копию клиента с заданным bearer-токеном.
// HTTP-клиент и cookie jar общие.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// APIError — ответ бэкенда со статусом не 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: статус %d", e.Status)
}

// PrimeCSRF выполняет запрос за XSRF-кукой. Бэкенд требует её
// перед первым изменяющим вызовом; кука оседает в jar.
func (c *Client) PrimeCSRF(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sanctum/csrf-cookie", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("csrf-cookie: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}

// xsrfToken достаёт значение XSRF-куки для заголовка X-XSRF-TOKEN.
func (c *Client) xsrfToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == "XSRF-TOKEN" {
			if v, err := url.QueryUnescape(ck.Value); err == nil {
				return v
			}
			return ck.Value
		}
	}
	return ""
}

// doRaw выполняет запрос и возвращает тело ответа как есть.
func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if method != http.MethodGet {
		if xsrf := c.xsrfToken(); xsrf != "" {
			req.Header.Set("X-XSRF-TOKEN", xsrf)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("❌ %s %s: %v", method, path, err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: чтение ответа: %w", method, path, err)
	}
	log.Printf("%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(started).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: backendMessage(data)}
	}
	return data, nil
}

// do выполняет запрос и декодирует JSON-ответ в out (out может быть nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	data, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: некорректный JSON: %w", method, path, err)
	}
	return nil
}

// backendMessage вытаскивает человекочитаемое сообщение из тела ошибки.
func backendMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
