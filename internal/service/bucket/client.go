package bucket

import (
	"DialTextToImage/internal/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrClosed возвращается при обращении к уже закрытой сессии.
var ErrClosed = errors.New("bucket: session closed")

// StatusError неуспешный ответ файлового API DIAL.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bucket get %s: status=%d, body=%s", e.URL, e.Code, e.Body)
}

// Client читает файлы из бакета DIAL: GET <DIAL_URL>/v1/<url> с заголовком Api-Key.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	logger  *zap.SugaredLogger
}

func New(cfg config.DialConfig, logger *zap.SugaredLogger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: cfg.BaseURL(),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Open открывает сессию. Сессию нужно закрыть через Close, обычно в defer.
func (c *Client) Open(_ context.Context) (*Session, error) {
	transport := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		ForceAttemptHTTP2: true,
	}
	return &Session{
		client:    c,
		transport: transport,
		http:      &http.Client{Transport: transport, Timeout: c.timeout},
	}, nil
}

// Session держит собственный пул соединений на время одной пачки загрузок.
type Session struct {
	client    *Client
	transport *http.Transport
	http      *http.Client

	mu     sync.Mutex
	closed bool
}

// Get скачивает содержимое файла по ссылке вложения.
func (s *Session) Get(ctx context.Context, fileURL string) ([]byte, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	target := s.client.resolve(fileURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	// ключ отдаём только самому DIAL, не сторонним хостам из абсолютных ссылок
	if s.client.ownsHost(req.URL) {
		req.Header.Set("Api-Key", s.client.apiKey)
	}

	started := time.Now()
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if len(b) == 0 {
			b = []byte(resp.Status)
		}
		return nil, &StatusError{URL: fileURL, Code: resp.StatusCode, Body: string(bytes.TrimSpace(b))}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bucket get %s: read body: %w", fileURL, err)
	}
	s.client.logger.Debugw("Файл получен из бакета", "url", fileURL, "bytes", len(data), "took", time.Since(started).String())
	return data, nil
}

// Close освобождает соединения сессии. Повторный вызов ничего не делает.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.transport.CloseIdleConnections()
	return nil
}

// resolve превращает ссылку вложения в адрес файлового API.
// Абсолютные http(s) ссылки используются как есть.
func (c *Client) resolve(fileURL string) string {
	if strings.HasPrefix(fileURL, "http://") || strings.HasPrefix(fileURL, "https://") {
		return fileURL
	}
	return c.baseURL + "/v1/" + strings.TrimLeft(fileURL, "/")
}

func (c *Client) ownsHost(u *url.URL) bool {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(base.Host, u.Host)
}
