package ai

import "context"

// Client интерфейс для запросов к модели. Все реализации должны быть взаимозаменяемыми.
type Client interface {
	// Complete отправляет список сообщений и возвращает сообщения ответа (по одному на choice).
	Complete(ctx context.Context, messages []Message, opts GenerationOptions) ([]Message, error)
}
