package generator

import (
	"DialTextToImage/internal/ai"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TimeLayout формат метки времени в строках прогресса.
const TimeLayout = "2006-01-02 15:04:05.000000"

var (
	ErrEmptyPrompt   = errors.New("generator: empty prompt")
	ErrNoAttachments = errors.New("generator: response has no attachments")
)

type Generator struct {
	client ai.Client
	opts   ai.GenerationOptions
	out    io.Writer
	logger *zap.SugaredLogger
	now    func() time.Time
}

func New(client ai.Client, opts ai.GenerationOptions, out io.Writer, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		client: client,
		opts:   opts,
		out:    out,
		logger: logger,
		now:    time.Now,
	}
}

// Run выполняет сценарий «сгенерировать картинку» один раз и возвращает все вложения
// последнего сообщения ответа. Ошибки клиента не обрабатываются и уходят наверх.
func (g *Generator) Run(ctx context.Context, prompt string) ([]ai.Attachment, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	// 1. Одно сообщение пользователя с текстом запроса
	msg := ai.Message{Role: ai.RoleUser, Content: prompt}

	g.progress("Generating:", prompt)
	start := time.Now()
	replies, err := g.client.Complete(ctx, []ai.Message{msg}, g.opts)
	if err != nil {
		g.logger.Errorw("Ошибка генерации", "duration", time.Since(start).String(), "error", err)
		return nil, fmt.Errorf("completion: %w", err)
	}
	g.logger.Infow("Ответ получен", "duration", time.Since(start).String(), "messages", len(replies))

	// 2. Вложения берём из последнего сообщения ответа
	if len(replies) == 0 {
		return nil, ErrNoAttachments
	}
	atts := replies[len(replies)-1].Attachments()
	if len(atts) == 0 {
		return nil, ErrNoAttachments
	}

	g.progress("URL:", atts[len(atts)-1].URL)
	return atts, nil
}

func (g *Generator) progress(label, value string) {
	fmt.Fprintln(g.out, g.now().Format(TimeLayout), label, value)
}
