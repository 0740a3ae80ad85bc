package ai

import (
	"DialTextToImage/internal/config"
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DialClient отправляет chat completions в DIAL через OpenAI-совместимый API.
// Вложения ответа DIAL кладёт в нестандартное поле message.custom_content.
type DialClient struct {
	client     openai.Client
	deployment string
	logger     *zap.SugaredLogger
}

// NewDialClient создаёт клиента для деплоймента. extra позволяет подменить, например, HTTP-клиента.
func NewDialClient(cfg config.DialConfig, deployment string, logger *zap.SugaredLogger, extra ...option.RequestOption) (*DialClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deployment == "" {
		return nil, fmt.Errorf("dial: empty deployment name")
	}
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.DeploymentURL(deployment)),
		option.WithHeader("Api-Key", cfg.APIKey),
		// DIAL авторизует только по Api-Key; ключи OpenAI из окружения наружу не отдаём
		option.WithHeaderDel("Authorization"),
		option.WithHeaderDel("OpenAI-Organization"),
		option.WithHeaderDel("OpenAI-Project"),
		// повторов нет: любая ошибка сразу уходит вызывающему
		option.WithMaxRetries(0),
	}
	// таймаут одной попытки из DIAL_TIMEOUT; 0 — без ограничения
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	opts = append(opts, extra...)

	return &DialClient{
		client:     openai.NewClient(opts...),
		deployment: deployment,
		logger:     logger,
	}, nil
}

func (c *DialClient) Complete(ctx context.Context, messages []Message, opts GenerationOptions) ([]Message, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.deployment),
		Messages: toParams(messages),
	}

	var reqOpts []option.RequestOption
	if !opts.IsZero() {
		reqOpts = append(reqOpts, option.WithJSONSet("custom_fields", map[string]any{
			"configuration": opts.Configuration(),
		}))
	}

	c.logger.Debugw("Запрос в DIAL", "deployment", c.deployment, "messages", len(messages), "options", opts)
	resp, err := c.client.Chat.Completions.New(ctx, params, reqOpts...)
	if err != nil {
		return nil, err
	}

	out := make([]Message, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		out = append(out, fromCompletionMessage(choice.Message))
	}
	c.logger.Debugw("Ответ DIAL получен", "choices", len(out))
	return out, nil
}

func toParams(messages []Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}

func fromCompletionMessage(msg openai.ChatCompletionMessage) Message {
	return Message{
		Role:          RoleAssistant,
		Content:       msg.Content,
		CustomContent: ParseCustomContent(msg.RawJSON()),
	}
}

// ParseCustomContent достаёт custom_content из сырого JSON сообщения; nil, если поля нет.
func ParseCustomContent(raw string) *CustomContent {
	cc := gjson.Get(raw, "custom_content")
	if !cc.Exists() || !cc.IsObject() {
		return nil
	}
	content := &CustomContent{}
	// не массив (например, объект) считаем отсутствием вложений
	if atts := cc.Get("attachments"); atts.IsArray() {
		atts.ForEach(func(_, att gjson.Result) bool {
			content.Attachments = append(content.Attachments, Attachment{
				Type:  att.Get("type").String(),
				URL:   att.Get("url").String(),
				Title: att.Get("title").String(),
			})
			return true
		})
	}
	return content
}
