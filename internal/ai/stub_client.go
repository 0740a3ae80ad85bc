package ai

import "context"

// StubClient заглушка, которая не делает реальных запросов и отвечает заранее заданными сообщениями.
type StubClient struct {
	Reply []Message
	Err   error

	// Последний полученный запрос, для проверок
	Messages []Message
	Options  GenerationOptions
	Calls    int
}

// NewStubClient возвращает заглушку с одним ответом ассистента, несущим переданные вложения.
func NewStubClient(attachments ...Attachment) *StubClient {
	return &StubClient{
		Reply: []Message{{
			Role:          RoleAssistant,
			Content:       "запрос получен",
			CustomContent: &CustomContent{Attachments: attachments},
		}},
	}
}

func (c *StubClient) Complete(_ context.Context, messages []Message, opts GenerationOptions) ([]Message, error) {
	c.Calls++
	c.Messages = messages
	c.Options = opts
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Reply, nil
}
