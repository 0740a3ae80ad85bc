package ai

// Role роль автора сообщения.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Attachment вложение ответа: тип содержимого и ссылка на файл в бакете DIAL.
type Attachment struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// CustomContent структурированная часть сообщения (custom_content в DIAL).
type CustomContent struct {
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Message struct {
	Role          Role           `json:"role"`
	Content       string         `json:"content"`
	CustomContent *CustomContent `json:"custom_content,omitempty"`
}

// Attachments возвращает вложения сообщения; nil, если custom_content отсутствует.
func (m Message) Attachments() []Attachment {
	if m.CustomContent == nil {
		return nil
	}
	return m.CustomContent.Attachments
}
