package ai

// Size размер генерируемой картинки.
type Size string

const (
	SizeSquare          Size = "1024x1024"
	SizeHeightRectangle Size = "1024x1792"
	SizeWidthRectangle  Size = "1792x1024"
)

// Style стиль картинки.
//   - vivid: гиперреалистично и драматично
//   - natural: естественнее, менее «глянцево»
type Style string

const (
	StyleNatural Style = "natural"
	StyleVivid   Style = "vivid"
)

// Quality качество картинки; hd даёт больше деталей и согласованности.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

// GenerationOptions передаются модели как есть, без проверки значений.
type GenerationOptions struct {
	Size    Size
	Style   Style
	Quality Quality
}

// IsZero сообщает, что ни одна опция не задана и custom_fields отправлять не нужно.
func (o GenerationOptions) IsZero() bool {
	return o.Size == "" && o.Style == "" && o.Quality == ""
}

// Configuration собирает непустые опции в объект custom_fields.configuration.
func (o GenerationOptions) Configuration() map[string]string {
	cfg := make(map[string]string, 3)
	if o.Size != "" {
		cfg["size"] = string(o.Size)
	}
	if o.Style != "" {
		cfg["style"] = string(o.Style)
	}
	if o.Quality != "" {
		cfg["quality"] = string(o.Quality)
	}
	return cfg
}
