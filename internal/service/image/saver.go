package image

import (
	"DialTextToImage/internal/ai"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MimePNG единственный тип вложений, который сохраняется.
const MimePNG = "image/png"

// Session источник байтов по ссылке вложения. Закрывается один раз после пачки загрузок.
type Session interface {
	Get(ctx context.Context, url string) ([]byte, error)
	Close() error
}

// Opener открывает Session на время одного вызова Save.
type Opener interface {
	Open(ctx context.Context) (Session, error)
}

// OpenerFunc адаптер обычной функции к Opener.
type OpenerFunc func(ctx context.Context) (Session, error)

func (f OpenerFunc) Open(ctx context.Context) (Session, error) { return f(ctx) }

// Saver скачивает PNG-вложения и пишет их в файлы с именем из последнего сегмента ссылки.
type Saver struct {
	opener Opener
	dir    string
	out    io.Writer
	logger *zap.SugaredLogger
}

// NewSaver создаёт Saver. Пустой dir — текущая директория. out получает строки "Saved: <file>".
func NewSaver(opener Opener, dir string, out io.Writer, logger *zap.SugaredLogger) *Saver {
	return &Saver{opener: opener, dir: dir, out: out, logger: logger}
}

// Save обрабатывает вложения строго по порядку, по одному. Первая ошибка прерывает всю пачку.
func (s *Saver) Save(ctx context.Context, attachments []ai.Attachment) (err error) {
	sess, err := s.opener.Open(ctx)
	if err != nil {
		return fmt.Errorf("open bucket session: %w", err)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			if err == nil {
				err = fmt.Errorf("close bucket session: %w", cerr)
			} else {
				s.logger.Warnw("Не удалось закрыть сессию бакета", "error", cerr)
			}
		}
	}()

	for _, att := range attachments {
		if att.Type != MimePNG {
			s.logger.Debugw("Пропуск вложения", "type", att.Type, "url", att.URL)
			continue
		}
		name := FileName(att.URL)

		data, err := sess.Get(ctx, att.URL)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", name, err)
		}

		// Без создания директорий: если её нет, это ошибка записи
		path := name
		if s.dir != "" {
			path = filepath.Join(s.dir, name)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}

		s.logger.Debugw("Картинка сохранена", "path", path, "bytes", len(data))
		if _, err := fmt.Fprintln(s.out, "Saved:", name); err != nil {
			return err
		}
	}
	return nil
}

// FileName возвращает часть ссылки после последнего '/'.
func FileName(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
