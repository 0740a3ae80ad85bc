package main

import (
	"DialTextToImage/internal/ai"
	"DialTextToImage/internal/app/generator"
	"DialTextToImage/internal/config"
	"DialTextToImage/internal/service/bucket"
	"DialTextToImage/internal/service/image"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

var errUsage = errors.New("usage: tti [flags] [image-url]")

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	// создаём предустановленный регистратор zap
	logger, err := newLogger(cfg.DebugMode)
	if err != nil {
		panic(err)
	}
	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() { _ = logger.Sync() }()

	sugar.Infow(
		"Starting app",
		"DebugMode", cfg.DebugMode,
		"Deployment", cfg.Deployment,
		"Stub", cfg.Stub,
	)

	if err := run(context.Background(), cfg, flag.Args(), os.Stdout, sugar); err != nil {
		sugar.Errorw("Run failed", "error", err)
		_ = logger.Sync()
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zcfg.Build()
}

// run без аргументов генерирует картинку и сохраняет вложения,
// с одним аргументом только скачивает PNG по переданной ссылке.
func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer, logger *zap.SugaredLogger) error {
	if len(args) > 1 {
		return errUsage
	}

	bucketClient, err := bucket.New(cfg.Dial, logger)
	if err != nil {
		return err
	}
	saver := image.NewSaver(image.OpenerFunc(func(ctx context.Context) (image.Session, error) {
		sess, err := bucketClient.Open(ctx)
		if err != nil {
			return nil, err
		}
		return sess, nil
	}), cfg.OutputDir, out, logger)

	if len(args) == 1 {
		return saver.Save(ctx, []ai.Attachment{{Type: image.MimePNG, URL: args[0]}})
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	gen := generator.New(client, ai.GenerationOptions{
		Size:    ai.Size(cfg.Size),
		Style:   ai.Style(cfg.Style),
		Quality: ai.Quality(cfg.Quality),
	}, out, logger)

	atts, err := gen.Run(ctx, cfg.Prompt)
	if err != nil {
		return err
	}
	return saver.Save(ctx, atts)
}

func newClient(cfg *config.Config, logger *zap.SugaredLogger) (ai.Client, error) {
	if cfg.Stub {
		// Заглушка отдаёт одно PNG-вложение; скачивание при этом настоящее
		return ai.NewStubClient(ai.Attachment{Type: image.MimePNG, URL: "files/stub/images/stub.png", Title: "stub"}), nil
	}
	return ai.NewDialClient(cfg.Dial, cfg.Deployment, logger)
}
