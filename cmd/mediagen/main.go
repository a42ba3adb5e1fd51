package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"mediastudio/internal/bootstrap"
	"mediastudio/internal/encoder"
	"mediastudio/internal/i18n"
	"mediastudio/internal/infra"
	"mediastudio/internal/media"
	"mediastudio/internal/storage"
	"mediastudio/internal/studio"
)

func main() {
	var (
		modeFlag   string
		promptFlag string
		imageFlag  string
		outFlag    string
		localeFlag string
	)
	flag.StringVar(&modeFlag, "mode", string(studio.TabImage), "Flow to run (image, edit or video)")
	flag.StringVar(&promptFlag, "prompt", "", "Text prompt")
	flag.StringVar(&imageFlag, "image", "", "Source image for -mode edit")
	flag.StringVar(&outFlag, "out", "", "Output file (defaults to a generated name in the working directory)")
	flag.StringVar(&localeFlag, "locale", i18n.LocaleEnglish, "Locale for error messages (ar or en)")
	flag.Parse()

	_ = godotenv.Load()

	mode := strings.TrimSpace(strings.ToLower(modeFlag))
	switch studio.Tab(mode) {
	case studio.TabImage, studio.TabEdit, studio.TabVideo:
	default:
		fmt.Fprintf(os.Stderr, "unsupported mode %q\n", modeFlag)
		os.Exit(2)
	}

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	// The CLI always uses the configured key and keeps videos in memory until
	// they are written to disk.
	cfg.KeySelectionRequired = false
	cfg.BlobBackend = infra.BlobBackendMemory
	cfg.RedisURL = ""
	if cfg.GeminiAPIKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY (or API_KEY) is required")
		os.Exit(1)
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "mediagen").Str("mode", mode).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if studio.Tab(mode) == studio.TabVideo && cfg.VideoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.VideoTimeout)
		defer cancel()
	}

	services, err := bootstrap.Build(ctx, cfg, &logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}
	defer services.Close()

	locale := i18n.Normalize(localeFlag)
	ref, err := run(ctx, services.Studio, studio.Tab(mode), locale, promptFlag, imageFlag, cfg.MaxUploadBytes)
	if err != nil {
		var ve *studio.ViewError
		if errors.As(err, &ve) {
			fmt.Fprintln(os.Stderr, ve.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	data, ext, err := resolve(ctx, services.Blobs, ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read result: %v\n", err)
		os.Exit(1)
	}

	out := outFlag
	if out == "" {
		out = defaultName(studio.Tab(mode), ext)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(data))
}

func run(ctx context.Context, st *studio.Studio, tab studio.Tab, locale, prompt, imagePath string, maxBytes int64) (string, error) {
	switch tab {
	case studio.TabEdit:
		var src *encoder.SourceImage
		if imagePath != "" {
			f, err := os.Open(imagePath)
			if err != nil {
				return "", err
			}
			defer f.Close()
			src, err = encoder.EncodeImage(f, "", maxBytes)
			if err != nil {
				return "", err
			}
			src.Filename = filepath.Base(imagePath)
		}
		return st.EditImage(ctx, locale, prompt, src)
	case studio.TabVideo:
		ctx = media.WithProgress(ctx, func(p media.Progress) {
			if p.Attempt > 0 {
				fmt.Fprintf(os.Stderr, "%s (%d)\n", p.Stage, p.Attempt)
				return
			}
			fmt.Fprintln(os.Stderr, p.Stage)
		})
		return st.GenerateVideo(ctx, locale, prompt)
	default:
		return st.GenerateImage(ctx, locale, prompt)
	}
}

// resolve turns a media reference into bytes and a file extension.
func resolve(ctx context.Context, blobs storage.Store, ref string) ([]byte, string, error) {
	if strings.HasPrefix(ref, "data:") {
		header, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ";base64,")
		if !ok {
			return nil, "", fmt.Errorf("unsupported data uri")
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", err
		}
		return data, strings.TrimPrefix(header, "image/"), nil
	}
	idx := strings.LastIndex(ref, "/")
	blob, err := blobs.Get(ctx, ref[idx+1:])
	if err != nil {
		return nil, "", err
	}
	ext := "mp4"
	if _, sub, ok := strings.Cut(blob.ContentType, "/"); ok && sub != "" {
		ext = sub
	}
	return blob.Data, ext, nil
}

func defaultName(tab studio.Tab, ext string) string {
	switch tab {
	case studio.TabEdit:
		return fmt.Sprintf("edited-image.%s", ext)
	case studio.TabVideo:
		return fmt.Sprintf("generated-video.%s", ext)
	default:
		return fmt.Sprintf("generated-image.%s", ext)
	}
}
