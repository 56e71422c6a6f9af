package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"detailpage/internal/copywriter"
	"detailpage/internal/domain"
	"detailpage/internal/infra"
)

// errorWriter makes degraded generations visible: the copycheck run must
// fail loudly instead of returning placeholder copy.
type errorWriter struct{}

func (errorWriter) Generate(context.Context, domain.ProductData) (copywriter.Patch, error) {
	return nil, domain.ErrProviderFailure
}

func main() {
	var (
		keyFlag   string
		modelFlag string
		nameFlag  string
	)
	flag.StringVar(&keyFlag, "key", "", "Gemini API key (falls back to GEMINI_API_KEY)")
	flag.StringVar(&modelFlag, "model", "", "model override for the verification call")
	flag.StringVar(&nameFlag, "name", "샘플 텀블러", "sample product name for the verification call")
	flag.Parse()

	key := strings.TrimSpace(keyFlag)
	if key == "" {
		key = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	}
	if key == "" {
		fmt.Fprintln(os.Stderr, "Gemini API key is required via -key or GEMINI_API_KEY")
		os.Exit(1)
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "copycheck").Logger()

	writer, err := copywriter.NewGeminiWriter(copywriter.GeminiOptions{
		APIKey:   key,
		Model:    modelFlag,
		Logger:   logger,
		Fallback: errorWriter{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure writer: %v\n", err)
		os.Exit(1)
	}

	sample := domain.DefaultProductData()
	sample.ProductNameKr = nameFlag

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	patch, err := writer.Generate(ctx, sample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "key verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("key verified, model returned %d field(s)\n", len(patch))
	for _, tag := range copywriter.TagOrder {
		if body, ok := patch[tag]; ok {
			first := strings.SplitN(body, "\n", 2)[0]
			fmt.Printf("  %s %s\n", tag, first)
		}
	}
}
