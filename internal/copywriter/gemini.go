package copywriter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"detailpage/internal/domain"
)

const (
	geminiDefaultTimeout = 30 * time.Second
	geminiProviderName   = "gemini"

	defaultGeminiModel   = "gemini-2.0-flash"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	copyTemperature     = 0.7
	copyMaxOutputTokens = 2048
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
	Fallback   Writer
}

// GeminiWriter calls a Gemini-style generateContent endpoint with the
// product state and the active sections' images, and parses the tagged
// response back into a field patch. Every failure past the credential
// check degrades to the fallback writer so the caller never crashes.
type GeminiWriter struct {
	apiKey   string
	model    string
	baseURL  string
	client   *http.Client
	logger   zerolog.Logger
	fallback Writer
}

func NewGeminiWriter(opts GeminiOptions) (*GeminiWriter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, domain.ErrMissingAPIKey
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewStaticWriter()
	}
	return &GeminiWriter{
		apiKey:   opts.APIKey,
		model:    model,
		baseURL:  baseURL,
		client:   client,
		logger:   opts.Logger,
		fallback: fallback,
	}, nil
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	CandidateCount  int     `json:"candidateCount,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiWriter) Generate(ctx context.Context, data domain.ProductData) (Patch, error) {
	plan := buildPlan(data)
	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction(plan)}},
		},
		Contents: []geminiContent{{
			Role:  "user",
			Parts: userParts(data, plan),
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     copyTemperature,
			CandidateCount:  1,
			MaxOutputTokens: copyMaxOutputTokens,
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return g.useFallback(ctx, data, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return g.useFallback(ctx, data, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return g.useFallback(ctx, data, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return g.useFallback(ctx, data, fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode))
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return g.useFallback(ctx, data, err)
	}
	text := extractText(out)
	if text == "" {
		return g.useFallback(ctx, data, fmt.Errorf("%w: empty completion", domain.ErrProviderFailure))
	}
	patch := ParseTagged(text)
	if len(patch) == 0 {
		return g.useFallback(ctx, data, fmt.Errorf("%w: no recognized tags", domain.ErrProviderFailure))
	}
	return patch, nil
}

func (g *GeminiWriter) useFallback(ctx context.Context, data domain.ProductData, cause error) (Patch, error) {
	g.logger.Warn().Err(cause).Str("provider", geminiProviderName).Msg("copywriting degraded to placeholder copy")
	return g.fallback.Generate(ctx, data)
}

func (g *GeminiWriter) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

func extractText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

// systemInstruction fixes the tone rules and the tagged-section output
// grammar the parser expects.
func systemInstruction(plan []promptSlot) string {
	sb := &strings.Builder{}
	sb.WriteString("너는 국내 이커머스 상세페이지 전문 기획자다. 주어진 상품 정보와 이미지를 바탕으로 매력적인 상세페이지 카피를 작성한다.\n")
	sb.WriteString("지침:\n")
	sb.WriteString("1. 자연스러운 한국어 사용\n")
	sb.WriteString("2. 과장 및 선정적 표현 금지\n")
	sb.WriteString("3. 실사용, 촉감, 구조 중심 설명\n")
	sb.WriteString("4. [요약]은 불렛포인트 없이 3문장, 나머지는 각 2~3문장의 매끄러운 단락\n")
	sb.WriteString("출력 형식: 아래 태그를 순서대로 쓰고, 각 태그 다음 줄부터 해당 섹션의 본문만 작성한다. 태그 외의 머리말이나 설명은 절대 쓰지 않는다.\n")
	for i, slot := range plan {
		sb.WriteString(string(slot.Tag))
		if slot.Image != "" {
			fmt.Fprintf(sb, " (첨부된 %d번째 이미지를 참고)", attachmentIndex(plan, i))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// attachmentIndex is the 1-based position of slot i's image among the
// attached images, counting only slots that carry one.
func attachmentIndex(plan []promptSlot, i int) int {
	n := 0
	for j := 0; j <= i; j++ {
		if plan[j].Image != "" {
			n++
		}
	}
	return n
}

// userParts builds the user message: product text first, then the active
// sections' images in tag order.
func userParts(data domain.ProductData, plan []promptSlot) []geminiPart {
	summary, _ := json.Marshal(data.SummaryInfo)
	text := fmt.Sprintf(
		"상품명(국문): %s\n상품명(영문): %s\n브랜드: %s\n요약정보: %s",
		data.ProductNameKr, data.ProductNameEn, data.BrandName, summary,
	)
	parts := []geminiPart{{Text: text}}
	for _, slot := range plan {
		if slot.Image == "" {
			continue
		}
		mime, raw, err := domain.DecodeDataURI(slot.Image)
		if err != nil {
			continue
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(raw),
		}})
	}
	return parts
}

var _ Writer = (*GeminiWriter)(nil)
