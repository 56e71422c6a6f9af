package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"detailpage/internal/domain"
)

const (
	// DefaultSettleDelay is the fixed pause before rasterizing, giving
	// freshly-patched state a beat to settle. Crude, but mirrors the
	// editor's behavior: there is no readiness signal to wait on.
	DefaultSettleDelay = 300 * time.Millisecond

	jpegQuality = 95
)

// File is one produced artifact ready for delivery.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Format selects the detail page encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat normalizes a requested format, defaulting to PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("unsupported format %q", s)
}

// Exporter drives the full export pipeline: settle, rasterize, optionally
// segment around the video insert, and name the resulting files. Targets
// are always rendered one at a time; nothing here runs concurrently.
type Exporter struct {
	raster Rasterizer
	logger zerolog.Logger
	settle time.Duration
}

// NewExporter wires an exporter over the given rasterizer.
func NewExporter(raster Rasterizer, logger zerolog.Logger, settle time.Duration) *Exporter {
	if settle < 0 {
		settle = DefaultSettleDelay
	}
	return &Exporter{raster: raster, logger: logger, settle: settle}
}

// ExportDetail renders the detail page. With a populated video-insert
// section whose region can be located, the page is split into top/insert/
// bottom files (the insert band is the original source bytes, preserving
// GIF animation); otherwise a single unsegmented image is returned.
func (e *Exporter) ExportDetail(ctx context.Context, data domain.ProductData, format Format) ([]File, error) {
	if err := e.waitSettle(ctx); err != nil {
		return nil, err
	}
	page, err := e.raster.RenderPage(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("rasterize page: %w", err)
	}

	if domain.HasContent(data.VideoInsertImage) && page.VideoInsert != nil {
		files, err := e.segmented(data, page, format)
		if err == nil {
			return files, nil
		}
		e.logger.Warn().Err(err).Msg("export: segmentation failed, falling back to single image")
	} else if domain.HasContent(data.VideoInsertImage) {
		e.logger.Warn().Msg("export: video insert region not located, falling back to single image")
	}

	blob, mime, err := encodeImage(page.Image, format)
	if err != nil {
		return nil, err
	}
	name := Filename(data.ProductNameKr, "detail", string(format))
	return []File{{Name: name, MIME: mime, Data: blob}}, nil
}

// segmented slices the page raster around the video insert band.
func (e *Exporter) segmented(data domain.ProductData, page *RenderedPage, format Format) ([]File, error) {
	insertMIME, insertData, err := domain.DecodeDataURI(data.VideoInsertImage)
	if err != nil {
		return nil, fmt.Errorf("video insert payload: %w", err)
	}

	total := page.Image.Bounds().Dy()
	slices := SliceBounds(total, page.VideoInsert.Top, page.VideoInsert.Height)

	var files []File
	part := 1
	for _, s := range slices {
		if s.Top == page.VideoInsert.Top && s.Height == page.VideoInsert.Height {
			ext := extensionForMIME(insertMIME)
			files = append(files, File{
				Name: Filename(data.ProductNameKr, fmt.Sprintf("detail_%d", part), ext),
				MIME: insertMIME,
				Data: insertData,
			})
			part++
			continue
		}
		blob, mime, err := encodeImage(crop(page.Image, s), format)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name: Filename(data.ProductNameKr, fmt.Sprintf("detail_%d", part), string(format)),
			MIME: mime,
			Data: blob,
		})
		part++
	}
	return files, nil
}

// ExportThumbnails renders every preset sequentially. Serialized on
// purpose: it bounds peak memory and keeps delivery order stable.
func (e *Exporter) ExportThumbnails(ctx context.Context, data domain.ProductData, presets []ThumbnailPreset) ([]File, error) {
	if len(presets) == 0 {
		presets = ThumbnailPresets
	}
	if err := e.waitSettle(ctx); err != nil {
		return nil, err
	}
	var files []File
	for _, preset := range presets {
		img, err := e.raster.RenderThumbnail(ctx, data, preset)
		if err != nil {
			return nil, fmt.Errorf("rasterize thumbnail %s: %w", preset, err)
		}
		blob, mime, err := encodeImage(img, FormatPNG)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name: Filename(data.ProductNameKr, "thumbnail_"+preset.String(), "png"),
			MIME: mime,
			Data: blob,
		})
	}
	return files, nil
}

func (e *Exporter) waitSettle(ctx context.Context) error {
	if e.settle == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(e.settle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func encodeImage(img image.Image, format Format) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, "", fmt.Errorf("encode jpeg: %w", err)
		}
		return buf.Bytes(), "image/jpeg", nil
	default:
		if err := png.Encode(buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
}

func extensionForMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/gif":
		return "gif"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "video/mp4":
		return "mp4"
	default:
		return "png"
	}
}
