package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"detailpage/internal/domain"
)

const (
	// DesignWidth is the page's fixed design width in layout units.
	DesignWidth = 800
	// DefaultScale is the device-pixel-ratio applied to every raster.
	DefaultScale = 2

	sectionGap     = 24
	accentBand     = 12
	minPageHeight  = 200
	fallbackHeight = 160
)

// RenderedPage is a fully composed page raster. VideoInsert carries the
// rendered bounds of the video-insert band when one was drawn.
type RenderedPage struct {
	Image       *image.RGBA
	VideoInsert *Slice
}

// ThumbnailPreset is one fixed thumbnail output size in design units.
type ThumbnailPreset struct {
	Width  int
	Height int
}

func (p ThumbnailPreset) String() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// ThumbnailPresets lists every exported thumbnail variant.
var ThumbnailPresets = []ThumbnailPreset{
	{Width: 202, Height: 202},
	{Width: 400, Height: 400},
	{Width: 500, Height: 500},
	{Width: 1000, Height: 1000},
	{Width: 860, Height: 1080},
}

// Rasterizer renders the preview for a given state. Implementations must
// not mutate the state they are handed.
type Rasterizer interface {
	RenderPage(ctx context.Context, data domain.ProductData) (*RenderedPage, error)
	RenderThumbnail(ctx context.Context, data domain.ProductData, preset ThumbnailPreset) (*image.RGBA, error)
}

// Compositor renders pages by stacking the populated image slots at the
// design width over an opaque white background. Slots whose payloads fail
// to decode are skipped rather than failing the whole render.
type Compositor struct {
	scale int
}

// NewCompositor returns a compositor rendering at scale device pixels per
// design unit.
func NewCompositor(scale int) *Compositor {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Compositor{scale: scale}
}

// Scale returns the configured device pixel ratio.
func (c *Compositor) Scale() int {
	return c.scale
}

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

type pageBlock struct {
	slot domain.ImageSlot
	img  image.Image
}

// pageSlots is the order sections appear on the detail page.
var pageSlots = []domain.ImageSlot{
	domain.SlotMain,
	domain.SlotFeature,
	domain.SlotPoint1_1, domain.SlotPoint1_2, domain.SlotPoint1_3,
	domain.SlotPoint2_1, domain.SlotPoint2_2, domain.SlotPoint2_3,
	domain.SlotVideoInsert,
	domain.SlotSize,
	domain.SlotPackage,
}

func (c *Compositor) RenderPage(ctx context.Context, data domain.ProductData) (*RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	width := DesignWidth * c.scale

	var blocks []pageBlock
	for _, slot := range pageSlots {
		if slot == domain.SlotPackage && !data.SectionActive(domain.SectionPackage) {
			continue
		}
		value := data.Slot(slot)
		if !domain.HasContent(value) {
			continue
		}
		img, err := decodeSlotImage(value)
		if err != nil {
			continue
		}
		blocks = append(blocks, pageBlock{slot: slot, img: img})
	}

	gap := sectionGap * c.scale
	height := accentBand * c.scale
	for _, b := range blocks {
		height += gap + scaledHeight(b.img, width)
	}
	height += gap
	if min := minPageHeight * c.scale; height < min {
		height = min
	}

	page := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(page, page.Bounds(), white)
	fill(page, image.Rect(0, 0, width, accentBand*c.scale), themeColor(data.ThemeColor))

	var videoInsert *Slice
	y := accentBand*c.scale + gap
	for _, b := range blocks {
		h := scaledHeight(b.img, width)
		target := image.Rect(0, y, width, y+h)
		xdraw.ApproxBiLinear.Scale(page, target, b.img, b.img.Bounds(), xdraw.Over, nil)
		c.overlayWatermark(page, target, data, b.slot)
		if b.slot == domain.SlotVideoInsert {
			videoInsert = &Slice{Top: y, Height: h}
		}
		y += h + gap
	}

	return &RenderedPage{Image: page, VideoInsert: videoInsert}, nil
}

// overlayWatermark stamps the watermark image over one rendered slot when
// its per-slot setting is visible. The setting's rect is relative to the
// reference frame and rescaled to the rendered width.
func (c *Compositor) overlayWatermark(page *image.RGBA, target image.Rectangle, data domain.ProductData, slot domain.ImageSlot) {
	if !data.SectionActive(domain.SectionWatermark) {
		return
	}
	setting, ok := data.WatermarkSettings[string(slot)]
	if !ok || !setting.Visible {
		return
	}
	if !domain.HasContent(data.WatermarkImage) {
		return
	}
	mark, err := decodeSlotImage(data.WatermarkImage)
	if err != nil {
		return
	}
	r := setting.Rect.ScaleTo(target.Dx())
	dst := image.Rect(
		target.Min.X+int(r.X),
		target.Min.Y+int(r.Y),
		target.Min.X+int(r.X+r.Width),
		target.Min.Y+int(r.Y+r.Height),
	).Intersect(target)
	if dst.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(page, dst, mark, mark.Bounds(), xdraw.Over, nil)
}

// RenderThumbnail produces exactly preset.Width×preset.Height design units
// (times scale) regardless of the source image's aspect ratio: the
// thumbnail image is scaled to cover and center-cropped.
func (c *Compositor) RenderThumbnail(ctx context.Context, data domain.ProductData, preset ThumbnailPreset) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w := preset.Width * c.scale
	h := preset.Height * c.scale
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(out, out.Bounds(), white)

	source := data.ThumbnailImage
	if !domain.HasContent(source) {
		source = data.MainImage
	}
	if domain.HasContent(source) {
		if img, err := decodeSlotImage(source); err == nil {
			coverDraw(out, img)
		}
	}
	return out, nil
}

// coverDraw scales src to fill dst while preserving aspect ratio, cropping
// the overflow equally on both sides.
func coverDraw(dst *image.RGBA, src image.Image) {
	db := dst.Bounds()
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	scaleX := float64(db.Dx()) / float64(sb.Dx())
	scaleY := float64(db.Dy()) / float64(sb.Dy())
	scale := scaleX
	if scaleY > scale {
		scale = scaleY
	}
	w := int(float64(sb.Dx()) * scale)
	h := int(float64(sb.Dy()) * scale)
	x0 := (db.Dx() - w) / 2
	y0 := (db.Dy() - h) / 2
	target := image.Rect(x0, y0, x0+w, y0+h)
	xdraw.ApproxBiLinear.Scale(dst, target, src, sb, xdraw.Over, nil)
}

func decodeSlotImage(value string) (image.Image, error) {
	_, raw, err := domain.DecodeDataURI(value)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode slot image: %w", err)
	}
	return img, nil
}

func scaledHeight(img image.Image, width int) int {
	b := img.Bounds()
	if b.Dx() == 0 {
		return fallbackHeight
	}
	h := b.Dy() * width / b.Dx()
	if h <= 0 {
		h = 1
	}
	return h
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

// themeColor parses the first #RRGGBB in a color or gradient spec string,
// falling back to the default accent.
func themeColor(spec string) color.RGBA {
	idx := strings.Index(spec, "#")
	if idx < 0 || len(spec) < idx+7 {
		return mustHex(domain.DefaultThemeColor)
	}
	hex := spec[idx+1 : idx+7]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mustHex(domain.DefaultThemeColor)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

func mustHex(spec string) color.RGBA {
	v, _ := strconv.ParseUint(strings.TrimPrefix(spec, "#"), 16, 32)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

var _ Rasterizer = (*Compositor)(nil)
