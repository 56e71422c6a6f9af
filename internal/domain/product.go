package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// PendingValue marks a slot whose section has been enabled by the user but
// which holds no data yet. It counts as "active" for section visibility and
// as empty for every content check.
const PendingValue = "PENDING"

// DefaultThemeColor is Rose 600, the editor's initial accent color.
const DefaultThemeColor = "#E11D48"

// ReferenceWidth is the fixed frame all layout rectangles are relative to.
// Rects must be rescaled proportionally when rendered at another width.
const ReferenceWidth = 500

// ColorPreset is a selectable theme color.
type ColorPreset struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ColorPresets mirrors the editor's built-in palette.
var ColorPresets = []ColorPreset{
	{Label: "Rose", Value: "#E11D48"},
	{Label: "Violet", Value: "#7C3AED"},
	{Label: "Blue", Value: "#2563EB"},
	{Label: "Green", Value: "#10B981"},
	{Label: "Orange", Value: "#EA580C"},
	{Label: "Black", Value: "#1F2937"},
}

// SummaryInfo is the fixed-shape spec table shown under the hero image.
// Every field is optional free text.
type SummaryInfo struct {
	Feature  string `json:"feature"`
	Type     string `json:"type"`
	Material string `json:"material"`
	Size     string `json:"size"`
	Weight   string `json:"weight"`
	Power    string `json:"power"`
	Maker    string `json:"maker"`
}

// Rect is a placement rectangle relative to the ReferenceWidth frame.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale returns the rect rescaled by factor.
func (r Rect) Scale(factor float64) Rect {
	return Rect{
		X:      r.X * factor,
		Y:      r.Y * factor,
		Width:  r.Width * factor,
		Height: r.Height * factor,
	}
}

// ScaleTo rescales the rect from the reference frame to the given width.
func (r Rect) ScaleTo(width int) Rect {
	return r.Scale(float64(width) / float64(ReferenceWidth))
}

// ProductOption is a user-defined variant. ID is the stable reconciliation
// key; display order follows slice order.
type ProductOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Rect  *Rect  `json:"rect,omitempty"`
}

// WatermarkSetting places the watermark on one image slot.
type WatermarkSetting struct {
	Rect    Rect `json:"rect"`
	Visible bool `json:"visible"`
}

// ProductData is the sole domain entity: everything the merchandiser has
// entered, uploaded, or generated for one detail page. Image slots hold a
// data URI, PendingValue, or "" (absent).
type ProductData struct {
	ProductNameKr string      `json:"productNameKr"`
	ProductNameEn string      `json:"productNameEn"`
	BrandName     string      `json:"brandName"`
	SummaryInfo   SummaryInfo `json:"summaryInfo"`
	ThemeColor    string      `json:"themeColor"`

	MainImage        string `json:"mainImage"`
	PackageImage     string `json:"packageImage"`
	FeatureImage     string `json:"featureImage"`
	Point1Image1     string `json:"point1Image1"`
	Point1Image2     string `json:"point1Image2"`
	Point1Image3     string `json:"point1Image3"`
	Point2Image1     string `json:"point2Image1"`
	Point2Image2     string `json:"point2Image2"`
	Point2Image3     string `json:"point2Image3"`
	SizeImage        string `json:"sizeImage"`
	ThumbnailImage   string `json:"thumbnailImage"`
	VideoInsertImage string `json:"videoInsertImage"`
	WatermarkImage   string `json:"watermarkImage"`

	AISummary     string `json:"aiSummary"`
	AIFeatureDesc string `json:"aiFeatureDesc"`
	AIPoint1Desc  string `json:"aiPoint1Desc"`
	AIPoint1Desc2 string `json:"aiPoint1Desc2"`
	AIPoint1Desc3 string `json:"aiPoint1Desc3"`
	AIPoint2Desc  string `json:"aiPoint2Desc"`
	AIPoint2Desc2 string `json:"aiPoint2Desc2"`
	AIPoint2Desc3 string `json:"aiPoint2Desc3"`

	// PackageEnabled, when set, overrides the derived package-section state.
	PackageEnabled *bool `json:"packageEnabled,omitempty"`

	Options           []ProductOption             `json:"options"`
	WatermarkSettings map[string]WatermarkSetting `json:"watermarkSettings,omitempty"`

	PackageLayout          *Rect `json:"packageLayout,omitempty"`
	ThumbnailPackageLayout *Rect `json:"thumbnailPackageLayout,omitempty"`
}

// ImageSlot names a ProductData image field.
type ImageSlot string

const (
	SlotMain        ImageSlot = "mainImage"
	SlotPackage     ImageSlot = "packageImage"
	SlotFeature     ImageSlot = "featureImage"
	SlotPoint1_1    ImageSlot = "point1Image1"
	SlotPoint1_2    ImageSlot = "point1Image2"
	SlotPoint1_3    ImageSlot = "point1Image3"
	SlotPoint2_1    ImageSlot = "point2Image1"
	SlotPoint2_2    ImageSlot = "point2Image2"
	SlotPoint2_3    ImageSlot = "point2Image3"
	SlotSize        ImageSlot = "sizeImage"
	SlotThumbnail   ImageSlot = "thumbnailImage"
	SlotVideoInsert ImageSlot = "videoInsertImage"
	SlotWatermark   ImageSlot = "watermarkImage"
)

// ImageSlots lists every slot in page order.
var ImageSlots = []ImageSlot{
	SlotMain, SlotPackage, SlotFeature,
	SlotPoint1_1, SlotPoint1_2, SlotPoint1_3,
	SlotPoint2_1, SlotPoint2_2, SlotPoint2_3,
	SlotSize, SlotThumbnail, SlotVideoInsert, SlotWatermark,
}

// Slot returns the value held by the named image slot.
func (d *ProductData) Slot(s ImageSlot) string {
	switch s {
	case SlotMain:
		return d.MainImage
	case SlotPackage:
		return d.PackageImage
	case SlotFeature:
		return d.FeatureImage
	case SlotPoint1_1:
		return d.Point1Image1
	case SlotPoint1_2:
		return d.Point1Image2
	case SlotPoint1_3:
		return d.Point1Image3
	case SlotPoint2_1:
		return d.Point2Image1
	case SlotPoint2_2:
		return d.Point2Image2
	case SlotPoint2_3:
		return d.Point2Image3
	case SlotSize:
		return d.SizeImage
	case SlotThumbnail:
		return d.ThumbnailImage
	case SlotVideoInsert:
		return d.VideoInsertImage
	case SlotWatermark:
		return d.WatermarkImage
	}
	return ""
}

// SetSlot stores a value in the named image slot.
func (d *ProductData) SetSlot(s ImageSlot, v string) {
	switch s {
	case SlotMain:
		d.MainImage = v
	case SlotPackage:
		d.PackageImage = v
	case SlotFeature:
		d.FeatureImage = v
	case SlotPoint1_1:
		d.Point1Image1 = v
	case SlotPoint1_2:
		d.Point1Image2 = v
	case SlotPoint1_3:
		d.Point1Image3 = v
	case SlotPoint2_1:
		d.Point2Image1 = v
	case SlotPoint2_2:
		d.Point2Image2 = v
	case SlotPoint2_3:
		d.Point2Image3 = v
	case SlotSize:
		d.SizeImage = v
	case SlotThumbnail:
		d.ThumbnailImage = v
	case SlotVideoInsert:
		d.VideoInsertImage = v
	case SlotWatermark:
		d.WatermarkImage = v
	}
}

// DefaultProductData returns the initial editor state.
func DefaultProductData() ProductData {
	return ProductData{
		ThemeColor: DefaultThemeColor,
		Options:    []ProductOption{},
	}
}

// Clone returns a deep copy so that whole-object replacement never shares
// mutable backing storage with an earlier snapshot.
func (d ProductData) Clone() ProductData {
	out := d
	if d.Options != nil {
		out.Options = make([]ProductOption, len(d.Options))
		for i, opt := range d.Options {
			out.Options[i] = opt
			if opt.Rect != nil {
				r := *opt.Rect
				out.Options[i].Rect = &r
			}
		}
	}
	if d.WatermarkSettings != nil {
		out.WatermarkSettings = make(map[string]WatermarkSetting, len(d.WatermarkSettings))
		for k, v := range d.WatermarkSettings {
			out.WatermarkSettings[k] = v
		}
	}
	if d.PackageEnabled != nil {
		v := *d.PackageEnabled
		out.PackageEnabled = &v
	}
	if d.PackageLayout != nil {
		r := *d.PackageLayout
		out.PackageLayout = &r
	}
	if d.ThumbnailPackageLayout != nil {
		r := *d.ThumbnailPackageLayout
		out.ThumbnailPackageLayout = &r
	}
	return out
}

// HasContent reports whether a slot holds real data. PendingValue is
// "enabled but empty" and therefore does not count.
func HasContent(v string) bool {
	return v != "" && v != PendingValue
}

// SlotSet reports whether a slot is non-empty, sentinel included.
func SlotSet(v string) bool {
	return v != ""
}

// DecodeDataURI splits an embedded image payload into its MIME type and
// raw bytes.
func DecodeDataURI(v string) (string, []byte, error) {
	if !strings.HasPrefix(v, "data:") {
		return "", nil, errors.New("not a data URI")
	}
	rest := v[len("data:"):]
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, errors.New("malformed data URI")
	}
	meta := rest[:sep]
	payload := rest[sep+1:]
	mime := meta
	if idx := strings.Index(meta, ";"); idx >= 0 {
		mime = meta[:idx]
	}
	if !strings.Contains(meta, "base64") {
		return "", nil, errors.New("unsupported data URI encoding")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI: %w", err)
	}
	return mime, data, nil
}

// EncodeDataURI builds an embedded image payload.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
