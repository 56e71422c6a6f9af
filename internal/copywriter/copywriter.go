package copywriter

import (
	"context"

	"detailpage/internal/domain"
)

// Tag is a bracket-delimited section marker in the model's response. Tag
// order and attached image order must stay in lockstep or a body would be
// attributed to the wrong section.
type Tag string

const (
	TagSummary      Tag = "[요약]"
	TagFeature      Tag = "[특징]"
	TagPoint1       Tag = "[포인트1]"
	TagPoint1Extra2 Tag = "[포인트1-2]"
	TagPoint1Extra3 Tag = "[포인트1-3]"
	TagPoint2       Tag = "[포인트2]"
	TagPoint2Extra2 Tag = "[포인트2-2]"
	TagPoint2Extra3 Tag = "[포인트2-3]"
)

// TagOrder is the full recognized vocabulary in prompt order.
var TagOrder = []Tag{
	TagSummary, TagFeature,
	TagPoint1, TagPoint1Extra2, TagPoint1Extra3,
	TagPoint2, TagPoint2Extra2, TagPoint2Extra3,
}

// Patch maps extracted tags to reformatted body text. A tag missing from
// the response is absent from the patch, never present as "".
type Patch map[Tag]string

// Writer produces marketing copy for the current product state.
type Writer interface {
	Generate(ctx context.Context, data domain.ProductData) (Patch, error)
}

// promptSlot pairs a requested tag with the section's uploaded image, if
// any. Slots are emitted in TagOrder so the model sees images positionally
// matched to tags.
type promptSlot struct {
	Tag   Tag
	Image string
}

// buildPlan derives the tags to request from the active sections. The base
// page sections (summary, feature, point 1) are always requested; optional
// sections join only when active.
func buildPlan(d domain.ProductData) []promptSlot {
	plan := []promptSlot{
		{Tag: TagSummary},
		{Tag: TagFeature, Image: d.FeatureImage},
		{Tag: TagPoint1, Image: d.Point1Image1},
	}
	if d.SectionActive(domain.SectionPoint1Extra2) {
		plan = append(plan, promptSlot{Tag: TagPoint1Extra2, Image: d.Point1Image2})
	}
	if d.SectionActive(domain.SectionPoint1Extra3) {
		plan = append(plan, promptSlot{Tag: TagPoint1Extra3, Image: d.Point1Image3})
	}
	if d.SectionActive(domain.SectionPoint2) {
		plan = append(plan, promptSlot{Tag: TagPoint2, Image: d.Point2Image1})
		if d.SectionActive(domain.SectionPoint2Extra2) {
			plan = append(plan, promptSlot{Tag: TagPoint2Extra2, Image: d.Point2Image2})
		}
		if d.SectionActive(domain.SectionPoint2Extra3) {
			plan = append(plan, promptSlot{Tag: TagPoint2Extra3, Image: d.Point2Image3})
		}
	}
	// Tag order and image order must stay matched, so a slot keeps its
	// image only when the payload is actually attachable.
	for i := range plan {
		if !domain.HasContent(plan[i].Image) {
			plan[i].Image = ""
			continue
		}
		if _, _, err := domain.DecodeDataURI(plan[i].Image); err != nil {
			plan[i].Image = ""
		}
	}
	return plan
}

// Apply writes each extracted body into its matching state field. Tags
// absent from the patch leave their field untouched.
func (p Patch) Apply(d *domain.ProductData) {
	for tag, text := range p {
		switch tag {
		case TagSummary:
			d.AISummary = text
		case TagFeature:
			d.AIFeatureDesc = text
		case TagPoint1:
			d.AIPoint1Desc = text
		case TagPoint1Extra2:
			d.AIPoint1Desc2 = text
		case TagPoint1Extra3:
			d.AIPoint1Desc3 = text
		case TagPoint2:
			d.AIPoint2Desc = text
		case TagPoint2Extra2:
			d.AIPoint2Desc2 = text
		case TagPoint2Extra3:
			d.AIPoint2Desc3 = text
		}
	}
}
