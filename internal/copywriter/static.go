package copywriter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"detailpage/internal/domain"
)

const staticProviderName = "static"

// StaticWriter returns fixed placeholder copy so the preview is never left
// fully empty when no provider is reachable.
type StaticWriter struct{}

func NewStaticWriter() *StaticWriter {
	return &StaticWriter{}
}

var staticBodies = map[Tag]string{
	TagSummary: "상품의 뛰어난 품질과 디자인을 경험해보세요.\n최상의 만족감을 위해 세심하게 설계되었습니다.\n누구나 만족할 수 있는 실용적인 선택입니다.",
	TagFeature: "혁신적인 기술력이 집약된 메인 기능을 소개합니다.\n사용자 편의성을 극대화한 구조로 설계되어 일상에 즐거움을 더해줍니다.",
	TagPoint1:  "부드러운 재질과 인체공학적 디자인이 조화를 이룹니다.\n장시간 사용해도 변함없는 편안함을 제공하며 디테일한 마감 처리가 돋보입니다.",
	TagPoint2:  "내구성이 뛰어난 소재를 사용하여 안심하고 사용할 수 있습니다.\n세척과 관리가 용이하며 세련된 외형으로 인테리어 효과까지 얻을 수 있습니다.",
}

func (s *StaticWriter) Generate(_ context.Context, data domain.ProductData) (Patch, error) {
	patch := Patch{}
	for _, slot := range buildPlan(data) {
		patch[slot.Tag] = staticBody(slot.Tag)
	}
	if name := displayName(data); name != "" {
		patch[TagSummary] = fmt.Sprintf("%s, 일상을 바꾸는 선택입니다.\n%s", name, patch[TagSummary])
	}
	return patch, nil
}

// staticBody maps extension tags onto their base section's placeholder.
func staticBody(tag Tag) string {
	if body, ok := staticBodies[tag]; ok {
		return body
	}
	switch tag {
	case TagPoint1Extra2, TagPoint1Extra3:
		return staticBodies[TagPoint1]
	case TagPoint2Extra2, TagPoint2Extra3:
		return staticBodies[TagPoint2]
	}
	return staticBodies[TagFeature]
}

func displayName(data domain.ProductData) string {
	if name := strings.TrimSpace(data.ProductNameKr); name != "" {
		return name
	}
	if name := strings.TrimSpace(data.ProductNameEn); name != "" {
		return cases.Title(language.Und).String(name)
	}
	return ""
}

var _ Writer = (*StaticWriter)(nil)
