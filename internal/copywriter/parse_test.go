package copywriter

import (
	"strings"
	"testing"
)

func TestParseTaggedExtractsEachBody(t *testing.T) {
	body := "[요약]\n첫 문장입니다. 둘째 문장입니다. 셋째 문장입니다.\n" +
		"[특징]\n메인 기능 설명입니다.\n" +
		"[포인트1]\n포인트 설명입니다."

	patch := ParseTagged(body)
	if len(patch) != 3 {
		t.Fatalf("patch has %d entries, want 3", len(patch))
	}
	if !strings.HasPrefix(patch[TagSummary], "첫 문장입니다.") {
		t.Fatalf("summary body = %q", patch[TagSummary])
	}
	if strings.Contains(patch[TagSummary], "[특징]") {
		t.Fatal("summary body ran past the next tag")
	}
	if patch[TagFeature] != "메인 기능 설명입니다." {
		t.Fatalf("feature body = %q", patch[TagFeature])
	}
}

func TestParseTaggedMissingTagLeftAbsent(t *testing.T) {
	patch := ParseTagged("[특징]\n본문")
	if _, ok := patch[TagSummary]; ok {
		t.Fatal("missing tag must be absent from the patch, not empty")
	}
	if _, ok := patch[TagPoint2]; ok {
		t.Fatal("missing tag must be absent from the patch, not empty")
	}
	if patch[TagFeature] != "본문" {
		t.Fatalf("feature body = %q", patch[TagFeature])
	}
}

func TestParseTaggedAnyOrder(t *testing.T) {
	body := "[포인트2]\n뒤쪽 섹션.\n[요약]\n앞쪽 섹션."
	patch := ParseTagged(body)
	if patch[TagPoint2] != "뒤쪽 섹션." {
		t.Fatalf("point2 body = %q", patch[TagPoint2])
	}
	if patch[TagSummary] != "앞쪽 섹션." {
		t.Fatalf("summary body = %q", patch[TagSummary])
	}
}

func TestParseTaggedExtensionTags(t *testing.T) {
	body := "[포인트1]\n기본.\n[포인트1-2]\n확장 둘.\n[포인트1-3]\n확장 셋."
	patch := ParseTagged(body)
	if patch[TagPoint1] != "기본." {
		t.Fatalf("point1 = %q", patch[TagPoint1])
	}
	if patch[TagPoint1Extra2] != "확장 둘." {
		t.Fatalf("point1-2 = %q", patch[TagPoint1Extra2])
	}
	if patch[TagPoint1Extra3] != "확장 셋." {
		t.Fatalf("point1-3 = %q", patch[TagPoint1Extra3])
	}
}

func TestParseTaggedIgnoresPreamble(t *testing.T) {
	patch := ParseTagged("알겠습니다. 요청하신 카피입니다.\n[요약]\n본문.")
	if patch[TagSummary] != "본문." {
		t.Fatalf("summary = %q", patch[TagSummary])
	}
	if len(patch) != 1 {
		t.Fatalf("patch has %d entries, want 1", len(patch))
	}
}

func TestReformatSentencePerLine(t *testing.T) {
	got := Reformat("첫 문장입니다. 둘째 문장입니다. 셋째 문장입니다.")
	want := "첫 문장입니다.\n둘째 문장입니다.\n셋째 문장입니다."
	if got != want {
		t.Fatalf("Reformat = %q, want %q", got, want)
	}
}

func TestReformatParagraphBeforeDiscourseMarker(t *testing.T) {
	got := Reformat("기본 설명입니다. 또한 추가 장점이 있습니다.")
	want := "기본 설명입니다.\n\n또한 추가 장점이 있습니다."
	if got != want {
		t.Fatalf("Reformat = %q, want %q", got, want)
	}
}

func TestReformatNoLeadingParagraphBreak(t *testing.T) {
	got := Reformat("특히 촉감이 뛰어납니다.")
	if strings.HasPrefix(got, "\n") {
		t.Fatalf("Reformat added a leading break: %q", got)
	}
}

func TestReformatEmpty(t *testing.T) {
	if got := Reformat("   \n  "); got != "" {
		t.Fatalf("Reformat(blank) = %q", got)
	}
}

func TestApplyPatchLeavesMissingFieldsUntouched(t *testing.T) {
	d := testProduct()
	d.AISummary = "기존 요약"
	d.AIPoint2Desc = "기존 포인트2"

	Patch{TagFeature: "새 특징"}.Apply(&d)

	if d.AIFeatureDesc != "새 특징" {
		t.Fatalf("AIFeatureDesc = %q", d.AIFeatureDesc)
	}
	if d.AISummary != "기존 요약" || d.AIPoint2Desc != "기존 포인트2" {
		t.Fatal("fields without a patched tag were modified")
	}
}
