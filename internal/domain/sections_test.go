package domain

import "testing"

func TestPoint2InactiveWhenAllFieldsEmpty(t *testing.T) {
	d := DefaultProductData()
	if d.SectionActive(SectionPoint2) {
		t.Fatal("point2 must be inactive with all fields empty")
	}
}

func TestPoint2ActivatesFromAnyAssociatedField(t *testing.T) {
	set := []func(*ProductData){
		func(d *ProductData) { d.Point2Image1 = PendingValue },
		func(d *ProductData) { d.Point2Image2 = "data:image/png;base64,AAAA" },
		func(d *ProductData) { d.Point2Image3 = PendingValue },
		func(d *ProductData) { d.AIPoint2Desc = "설명" },
		func(d *ProductData) { d.AIPoint2Desc2 = PendingValue },
		func(d *ProductData) { d.AIPoint2Desc3 = "추가 설명" },
	}
	for i, apply := range set {
		d := DefaultProductData()
		apply(&d)
		if !d.SectionActive(SectionPoint2) {
			t.Fatalf("field %d should activate point2", i)
		}
	}
}

func TestSentinelActivatesEveryOptionalSection(t *testing.T) {
	cases := []struct {
		section Section
		apply   func(*ProductData)
	}{
		{SectionPoint1Extra2, func(d *ProductData) { d.Point1Image2 = PendingValue }},
		{SectionPoint1Extra3, func(d *ProductData) { d.AIPoint1Desc3 = PendingValue }},
		{SectionPoint2, func(d *ProductData) { d.Point2Image1 = PendingValue }},
		{SectionPoint2Extra2, func(d *ProductData) { d.AIPoint2Desc2 = PendingValue }},
		{SectionPoint2Extra3, func(d *ProductData) { d.Point2Image3 = PendingValue }},
		{SectionVideoInsert, func(d *ProductData) { d.VideoInsertImage = PendingValue }},
		{SectionWatermark, func(d *ProductData) { d.WatermarkImage = PendingValue }},
	}
	for _, tc := range cases {
		d := DefaultProductData()
		tc.apply(&d)
		if !d.SectionActive(tc.section) {
			t.Fatalf("%s: sentinel should mark section active", tc.section)
		}
	}
}

func TestPackageToggleTakesPrecedence(t *testing.T) {
	d := DefaultProductData()
	d.PackageImage = "data:image/png;base64,AAAA"
	disabled := false
	d.PackageEnabled = &disabled
	if d.SectionActive(SectionPackage) {
		t.Fatal("explicit toggle must override derived state")
	}

	d = DefaultProductData()
	enabled := true
	d.PackageEnabled = &enabled
	if !d.SectionActive(SectionPackage) {
		t.Fatal("explicit toggle must enable package without an image")
	}

	d = DefaultProductData()
	d.PackageImage = PendingValue
	if !d.SectionActive(SectionPackage) {
		t.Fatal("derived state must apply when no toggle is set")
	}
}

func TestEnableSectionSetsSentinelOnce(t *testing.T) {
	d := DefaultProductData()
	d.EnableSection(SectionPoint2)
	if d.Point2Image1 != PendingValue {
		t.Fatalf("Point2Image1 = %q, want sentinel", d.Point2Image1)
	}

	// Enabling an already-active section must not clobber real data.
	d.Point2Image1 = "data:image/png;base64,AAAA"
	d.EnableSection(SectionPoint2)
	if d.Point2Image1 != "data:image/png;base64,AAAA" {
		t.Fatalf("enable overwrote populated slot: %q", d.Point2Image1)
	}
}

func TestDisableSectionClearsAllAssociatedFields(t *testing.T) {
	d := DefaultProductData()
	d.Point2Image1 = "data:image/png;base64,AAAA"
	d.Point2Image2 = PendingValue
	d.AIPoint2Desc = "본문"
	d.AIPoint2Desc3 = "추가"

	d.DisableSection(SectionPoint2)
	if d.SectionActive(SectionPoint2) {
		t.Fatal("point2 still active after disable")
	}
	if d.Point2Image1 != "" || d.Point2Image2 != "" || d.AIPoint2Desc != "" || d.AIPoint2Desc3 != "" {
		t.Fatal("disable left residual field values")
	}
}

func TestDisableWatermarkDropsSettings(t *testing.T) {
	d := DefaultProductData()
	d.WatermarkImage = "data:image/png;base64,AAAA"
	d.WatermarkSettings = map[string]WatermarkSetting{
		string(SlotMain): {Visible: true},
	}
	d.DisableSection(SectionWatermark)
	if d.WatermarkImage != "" || d.WatermarkSettings != nil {
		t.Fatal("watermark disable must clear image and settings")
	}
}

func TestActiveSectionsCoversAllSections(t *testing.T) {
	d := DefaultProductData()
	active := d.ActiveSections()
	if len(active) != len(Sections) {
		t.Fatalf("ActiveSections returned %d entries, want %d", len(active), len(Sections))
	}
	for s, on := range active {
		if on {
			t.Fatalf("%s active on default state", s)
		}
	}
}

func TestKnownSection(t *testing.T) {
	if !KnownSection(SectionPoint2) {
		t.Fatal("point2 should be known")
	}
	if KnownSection("hero") {
		t.Fatal("hero is not a derivable section")
	}
}
