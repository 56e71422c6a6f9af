package domain

// Section names an optional page section whose visibility is derived from
// content presence rather than stored as a flag.
type Section string

const (
	SectionPoint1Extra2 Section = "point1Extra2"
	SectionPoint1Extra3 Section = "point1Extra3"
	SectionPoint2       Section = "point2"
	SectionPoint2Extra2 Section = "point2Extra2"
	SectionPoint2Extra3 Section = "point2Extra3"
	SectionPackage      Section = "package"
	SectionVideoInsert  Section = "videoInsert"
	SectionWatermark    Section = "watermark"
)

// Sections lists every derivable section in display order.
var Sections = []Section{
	SectionPoint1Extra2,
	SectionPoint1Extra3,
	SectionPoint2,
	SectionPoint2Extra2,
	SectionPoint2Extra3,
	SectionPackage,
	SectionVideoInsert,
	SectionWatermark,
}

// KnownSection reports whether s names a derivable section.
func KnownSection(s Section) bool {
	for _, known := range Sections {
		if known == s {
			return true
		}
	}
	return false
}

// SectionActive derives whether a section is visible. A section is active
// when any associated field is non-empty; the PendingValue sentinel counts.
// The explicit PackageEnabled toggle takes precedence when present.
func (d *ProductData) SectionActive(s Section) bool {
	switch s {
	case SectionPoint1Extra2:
		return SlotSet(d.Point1Image2) || SlotSet(d.AIPoint1Desc2)
	case SectionPoint1Extra3:
		return SlotSet(d.Point1Image3) || SlotSet(d.AIPoint1Desc3)
	case SectionPoint2:
		return SlotSet(d.Point2Image1) || SlotSet(d.Point2Image2) || SlotSet(d.Point2Image3) ||
			SlotSet(d.AIPoint2Desc) || SlotSet(d.AIPoint2Desc2) || SlotSet(d.AIPoint2Desc3)
	case SectionPoint2Extra2:
		return SlotSet(d.Point2Image2) || SlotSet(d.AIPoint2Desc2)
	case SectionPoint2Extra3:
		return SlotSet(d.Point2Image3) || SlotSet(d.AIPoint2Desc3)
	case SectionPackage:
		if d.PackageEnabled != nil {
			return *d.PackageEnabled
		}
		return SlotSet(d.PackageImage)
	case SectionVideoInsert:
		return SlotSet(d.VideoInsertImage)
	case SectionWatermark:
		return SlotSet(d.WatermarkImage)
	}
	return false
}

// ActiveSections returns the derived visibility of every section.
func (d *ProductData) ActiveSections() map[Section]bool {
	out := make(map[Section]bool, len(Sections))
	for _, s := range Sections {
		out[s] = d.SectionActive(s)
	}
	return out
}

// EnableSection marks a section visible by writing the sentinel into its
// leading field so the editor shows the input immediately.
func (d *ProductData) EnableSection(s Section) {
	switch s {
	case SectionPoint1Extra2:
		if !SlotSet(d.Point1Image2) {
			d.Point1Image2 = PendingValue
		}
	case SectionPoint1Extra3:
		if !SlotSet(d.Point1Image3) {
			d.Point1Image3 = PendingValue
		}
	case SectionPoint2:
		if !d.SectionActive(SectionPoint2) {
			d.Point2Image1 = PendingValue
		}
	case SectionPoint2Extra2:
		if !SlotSet(d.Point2Image2) {
			d.Point2Image2 = PendingValue
		}
	case SectionPoint2Extra3:
		if !SlotSet(d.Point2Image3) {
			d.Point2Image3 = PendingValue
		}
	case SectionPackage:
		enabled := true
		d.PackageEnabled = &enabled
		if !SlotSet(d.PackageImage) {
			d.PackageImage = PendingValue
		}
	case SectionVideoInsert:
		if !SlotSet(d.VideoInsertImage) {
			d.VideoInsertImage = PendingValue
		}
	case SectionWatermark:
		if !SlotSet(d.WatermarkImage) {
			d.WatermarkImage = PendingValue
		}
	}
}

// DisableSection clears every field associated with the section back to its
// natural empty value.
func (d *ProductData) DisableSection(s Section) {
	switch s {
	case SectionPoint1Extra2:
		d.Point1Image2 = ""
		d.AIPoint1Desc2 = ""
	case SectionPoint1Extra3:
		d.Point1Image3 = ""
		d.AIPoint1Desc3 = ""
	case SectionPoint2:
		d.Point2Image1 = ""
		d.Point2Image2 = ""
		d.Point2Image3 = ""
		d.AIPoint2Desc = ""
		d.AIPoint2Desc2 = ""
		d.AIPoint2Desc3 = ""
	case SectionPoint2Extra2:
		d.Point2Image2 = ""
		d.AIPoint2Desc2 = ""
	case SectionPoint2Extra3:
		d.Point2Image3 = ""
		d.AIPoint2Desc3 = ""
	case SectionPackage:
		enabled := false
		d.PackageEnabled = &enabled
		d.PackageImage = ""
		d.PackageLayout = nil
	case SectionVideoInsert:
		d.VideoInsertImage = ""
	case SectionWatermark:
		d.WatermarkImage = ""
		d.WatermarkSettings = nil
	}
}
