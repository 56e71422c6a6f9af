package export

import "image"

// Slice is one horizontal band of the rendered page.
type Slice struct {
	Top    int
	Height int
}

// SliceBounds splits a page of totalHeight around a region at [top,
// top+height). The result is top band, region band, and bottom band; the
// bottom band is omitted when the region reaches the end of the page.
// Non-empty slice heights always sum to totalHeight.
func SliceBounds(totalHeight, top, height int) []Slice {
	if totalHeight <= 0 {
		return nil
	}
	if top < 0 {
		height += top
		top = 0
	}
	if top > totalHeight {
		top = totalHeight
	}
	if top+height > totalHeight {
		height = totalHeight - top
	}
	if height < 0 {
		height = 0
	}

	var slices []Slice
	if top > 0 {
		slices = append(slices, Slice{Top: 0, Height: top})
	}
	slices = append(slices, Slice{Top: top, Height: height})
	if bottom := totalHeight - (top + height); bottom > 0 {
		slices = append(slices, Slice{Top: top + height, Height: bottom})
	}
	return slices
}

// crop returns the horizontal band [top, top+height) of src as a shared
// sub-image.
func crop(src *image.RGBA, s Slice) image.Image {
	b := src.Bounds()
	return src.SubImage(image.Rect(b.Min.X, b.Min.Y+s.Top, b.Max.X, b.Min.Y+s.Top+s.Height))
}
