package models

import "image"

// Image is a decoded sighting photo. Data keeps the bytes exactly as served
// so callers can store them without re-encoding.
type Image struct {
	Data   []byte
	Format string
	Image  image.Image
}

// Size returns the pixel dimensions of the decoded image.
func (i *Image) Size() (width, height int) {
	if i == nil || i.Image == nil {
		return 0, 0
	}
	b := i.Image.Bounds()
	return b.Dx(), b.Dy()
}
