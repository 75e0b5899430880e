package client

import (
	"bytes"
	"fmt"
	"image"

	// Formats the photo endpoint may serve.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/dmitrijs2005/animalspotter/internal/client/models"
)

// decodeImage turns a downloaded body into a displayable image.
func decodeImage(data []byte) (*models.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyBody
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return &models.Image{Data: data, Format: format, Image: img}, nil
}
