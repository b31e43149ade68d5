package s3

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register decoder

	"github.com/nfnt/resize"
)

const (
	GalleryWidth = 800
	jpegQuality  = 80
)

// ResizeJPEG decodes a PNG or JPEG, shrinks it to maxWidth keeping the aspect ratio
// and re-encodes it as JPEG. Images already narrower than maxWidth keep their size.
func ResizeJPEG(data []byte, maxWidth uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if uint(img.Bounds().Dx()) > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
