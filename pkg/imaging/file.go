package imaging

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// ReadFile decodes a PNG or JPEG image from disk.
func ReadFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open image %s", path)
	}

	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode image %s", path)
	}

	return img, nil
}

// WriteFile encodes the image to disk, picking the format from the file
// extension.
func WriteFile(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create image %s", path)
	}

	defer func() {
		_ = file.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "extension %s", filepath.Ext(path))
	}

	if err != nil {
		return errors.Wrapf(err, "unable to encode image %s", path)
	}

	return nil
}
