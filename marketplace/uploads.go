package marketplace

import (
	"os"
	"path/filepath"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

var extensionsByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore writes uploaded images to disk under a single directory.
// Each Save generates a fresh filename and returns it, so the stored name
// travels with the call instead of living in handler state.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create upload directory")
	}
	return &ImageStore{dir: dir}, nil
}

// Save persists image bytes and returns the generated filename.
func (s *ImageStore) Save(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty upload body", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest)
	}

	ext, ok := extensionsByContentType[contentType]
	if !ok {
		return "", errors.New("unsupported image content type", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{
				"content_type": contentType,
			})
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to write upload")
	}

	return name, nil
}

// Remove deletes a stored image. Missing files are not an error; the
// record may reference an image that was already cleaned up.
func (s *ImageStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.CategoryInternal, "failed to remove upload")
	}
	return nil
}
