package util

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ImageFilename builds a collision-free name for an uploaded image:
// a slug of the owning record's title or name, a random UUID and the
// original extension.
func ImageFilename(base, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%s%s", slug.Make(base), uuid.NewString(), ext)
}
