package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidationKeys_SlugChangeEvictsBothSlugs(t *testing.T) {
	// A slug-changing update must evict the entry cached under the old slug,
	// or a lookup by that slug keeps serving the pre-update row until TTL.
	keys := invalidationKeys(7, "old-title", "new-title")

	assert.Contains(t, keys, "post:7")
	assert.Contains(t, keys, "post:slug:old-title")
	assert.Contains(t, keys, "post:slug:new-title")
}

func TestInvalidationKeys_UnchangedSlugNotDuplicated(t *testing.T) {
	keys := invalidationKeys(3, "same-slug", "same-slug")

	assert.Equal(t, []string{"post:3", "post:slug:same-slug"}, keys)
}

func TestInvalidationKeys_DeleteShape(t *testing.T) {
	keys := invalidationKeys(12, "doomed-post")

	assert.Equal(t, []string{"post:12", "post:slug:doomed-post"}, keys)
}
