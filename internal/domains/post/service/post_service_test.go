package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/posttest"
)

func newTestService() (post.Service, *posttest.MemoryRepository) {
	repo := posttest.NewMemoryRepository()
	return NewPostService(repo), repo
}

func createPost(t *testing.T, svc post.Service, title, author string, published bool) *post.Post {
	t.Helper()
	created, err := svc.Create(context.Background(), &post.CreatePostRequest{
		Title:     title,
		Content:   "content",
		Author:    author,
		Published: published,
	})
	require.NoError(t, err)
	return created
}

func TestCreate_SlugFromTitle(t *testing.T) {
	svc, _ := newTestService()

	created := createPost(t, svc, "Hello World!", "alice", false)

	assert.Equal(t, "hello-world", created.Slug)
	assert.False(t, created.Published)
	assert.Nil(t, created.PublishedAt)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.Before(created.CreatedAt))
}

func TestCreate_DuplicateTitlesGetSuffixedSlugs(t *testing.T) {
	svc, _ := newTestService()

	first := createPost(t, svc, "Hello World", "alice", false)
	second := createPost(t, svc, "Hello World", "bob", false)
	third := createPost(t, svc, "Hello World", "carol", false)

	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "hello-world-1", second.Slug)
	assert.Equal(t, "hello-world-2", third.Slug)
}

func TestCreate_PublishedSetsPublishedAt(t *testing.T) {
	svc, _ := newTestService()

	before := time.Now()
	created := createPost(t, svc, "Launch", "alice", true)
	after := time.Now()

	require.NotNil(t, created.PublishedAt)
	assert.False(t, created.PublishedAt.Before(before))
	assert.False(t, created.PublishedAt.After(after))
}

func TestCreate_SymbolOnlyTitleFallsBack(t *testing.T) {
	svc, _ := newTestService()

	created := createPost(t, svc, "!!! ???", "alice", false)

	assert.True(t, strings.HasPrefix(created.Slug, "post-"))
	assert.Len(t, created.Slug, len("post-")+8)
}

func TestGet_ByIDAndBySlugReturnSameRow(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Findable", "alice", false)

	byID, err := svc.Get(ctx, &post.GetPostRequest{ID: &created.ID})
	require.NoError(t, err)
	require.NotNil(t, byID)

	bySlug, err := svc.Get(ctx, &post.GetPostRequest{Slug: &created.Slug})
	require.NoError(t, err)
	require.NotNil(t, bySlug)

	assert.Equal(t, byID.ID, bySlug.ID)
	assert.Equal(t, created.ID, byID.ID)
}

func TestGet_MissingReturnsNilWithoutError(t *testing.T) {
	svc, _ := newTestService()
	missing := 9999

	p, err := svc.Get(context.Background(), &post.GetPostRequest{ID: &missing})

	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestGet_RequiresIdentifier(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Get(context.Background(), &post.GetPostRequest{})

	assert.ErrorIs(t, err, post.ErrMissingIdentifier)
}

func TestList_FiltersAndOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	createPost(t, svc, "Draft by alice", "alice", false)
	createPost(t, svc, "Published by alice", "alice", true)
	createPost(t, svc, "Published by bob", "bob", true)

	published := true
	posts, err := svc.List(ctx, post.ListPostsFilter{Published: &published, Author: "alice", Limit: 10})
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.Equal(t, "Published by alice", posts[0].Title)

	all, err := svc.List(ctx, post.ListPostsFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "Published by bob", all[0].Title)
	assert.Equal(t, "Draft by alice", all[2].Title)
}

func TestList_PaginationHasNoGapsOrDuplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createPost(t, svc, "Post "+strings.Repeat("x", i+1), "alice", true)
	}

	seen := map[int]bool{}
	for offset := 0; offset < 5; offset += 2 {
		page, err := svc.List(ctx, post.ListPostsFilter{Limit: 2, Offset: offset})
		require.NoError(t, err)
		for _, p := range page {
			assert.False(t, seen[p.ID], "post %d returned twice", p.ID)
			seen[p.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestList_DefaultsApplied(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		createPost(t, svc, "Post "+strings.Repeat("y", i+1), "alice", false)
	}

	// Zero limit falls back to the default page size.
	page, err := svc.List(ctx, post.ListPostsFilter{})
	require.NoError(t, err)
	assert.Len(t, page, post.DefaultListLimit)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Original", "alice", false)

	content := "rewritten"
	updated, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{Content: &content})
	require.NoError(t, err)

	assert.Equal(t, "rewritten", updated.Content)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, created.Author, updated.Author)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdate_TitleRegeneratesSlug(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Old Title", "alice", false)

	title := "Brand New Title"
	updated, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "brand-new-title", updated.Slug)
}

func TestUpdate_SameTitleKeepsSlug(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Stable Title", "alice", false)

	// Re-submitting the same title must not grow a -1 suffix; the probe
	// excludes the post's own row.
	title := "Stable Title"
	updated, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "stable-title", updated.Slug)
}

func TestUpdate_TitleCollidingWithOtherPostGetsSuffix(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	createPost(t, svc, "Taken Title", "alice", false)
	other := createPost(t, svc, "Something Else", "bob", false)

	title := "Taken Title"
	updated, err := svc.Update(ctx, other.ID, &post.UpdatePostRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "taken-title-1", updated.Slug)
}

func TestUpdate_EmptyPartialStillRefreshesUpdatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Untouched", "alice", false)

	updated, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.Title, updated.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 9999, &post.UpdatePostRequest{})

	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestPublish_Lifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Lifecycle", "alice", false)
	require.Nil(t, created.PublishedAt)

	// Draft -> Published sets the timestamp.
	published, err := svc.Publish(ctx, created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// Published -> Published leaves it alone.
	republished, err := svc.Publish(ctx, created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.True(t, republished.PublishedAt.Equal(firstPublishedAt))
	assert.True(t, republished.UpdatedAt.After(published.UpdatedAt), "re-assert still refreshes updated_at")

	// Published -> Draft clears it.
	unpublished, err := svc.Publish(ctx, created.ID, false)
	require.NoError(t, err)
	assert.Nil(t, unpublished.PublishedAt)
	assert.False(t, unpublished.Published)

	// Draft -> Published again sets a fresh timestamp.
	again, err := svc.Publish(ctx, created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.False(t, again.PublishedAt.Before(firstPublishedAt))
}

func TestPublish_ViaUpdate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := createPost(t, svc, "Via Update", "alice", false)

	publishedFlag := true
	updated, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{Published: &publishedFlag})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Slug, updated.Slug)
	firstPublishedAt := *updated.PublishedAt

	// Repeating the same call leaves published_at unchanged.
	repeat, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{Published: &publishedFlag})
	require.NoError(t, err)
	require.NotNil(t, repeat.PublishedAt)
	assert.True(t, repeat.PublishedAt.Equal(firstPublishedAt))

	// published=false always clears it.
	publishedFlag = false
	cleared, err := svc.Update(ctx, created.ID, &post.UpdatePostRequest{Published: &publishedFlag})
	require.NoError(t, err)
	assert.Nil(t, cleared.PublishedAt)
}

func TestPublish_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Publish(context.Background(), 9999, true)

	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	keep := createPost(t, svc, "Keep", "alice", false)
	remove := createPost(t, svc, "Remove", "alice", false)

	require.NoError(t, svc.Delete(ctx, remove.ID))

	gone, err := svc.Get(ctx, &post.GetPostRequest{ID: &remove.ID})
	require.NoError(t, err)
	assert.Nil(t, gone)

	still, err := svc.Get(ctx, &post.GetPostRequest{ID: &keep.ID})
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.Equal(t, keep.ID, still.ID)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), 9999)

	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
