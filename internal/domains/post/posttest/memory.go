// Package posttest provides an in-memory post.Repository for tests.
package posttest

import (
	"context"
	"sort"
	"sync"
	"time"

	"blog-backend/internal/domains/post"
)

// MemoryRepository mirrors the semantics of the postgres repository closely
// enough for service and handler tests: serial ids, database-side timestamp
// refresh on update, not-found sentinels and slug existence probing.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int
	seq    int
	posts  map[int]*post.Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		posts:  make(map[int]*post.Post),
	}
}

// tick returns strictly increasing timestamps so created_at ordering is
// deterministic even when rows are inserted within the same nanosecond.
func (m *MemoryRepository) tick() time.Time {
	m.seq++
	return time.Now().Add(time.Duration(m.seq) * time.Nanosecond)
}

func (m *MemoryRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.posts {
		if existing.Slug == p.Slug {
			return nil, post.ErrDuplicateSlug
		}
	}

	created := *p
	created.ID = m.nextID
	m.nextID++
	now := m.tick()
	created.CreatedAt = now
	created.UpdatedAt = now

	m.posts[created.ID] = &created
	result := created
	return &result, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id int) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	result := *p
	return &result, nil
}

func (m *MemoryRepository) GetBySlug(_ context.Context, slug string) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.Slug == slug {
			result := *p
			return &result, nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (m *MemoryRepository) GetByIDOrSlug(_ context.Context, id *int, slug *string) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == nil && slug == nil {
		return nil, post.ErrMissingIdentifier
	}

	ids := make([]int, 0, len(m.posts))
	for k := range m.posts {
		ids = append(ids, k)
	}
	sort.Ints(ids)

	for _, k := range ids {
		p := m.posts[k]
		if id != nil && p.ID == *id {
			result := *p
			return &result, nil
		}
		if slug != nil && p.Slug == *slug {
			result := *p
			return &result, nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (m *MemoryRepository) List(_ context.Context, filter post.ListPostsFilter) ([]post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []post.Post{}
	for _, p := range m.posts {
		if filter.Published != nil && p.Published != *filter.Published {
			continue
		}
		if filter.Author != "" && p.Author != filter.Author {
			continue
		}
		matched = append(matched, *p)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset >= len(matched) {
		return []post.Post{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (m *MemoryRepository) Update(_ context.Context, p *post.Post) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.posts[p.ID]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	for _, existing := range m.posts {
		if existing.ID != p.ID && existing.Slug == p.Slug {
			return nil, post.ErrDuplicateSlug
		}
	}

	updated := *p
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = m.tick()

	m.posts[p.ID] = &updated
	result := updated
	return &result, nil
}

func (m *MemoryRepository) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *MemoryRepository) ExistsBySlug(_ context.Context, slug string, excludeID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID != excludeID && p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}
