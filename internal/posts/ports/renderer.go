package ports

import "github.com/philly/arch-blog/postpage/internal/posts/domain"

// PostRenderer renders the unit for a single post.
type PostRenderer interface {
	RenderPost(post domain.Post) (string, error)
}
