package application

import (
	"context"
	"fmt"

	"github.com/philly/arch-blog/postpage/internal/platform/logger"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// RenderedPost is one rendered unit, addressable by the identity of the post
// it came from.
type RenderedPost struct {
	Key  string
	HTML string
}

// Keys returns the identity-key sequence of rendered units.
func Keys(units []RenderedPost) []string {
	keys := make([]string, len(units))
	for i, u := range units {
		keys[i] = u.Key
	}
	return keys
}

// PostListPage maps a post collection to rendered units, one per post, in
// input order.
type PostListPage struct {
	renderer ports.PostRenderer
	logger   logger.Logger
}

// NewPostListPage creates a new post list page
func NewPostListPage(renderer ports.PostRenderer, logger logger.Logger) *PostListPage {
	return &PostListPage{
		renderer: renderer,
		logger:   logger,
	}
}

// Render produces len(payload.Posts) units keyed by post ID. The collection is
// checked before anything is rendered: a post without an ID fails the whole
// render. Duplicate IDs are not checked and each still gets its own unit.
func (p *PostListPage) Render(ctx context.Context, payload domain.PropsPayload) ([]RenderedPost, error) {
	if err := payload.Posts.Validate(); err != nil {
		return nil, wrap(ErrShapeViolation, err)
	}

	units := make([]RenderedPost, 0, len(payload.Posts))
	for i, post := range payload.Posts {
		html, err := p.renderer.RenderPost(post)
		if err != nil {
			return nil, wrap(ErrRenderFailed, fmt.Errorf("post %d (id %q): %w", i, post.ID, err))
		}
		units = append(units, RenderedPost{Key: post.ID, HTML: html})
	}

	p.logger.Debug(ctx, "rendered post list", "unit_count", len(units))
	return units, nil
}

// Page is the two-phase contract a host drives: LoadData once per cycle, then
// Render with the payload it returned. Calls share no state.
type Page struct {
	loader *StaticPropsLoader
	list   *PostListPage
}

// NewPage creates a new page from its two halves
func NewPage(loader *StaticPropsLoader, list *PostListPage) *Page {
	return &Page{
		loader: loader,
		list:   list,
	}
}

// LoadData runs the static-props loader.
func (p *Page) LoadData(ctx context.Context) (*domain.StaticProps, error) {
	return p.loader.LoadStaticProps(ctx)
}

// Render renders the post list for payload. ctx only scopes logging.
func (p *Page) Render(ctx context.Context, payload domain.PropsPayload) ([]RenderedPost, error) {
	return p.list.Render(ctx, payload)
}
