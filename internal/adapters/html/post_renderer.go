package html

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/philly/arch-blog/postpage/internal/platform/validator"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
)

// MaxSlugLength bounds generated permalink slugs.
const MaxSlugLength = 250

const postTemplate = `<article class="post" data-key="{{.Key}}" id="post-{{.Slug}}">
  <h2 class="post-title"><a href="{{.Href}}">{{.Title}}</a></h2>
{{- if .PublishedAt}}
  <time class="post-date" datetime="{{.PublishedAt}}">{{.PublishedLabel}}</time>
{{- end}}
{{- if .Author}}
  <p class="post-author">{{.Author}}</p>
{{- end}}
{{- if .Excerpt}}
  <p class="post-excerpt">{{.Excerpt}}</p>
{{- end}}
{{- if .Content}}
  <div class="post-content">{{.Content}}</div>
{{- end}}
</article>`

type postView struct {
	Key            string
	Slug           string
	Href           string
	Title          string
	PublishedAt    string
	PublishedLabel string
	Author         string
	Excerpt        string
	Content        template.HTML
}

// PermalinkPrefix is the URL path under which posts are published elsewhere,
// e.g. "/posts" or "https://blog.example.com/posts". When empty, titles link
// to their own article on the page.
type PermalinkPrefix string

func (p PermalinkPrefix) href(slug string) string {
	if p == "" {
		return "#post-" + slug
	}
	return strings.TrimRight(string(p), "/") + "/" + url.PathEscape(slug)
}

// PostRenderer renders a single post as an <article> unit carrying the post's
// identity in data-key.
type PostRenderer struct {
	tmpl      *template.Template
	sanitizer *bluemonday.Policy
	permalink PermalinkPrefix
}

// NewPostRenderer creates a new post renderer
func NewPostRenderer(permalink PermalinkPrefix) *PostRenderer {
	return &PostRenderer{
		tmpl:      template.Must(template.New("post").Parse(postTemplate)),
		sanitizer: bluemonday.UGCPolicy(),
		permalink: permalink,
	}
}

// RenderPost implements ports.PostRenderer.
func (r *PostRenderer) RenderPost(post domain.Post) (string, error) {
	title := post.String(domain.FieldTitle)
	slug := validator.PermalinkSlug(post.String(domain.FieldSlug), title, MaxSlugLength)
	if slug == "" {
		slug = validator.GenerateSlug(post.ID, MaxSlugLength)
	}
	if slug == "" {
		slug = "post"
	}
	if title == "" {
		title = "Untitled"
	}

	view := postView{
		Key:     post.ID,
		Slug:    slug,
		Href:    r.permalink.href(slug),
		Title:   title,
		Author:  post.String(domain.FieldAuthorName),
		Excerpt: post.String(domain.FieldExcerpt),
		Content: template.HTML(r.sanitizer.Sanitize(post.String(domain.FieldContent))),
	}
	if ts, ok := post.Time(domain.FieldPublishedAt); ok {
		view.PublishedAt = ts.UTC().Format(time.RFC3339)
		view.PublishedLabel = ts.UTC().Format("January 2, 2006")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("PostRenderer.RenderPost: %w", err)
	}
	return buf.String(), nil
}

var _ ports.PostRenderer = (*PostRenderer)(nil)
