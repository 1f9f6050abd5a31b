package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/philly/arch-blog/postpage/internal/posts/ports"
	"gopkg.in/yaml.v3"
)

// PostsFetcher reads the post collection from a JSON or YAML file. The file is
// re-read on every fetch.
type PostsFetcher struct {
	path string
}

// NewPostsFetcher creates a new file-backed posts fetcher
func NewPostsFetcher(path string) *PostsFetcher {
	return &PostsFetcher{path: path}
}

// FetchPosts implements ports.PostFetcher.
func (f *PostsFetcher) FetchPosts(ctx context.Context) (domain.PostCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %w", err)
	}

	if isYAML(f.path) {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("PostsFetcher.FetchPosts: %s: %w", f.path, err)
		}
	}

	posts, err := domain.DecodeCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("PostsFetcher.FetchPosts: %s: %w", f.path, err)
	}
	return posts, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// yamlToJSON re-encodes a YAML document as JSON so both formats go through the
// same shape validation. Timestamps become RFC 3339 strings.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml: %w", err)
	}
	return out, nil
}

var _ ports.PostFetcher = (*PostsFetcher)(nil)
