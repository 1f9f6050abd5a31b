package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Well-known content fields. None of them is required; only the identity is.
const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldContent     = "content"
	FieldExcerpt     = "excerpt"
	FieldAuthorName  = "author_name"
	FieldPublishedAt = "published_at"
)

// Post is an open blog post record: a stable identity plus whatever content
// fields the data source provides.
type Post struct {
	ID     string
	Fields map[string]any
}

// NewPost creates a post. The fields map is copied; an "id" entry is dropped
// in favour of id.
func NewPost(id string, fields map[string]any) Post {
	cp := make(map[string]any, len(fields))
	maps.Copy(cp, fields)
	delete(cp, "id")
	return Post{ID: id, Fields: cp}
}

// Validate checks the only structural requirement of a post.
func (p Post) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return shapeErr(-1, "post has no id")
	}
	return nil
}

// Field returns a raw field value.
func (p Post) Field(name string) (any, bool) {
	v, ok := p.Fields[name]
	return v, ok
}

// String returns a field rendered as text, or "" when absent.
func (p Post) String(name string) string {
	v, ok := p.Fields[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Time returns a timestamp field. Strings are parsed as RFC 3339.
func (p Post) Time(name string) (time.Time, bool) {
	switch t := p.Fields[name].(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// MarshalJSON flattens the identity and the content fields into one object.
func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+1)
	maps.Copy(out, p.Fields)
	out["id"] = p.ID
	return json.Marshal(out)
}

// UnmarshalJSON accepts any object with a string or numeric id.
func (p *Post) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return shapeErr(-1, "post is not an object: %v", err)
	}
	if raw == nil {
		return shapeErr(-1, "post is null")
	}

	id, err := identity(raw["id"])
	if err != nil {
		return err
	}
	delete(raw, "id")

	p.ID = id
	p.Fields = raw
	return nil
}

func identity(v any) (string, error) {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return "", shapeErr(-1, "post id is empty")
		}
		return t, nil
	case json.Number:
		return numericID(t), nil
	case nil:
		return "", shapeErr(-1, "post has no id")
	default:
		return "", shapeErr(-1, "post id has unsupported type %T", v)
	}
}

// numericID writes a numeric id in canonical decimal form, so 1, 1.0 and 1e0
// share one identity. Integer literals keep every digit.
func numericID(n json.Number) string {
	if i, ok := new(big.Int).SetString(n.String(), 10); ok {
		return i.String()
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
