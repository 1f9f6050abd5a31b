package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/philly/arch-blog/postpage/internal/posts/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost_CopiesFieldsAndDropsID(t *testing.T) {
	fields := map[string]any{"id": "ignored", "title": "A"}

	post := domain.NewPost("1", fields)
	fields["title"] = "mutated"

	assert.Equal(t, "1", post.ID)
	assert.Equal(t, "A", post.String(domain.FieldTitle))
	_, hasID := post.Field("id")
	assert.False(t, hasID)
}

func TestPost_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{name: "string id", input: `{"id":"a1","title":"A"}`, wantID: "a1"},
		{name: "numeric id", input: `{"id":42,"title":"A"}`, wantID: "42"},
		{name: "integral float id", input: `{"id":42.0}`, wantID: "42"},
		{name: "exponent id", input: `{"id":1e3}`, wantID: "1000"},
		{name: "negative zero id", input: `{"id":-0}`, wantID: "0"},
		{name: "fractional id", input: `{"id":1.50}`, wantID: "1.5"},
		{name: "integer beyond int64", input: `{"id":12345678901234567890123}`, wantID: "12345678901234567890123"},
		{name: "missing id", input: `{"title":"A"}`, wantErr: true},
		{name: "empty id", input: `{"id":"  "}`, wantErr: true},
		{name: "object id", input: `{"id":{"v":1}}`, wantErr: true},
		{name: "not an object", input: `["a"]`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var post domain.Post
			err := json.Unmarshal([]byte(tt.input), &post)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrShapeViolation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, post.ID)
		})
	}
}

func TestPost_KeepsExtraFields(t *testing.T) {
	var post domain.Post
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"A","reading_minutes":4,"tags":["go"]}`), &post))

	assert.Equal(t, "4", post.String("reading_minutes"))
	tags, ok := post.Field("tags")
	require.True(t, ok)
	assert.Equal(t, []any{"go"}, tags)

	out, err := json.Marshal(post)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","title":"A","reading_minutes":4,"tags":["go"]}`, string(out))
}

func TestPost_Time(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	post := domain.NewPost("1", map[string]any{
		"as_time":   ts,
		"as_string": "2024-05-01T12:00:00Z",
		"garbage":   "yesterday",
	})

	got, ok := post.Time("as_time")
	require.True(t, ok)
	assert.True(t, ts.Equal(got))

	got, ok = post.Time("as_string")
	require.True(t, ok)
	assert.True(t, ts.Equal(got))

	_, ok = post.Time("garbage")
	assert.False(t, ok)
	_, ok = post.Time("missing")
	assert.False(t, ok)
}
