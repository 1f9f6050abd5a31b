package domain

import (
	"encoding/json"
	"errors"
)

// PostCollection is the ordered result of a single fetch. Order is kept from
// fetch to render; nothing here sorts, filters or deduplicates it.
type PostCollection []Post

// IDs returns the identity of every post, in order.
func (c PostCollection) IDs() []string {
	ids := make([]string, len(c))
	for i, p := range c {
		ids[i] = p.ID
	}
	return ids
}

// Validate reports the first element lacking an identity.
func (c PostCollection) Validate() error {
	for i, p := range c {
		if err := p.Validate(); err != nil {
			return withIndex(err, i)
		}
	}
	return nil
}

// MarshalJSON encodes an empty or nil collection as [].
func (c PostCollection) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Post(c))
}

// UnmarshalJSON runs the same validation as DecodeCollection.
func (c *PostCollection) UnmarshalJSON(data []byte) error {
	posts, err := DecodeCollection(data)
	if err != nil {
		return err
	}
	*c = posts
	return nil
}

// PropsPayload is the data handed from the static-props loader to the page.
type PropsPayload struct {
	Posts PostCollection `json:"posts"`
}

// NewPropsPayload wraps posts, turning nil into an empty collection.
func NewPropsPayload(posts PostCollection) PropsPayload {
	if posts == nil {
		posts = PostCollection{}
	}
	return PropsPayload{Posts: posts}
}

// StaticProps is the envelope returned to the host: {"props":{"posts":[...]}}.
type StaticProps struct {
	Props PropsPayload `json:"props"`
}

func withIndex(err error, index int) error {
	var se *ShapeError
	if errors.As(err, &se) {
		return &ShapeError{Index: index, Reason: se.Reason}
	}
	return err
}
