package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const collectionSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id"],
    "properties": {
      "id": {
        "anyOf": [
          {"type": "string", "minLength": 1},
          {"type": "number"}
        ]
      }
    }
  }
}`

var collectionSchema = jsonschema.MustCompileString("posts.schema.json", collectionSchemaJSON)

// DecodeCollection decodes a raw JSON array of posts. Anything that is not an
// array of objects carrying an id is a ShapeError; nothing is coerced.
func DecodeCollection(raw []byte) (PostCollection, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, shapeErr(-1, "malformed JSON: %v", err)
	}
	if err := collectionSchema.Validate(doc); err != nil {
		return nil, shapeErr(-1, "%s", strings.TrimSpace(err.Error()))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, shapeErr(-1, "not an array: %v", err)
	}

	posts := make(PostCollection, len(items))
	for i, item := range items {
		if err := posts[i].UnmarshalJSON(item); err != nil {
			return nil, withIndex(err, i)
		}
	}
	return posts, nil
}

// DecodeProps decodes a {"posts":[...]} document.
func DecodeProps(raw []byte) (PropsPayload, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var envelope struct {
		Posts json.RawMessage `json:"posts"`
	}
	if err := dec.Decode(&envelope); err != nil {
		return PropsPayload{}, shapeErr(-1, "props is not an object: %v", err)
	}
	if envelope.Posts == nil {
		return PropsPayload{}, shapeErr(-1, "props has no posts field")
	}

	posts, err := DecodeCollection(envelope.Posts)
	if err != nil {
		return PropsPayload{}, err
	}
	return NewPropsPayload(posts), nil
}
