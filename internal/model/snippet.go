// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// Snippet represents one saved block of text.
// The `json:"..."` tags tell Go's encoding/json package how to serialize/deserialize
// this struct to/from JSON. This is called a "struct tag" — metadata attached to fields.
//
// CreatedAt is captured once when the snippet is created and never changes.
// Saving a new snippet under the same name replaces the whole struct,
// timestamp included — there is no in-place update.
//
// time.Time marshals to an RFC 3339 string by default, which is exactly the
// on-disk format the JSON backend wants, so no custom MarshalJSON is needed.
type Snippet struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Collection is the full name → Snippet mapping. It is the unit of
// persistence: storage backends always load and save a whole Collection,
// never a single entry.
type Collection map[string]Snippet
