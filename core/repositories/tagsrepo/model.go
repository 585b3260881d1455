package tagsrepo

import "time"

// Tag is a global label that tasks can reference. The catalog is seeded by
// migration; this service only reads it.
type Tag struct {
	TagID     string    `db:"tag_id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
