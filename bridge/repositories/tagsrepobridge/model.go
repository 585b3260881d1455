package tagsrepobridge

import "github.com/rsalas/taskdeck/core/repositories/tagsrepo"

// Tag is the HTTP response shape for a catalog tag.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarshalToBridge converts a core tag to the HTTP response shape.
func MarshalToBridge(tag tagsrepo.Tag) Tag {
	return Tag{
		ID:   tag.TagID,
		Name: tag.Name,
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(tags []tagsrepo.Tag) []Tag {
	bridgeTags := make([]Tag, len(tags))
	for i, tag := range tags {
		bridgeTags[i] = MarshalToBridge(tag)
	}
	return bridgeTags
}
