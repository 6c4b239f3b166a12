package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonTags(t *testing.T) {
	// Requester likes vegan (1) and geek (2).
	requester := TagSet{1: {}, 2: {}}

	vegan := Tag{ID: 1, Slug: "vegan"}
	geek := Tag{ID: 2, Slug: "geek"}
	travel := Tag{ID: 3, Slug: "travel"}

	assert.Equal(t, 1, CommonTags(requester, []Tag{vegan, travel}))
	assert.Equal(t, 2, CommonTags(requester, []Tag{geek, vegan}))
	assert.Equal(t, 0, CommonTags(requester, []Tag{travel}))
	assert.Equal(t, 0, CommonTags(requester, nil))
	assert.Equal(t, 0, CommonTags(nil, []Tag{vegan}))
}

func TestCommonTagsBoundedByRequesterSet(t *testing.T) {
	requester := TagSet{1: {}}
	candidate := []Tag{{ID: 1, Slug: "vegan"}, {ID: 2, Slug: "geek"}, {ID: 3, Slug: "travel"}}

	got := CommonTags(requester, candidate)
	assert.LessOrEqual(t, got, len(requester))
	assert.Equal(t, 1, got)
}
