package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory data-access port for ranker tests.
type fakeRepo struct {
	profiles map[int64]*Profile
	tags     map[int64][]Tag
	blocks   [][2]int64
	reports  [][2]int64

	failWith error
}

func (f *fakeRepo) GetProfile(ctx context.Context, id int64) (*Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, ErrRequesterNotFound
	}
	return p, nil
}

func (f *fakeRepo) ListCandidatePool(ctx context.Context, excludeID int64) ([]*Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var pool []*Profile
	for _, p := range f.profiles {
		if p.ID != excludeID {
			pool = append(pool, p)
		}
	}
	return pool, nil
}

func (f *fakeRepo) IsBlockedEitherDirection(ctx context.Context, a, b int64) (bool, error) {
	return f.hasEdge(f.blocks, a, b), nil
}

func (f *fakeRepo) IsReportedEitherDirection(ctx context.Context, a, b int64) (bool, error) {
	return f.hasEdge(f.reports, a, b), nil
}

func (f *fakeRepo) hasEdge(edges [][2]int64, a, b int64) bool {
	for _, e := range edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) GetTagSet(ctx context.Context, userID int64) (TagSet, error) {
	set := make(TagSet)
	for _, tag := range f.tags[userID] {
		set[tag.ID] = struct{}{}
	}
	return set, nil
}

func (f *fakeRepo) GetTags(ctx context.Context, userID int64) ([]Tag, error) {
	return f.tags[userID], nil
}

func located(id int64, gender Gender, pref Preference, lat, lon float64) *Profile {
	return &Profile{
		ID:            id,
		Username:      "user" + string(rune('a'+id)),
		Gender:        gender,
		SexPreference: pref,
		Latitude:      &lat,
		Longitude:     &lon,
	}
}

func unlocated(id int64, gender Gender, pref Preference) *Profile {
	return &Profile{ID: id, Gender: gender, SexPreference: pref}
}

func newFakeRepo(profiles ...*Profile) *fakeRepo {
	repo := &fakeRepo{
		profiles: make(map[int64]*Profile),
		tags:     make(map[int64][]Tag),
	}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func TestRankCandidatesInvalidRequester(t *testing.T) {
	r := NewRanker(newFakeRepo())

	_, err := r.RankCandidates(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidRequester)

	_, err = r.RankCandidates(context.Background(), -5)
	assert.ErrorIs(t, err, ErrInvalidRequester)
}

func TestRankCandidatesRequesterNotFound(t *testing.T) {
	r := NewRanker(newFakeRepo())

	_, err := r.RankCandidates(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRequesterNotFound)
}

func TestRankCandidatesExcludesBlockedAndReported(t *testing.T) {
	// Requester in Paris, everyone else close by and compatible.
	requester := located(1, GenderFemale, PreferenceMale, 48.8566, 2.3522)
	blockedByMe := located(2, GenderMale, PreferenceFemale, 48.86, 2.35)
	blockedMe := located(3, GenderMale, PreferenceFemale, 48.86, 2.35)
	reported := located(4, GenderMale, PreferenceFemale, 48.86, 2.35)
	reportedMe := located(5, GenderMale, PreferenceFemale, 48.86, 2.35)
	clean := located(6, GenderMale, PreferenceFemale, 48.86, 2.35)

	repo := newFakeRepo(requester, blockedByMe, blockedMe, reported, reportedMe, clean)
	repo.blocks = [][2]int64{{1, 2}, {3, 1}}
	repo.reports = [][2]int64{{1, 4}, {5, 1}}

	got, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, int64(6), got[0].ID)
}

func TestRankCandidatesFiltersByPreference(t *testing.T) {
	requester := located(1, GenderFemale, PreferenceMale, 48.8566, 2.3522)
	man := located(2, GenderMale, PreferenceFemale, 48.86, 2.35)
	woman := located(3, GenderFemale, PreferenceMale, 48.86, 2.35)
	enby := located(4, GenderNonBinary, PreferenceBisexual, 48.86, 2.35)

	repo := newFakeRepo(requester, man, woman, enby)

	got, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestRankCandidatesBisexualSeesEveryone(t *testing.T) {
	requester := located(1, GenderFemale, PreferenceBisexual, 48.8566, 2.3522)
	man := located(2, GenderMale, PreferenceFemale, 48.86, 2.35)
	woman := located(3, GenderFemale, PreferenceMale, 48.86, 2.35)
	enby := located(4, GenderNonBinary, PreferenceBisexual, 48.86, 2.35)

	repo := newFakeRepo(requester, man, woman, enby)

	got, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRankCandidatesSortsByDistanceThenTieBreaks(t *testing.T) {
	requester := located(1, GenderMale, PreferenceFemale, 48.8566, 2.3522) // Paris
	london := located(2, GenderFemale, PreferenceMale, 51.5074, -0.1278)
	lyon := located(3, GenderFemale, PreferenceMale, 45.7640, 4.8357)
	nowhere := unlocated(4, GenderFemale, PreferenceMale)

	repo := newFakeRepo(requester, london, lyon, nowhere)

	got, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Lyon is closer to Paris than London; the unlocated profile comes
	// last with no distance at all.
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(4), got[2].ID)
	assert.Nil(t, got[2].DistanceKm)

	// Adjacent defined distances are non-decreasing.
	require.NotNil(t, got[0].DistanceKm)
	require.NotNil(t, got[1].DistanceKm)
	assert.LessOrEqual(t, *got[0].DistanceKm, *got[1].DistanceKm)
}

func TestRankCandidatesTieBreakOnTagsPopularityID(t *testing.T) {
	// All candidates share the requester's exact position, so every
	// distance ties at zero and only the secondary keys order them.
	requester := located(1, GenderMale, PreferenceFemale, 48.8566, 2.3522)
	fewTags := located(2, GenderFemale, PreferenceMale, 48.8566, 2.3522)
	manyTags := located(3, GenderFemale, PreferenceMale, 48.8566, 2.3522)
	popular := located(4, GenderFemale, PreferenceMale, 48.8566, 2.3522)
	plain := located(5, GenderFemale, PreferenceMale, 48.8566, 2.3522)
	popular.Popularity = 50

	repo := newFakeRepo(requester, fewTags, manyTags, popular, plain)
	repo.tags[1] = []Tag{{ID: 10, Slug: "vegan"}, {ID: 11, Slug: "geek"}}
	repo.tags[2] = []Tag{{ID: 10, Slug: "vegan"}}
	repo.tags[3] = []Tag{{ID: 10, Slug: "vegan"}, {ID: 11, Slug: "geek"}}

	got, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 4)

	// Most shared tags first, then higher popularity, then lower id.
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(4), got[2].ID)
	assert.Equal(t, int64(5), got[3].ID)
}

func TestRankCandidatesZeroOverlapStillIncluded(t *testing.T) {
	requester := located(1, GenderMale, PreferenceFemale, 48.8566, 2.3522)
	candidate := located(2, GenderFemale, PreferenceMale, 48.86, 2.35)

	repo := newFakeRepo(requester, candidate)
	repo.tags[1] = []Tag{{ID: 10, Slug: "vegan"}}
	repo.tags[2] = []Tag{{ID: 20, Slug: "travel"}}

	got, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].CommonTags)
	assert.Equal(t, []string{"travel"}, got[0].Tags)
}

func TestRankCandidatesPropagatesStorageErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("connection refused")

	_, err := NewRanker(repo).RankCandidates(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequesterNotFound)
}

func TestRankCandidatesStopsOnCanceledContext(t *testing.T) {
	requester := located(1, GenderMale, PreferenceFemale, 48.8566, 2.3522)
	candidate := located(2, GenderFemale, PreferenceMale, 48.86, 2.35)
	repo := newFakeRepo(requester, candidate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRanker(repo).RankCandidates(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
