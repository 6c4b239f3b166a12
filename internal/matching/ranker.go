package matching

import (
	"context"
	"fmt"
	"sort"
)

// Ranker produces the full ordered candidate list for a requester.
type Ranker interface {
	RankCandidates(ctx context.Context, requesterID int64) ([]*Candidate, error)
}

type ranker struct {
	repo Repository
}

func NewRanker(repo Repository) Ranker {
	return &ranker{repo: repo}
}

// RankCandidates loads the requester and the candidate pool, prunes
// the pool by visibility and compatibility, computes distance and tag
// overlap for each survivor and returns the sorted list. It holds no
// state of its own, so concurrent calls need no locking. Pagination is
// the caller's concern.
func (r *ranker) RankCandidates(ctx context.Context, requesterID int64) ([]*Candidate, error) {
	if requesterID <= 0 {
		return nil, ErrInvalidRequester
	}

	requester, err := r.repo.GetProfile(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	requesterTags, err := r.repo.GetTagSet(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("load requester tags: %w", err)
	}

	pool, err := r.repo.ListCandidatePool(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	candidates := make([]*Candidate, 0, len(pool))
	for _, profile := range pool {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := visible(ctx, r.repo, requesterID, profile.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if !Compatible(requester.SexPreference, profile.Gender) {
			continue
		}

		tags, err := r.repo.GetTags(ctx, profile.ID)
		if err != nil {
			return nil, err
		}

		candidate := &Candidate{
			ID:         profile.ID,
			Username:   profile.Username,
			Firstname:  profile.Firstname,
			Lastname:   profile.Lastname,
			Gender:     profile.Gender,
			Popularity: profile.Popularity,
			AvatarURL:  profile.AvatarURL,
			CommonTags: CommonTags(requesterTags, tags),
			Tags:       tagSlugs(tags),
		}

		if d, defined := ProfileDistance(requester, profile); defined {
			candidate.DistanceKm = &d
		}

		candidates = append(candidates, candidate)
	}

	sortCandidates(candidates)
	return candidates, nil
}

// sortCandidates orders by distance ascending with undefined distance
// after every defined one. Ties break on common tags descending, then
// popularity descending, then id ascending, so results are stable
// across calls regardless of pool order.
func sortCandidates(candidates []*Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := candidates[i].DistanceKm, candidates[j].DistanceKm

		switch {
		case di != nil && dj == nil:
			return true
		case di == nil && dj != nil:
			return false
		case di != nil && dj != nil && *di != *dj:
			return *di < *dj
		}

		if candidates[i].CommonTags != candidates[j].CommonTags {
			return candidates[i].CommonTags > candidates[j].CommonTags
		}
		if candidates[i].Popularity != candidates[j].Popularity {
			return candidates[i].Popularity > candidates[j].Popularity
		}
		return candidates[i].ID < candidates[j].ID
	})
}

func tagSlugs(tags []Tag) []string {
	slugs := make([]string, 0, len(tags))
	for _, tag := range tags {
		slugs = append(slugs, tag.Slug)
	}
	return slugs
}
