package matching

import "context"

// visible reports whether two users may see each other. A block or a
// report in either direction hides the pair completely. This runs
// before any scoring so hidden candidates are never even scored.
func visible(ctx context.Context, repo Repository, a, b int64) (bool, error) {
	blocked, err := repo.IsBlockedEitherDirection(ctx, a, b)
	if err != nil {
		return false, err
	}
	if blocked {
		return false, nil
	}

	reported, err := repo.IsReportedEitherDirection(ctx, a, b)
	if err != nil {
		return false, err
	}
	return !reported, nil
}
