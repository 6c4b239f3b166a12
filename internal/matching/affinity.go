package matching

// CommonTags counts the interest tags the candidate shares with the
// requester. Zero overlap never excludes a candidate, it only affects
// rank. The result is bounded by the size of the requester's set.
func CommonTags(requester TagSet, candidate []Tag) int {
	if len(requester) == 0 || len(candidate) == 0 {
		return 0
	}

	count := 0
	for _, tag := range candidate {
		if requester.Contains(tag.ID) {
			count++
		}
	}
	return count
}
