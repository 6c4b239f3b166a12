package matching

// Compatible reports whether a candidate's declared gender satisfies
// the requester's stated preference. The check is one-directional: it
// does not ask whether the candidate would also accept the requester.
// That asymmetry is deliberate and matches the product's browse
// behavior; making it mutual is a product decision, not a fix.
func Compatible(pref Preference, gender Gender) bool {
	if pref == PreferenceBisexual {
		return true
	}
	return string(pref) == string(gender)
}
