package matching

import "math"

// earthRadiusKm is the mean Earth radius used by the distance formula.
const earthRadiusKm = 6371

// DistanceKm computes the great-circle distance in kilometers between
// two points given in decimal degrees, using the spherical law of
// cosines. The cosine argument is clamped to [-1, 1] so that rounding
// on coincident or antipodal points can never produce NaN.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	arg := math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(dlon) +
		math.Sin(rlat1)*math.Sin(rlat2)

	// Mandatory clamp: without it acos can receive 1.0000000000000002.
	arg = math.Min(1, math.Max(-1, arg))

	return earthRadiusKm * math.Acos(arg)
}

// ProfileDistance returns the distance between two profiles. The
// second return value is false when either profile has no coordinates;
// callers must treat that as "undefined", never as zero.
func ProfileDistance(a, b *Profile) (float64, bool) {
	if !a.HasLocation() || !b.HasLocation() {
		return 0, false
	}
	return DistanceKm(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude), true
}
