package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompatible(t *testing.T) {
	tests := []struct {
		name   string
		pref   Preference
		gender Gender
		want   bool
	}{
		{"male pref matches male", PreferenceMale, GenderMale, true},
		{"male pref rejects female", PreferenceMale, GenderFemale, false},
		{"male pref rejects non-binary", PreferenceMale, GenderNonBinary, false},
		{"female pref matches female", PreferenceFemale, GenderFemale, true},
		{"female pref rejects male", PreferenceFemale, GenderMale, false},
		{"bisexual pref accepts male", PreferenceBisexual, GenderMale, true},
		{"bisexual pref accepts female", PreferenceBisexual, GenderFemale, true},
		{"bisexual pref accepts non-binary", PreferenceBisexual, GenderNonBinary, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compatible(tt.pref, tt.gender))
		})
	}
}
