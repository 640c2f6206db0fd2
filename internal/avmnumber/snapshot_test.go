package avmnumber

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFormatFloatSnapshots pins the exact textual output FormatFloat and its
// radix/fixed/exponential/precision variants produce for a spread of values,
// the same way the teacher's fixture tests pin interpreter output.
func TestFormatFloatSnapshots(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 123456.789, 1e21, 1e-7, 3.14159265358979}
	for _, v := range values {
		snaps.MatchSnapshot(t, fmt.Sprintf("format_%v", v), FormatFloat(v))
	}
}

func TestFormatIntRadixSnapshots(t *testing.T) {
	radixes := []int{2, 8, 16, 36}
	for _, r := range radixes {
		snaps.MatchSnapshot(t, fmt.Sprintf("radix_%d", r), FormatIntRadix(255, r))
	}
}

func TestToFixedToExponentialToPrecisionSnapshots(t *testing.T) {
	snaps.MatchSnapshot(t, "to_fixed", ToFixed(3.14159, 2))
	snaps.MatchSnapshot(t, "to_exponential", ToExponential(1234.5678, 3))
	snaps.MatchSnapshot(t, "to_precision", ToPrecision(1234.5678, 5))
}
