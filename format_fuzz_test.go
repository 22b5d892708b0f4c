package decalc_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/decalc/decalc"
)

func FuzzFormatFull(f *testing.F) {
	f.Add(0.0)
	f.Add(2.0)
	f.Add(1e20)
	f.Add(-1e-20)
	f.Add(math.MaxFloat64)
	f.Add(5e-324)
	f.Fuzz(func(t *testing.T, x float64) {
		s := decalc.FormatFull(x)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return
		}
		if strings.ContainsAny(s, "eE") {
			t.Errorf("formatting %v: exponent marker in %q", x, s)
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			t.Errorf("formatting %v: unparseable result %q: %v", x, s, err)
		}
		if s != decalc.FormatFull(x) {
			t.Errorf("formatting %v: not deterministic", x)
		}
	})
}
