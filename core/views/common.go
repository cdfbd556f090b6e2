package views

import (
	"strings"

	"github.com/ismaell/regdel/internal/ledger"
)

// filterState carries the toggles shared by the query-backed views: the
// real-only flag and the commodity cycle. The candidate list is fetched once
// when the owning view is constructed.
type filterState struct {
	realOnly   bool
	commodity  string
	candidates []string
}

func (f *filterState) toggleReal() {
	f.realOnly = !f.realOnly
}

// cycle advances the commodity filter through the candidate list and back to
// "no filter" after the last candidate. Applying it len(candidates)+1 times
// returns the filter to its starting value.
func (f *filterState) cycle() {
	if len(f.candidates) == 0 {
		return
	}
	if f.commodity == "" {
		f.commodity = f.candidates[0]
		return
	}
	for i, c := range f.candidates {
		if c == f.commodity {
			if i+1 < len(f.candidates) {
				f.commodity = f.candidates[i+1]
			} else {
				f.commodity = ""
			}
			return
		}
	}
	f.commodity = ""
}

func (f filterState) apply(spec ledger.QuerySpec) ledger.QuerySpec {
	spec.RealOnly = f.realOnly
	spec.Commodity = f.commodity
	return spec
}

func (f filterState) line() string {
	parts := make([]string, 0, 2)
	if f.realOnly {
		parts = append(parts, "real only")
	}
	if f.commodity != "" {
		parts = append(parts, "commodity: "+f.commodity)
	}
	return strings.Join(parts, " · ")
}

// commodityOf extracts the commodity symbol of a rendered amount by stripping
// the numeric part. Works for prefix ("$1.00") and suffix ("1,00 EUR") forms.
func commodityOf(amount string) string {
	var b strings.Builder
	for _, r := range amount {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == ',' || r == '-' || r == '+' || r == ' ':
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
