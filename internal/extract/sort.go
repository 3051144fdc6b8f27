package extract

import (
	"slices"
	"strings"

	"github.com/bft-labs/ipextractor/internal/domain"
)

// Sort returns addresses ordered ascending by their octets, so 10.0.0.9
// comes before 10.0.0.10. The input slice is not modified. Strings that do
// not parse as addresses sort first, in string order.
func Sort(addresses []string) []string {
	type keyed struct {
		s    string
		addr domain.Address
		ok   bool
	}

	keys := make([]keyed, len(addresses))
	for i, s := range addresses {
		a, ok := domain.ParseAddress(s)
		keys[i] = keyed{s: s, addr: a, ok: ok}
	}

	slices.SortFunc(keys, func(x, y keyed) int {
		switch {
		case x.ok != y.ok:
			if !x.ok {
				return -1
			}
			return 1
		case !x.ok:
			return strings.Compare(x.s, y.s)
		}
		if c := x.addr.Compare(y.addr); c != 0 {
			return c
		}
		return strings.Compare(x.s, y.s)
	})

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.s
	}
	return out
}
