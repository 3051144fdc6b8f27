package extract

import (
	"net/netip"

	"github.com/bft-labs/ipextractor/internal/domain"
)

// Verdict explains why a candidate was accepted or rejected.
type Verdict string

const (
	VerdictAccepted    Verdict = "accepted"
	VerdictInvalid     Verdict = "invalid"
	VerdictUnspecified Verdict = "unspecified"
	VerdictLoopback    Verdict = "loopback"
	VerdictLinkLocal   Verdict = "link_local"
	VerdictMulticast   Verdict = "multicast"
	VerdictPrivate     Verdict = "private"
	VerdictReserved    Verdict = "reserved"
)

// Special-use IPv4 blocks that are neither private nor loopback but are
// still never publicly routable.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

// IsValid reports whether candidate has exactly four dot-separated integer
// parts, each in [0,255].
func IsValid(candidate string) bool {
	_, ok := domain.ParseAddress(candidate)
	return ok
}

// IsPublic reports whether candidate parses as an IPv4 address outside every
// private, loopback, link-local, multicast and reserved block.
func IsPublic(candidate string) bool {
	return classifyAddr(candidate) == VerdictAccepted
}

// Accept is the combined gate: IsValid and IsPublic.
func Accept(candidate string) bool {
	return Classify(candidate) == VerdictAccepted
}

// Classify runs both checks and names the first one that fails.
func Classify(candidate string) Verdict {
	if !IsValid(candidate) {
		return VerdictInvalid
	}
	return classifyAddr(candidate)
}

func classifyAddr(candidate string) Verdict {
	ip, err := netip.ParseAddr(candidate)
	if err != nil || !ip.Is4() {
		return VerdictInvalid
	}

	switch {
	case ip.IsUnspecified():
		return VerdictUnspecified
	case ip.IsLoopback():
		return VerdictLoopback
	case ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast():
		return VerdictLinkLocal
	case ip.IsMulticast():
		return VerdictMulticast
	case ip.IsPrivate():
		return VerdictPrivate
	}

	for _, prefix := range reservedPrefixes {
		if prefix.Contains(ip) {
			return VerdictReserved
		}
	}

	return VerdictAccepted
}
