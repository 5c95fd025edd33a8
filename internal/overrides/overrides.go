// Package overrides matches hostnames against an operator-supplied override
// table of the form "pattern1=ip1,pattern2=ip2,...". A pattern is either an
// exact hostname or a wildcard "*.suffix". The table is re-evaluated on every
// lookup; nothing here reads the process environment or keeps state.
package overrides

import (
	"net/netip"
	"os"
	"strings"
)

// A Rule maps a hostname pattern to a fixed IPv4 address that takes
// precedence over normal resolution.
type Rule struct {
	Pattern string     `json:"pattern"`
	Addr    netip.Addr `json:"addr"`
}

// Lookup scans config left to right and reports the address of the first
// entry whose pattern matches host.
//
// Scanning stops at the first pattern match even when its address literal
// does not parse; the lookup then reports no override, regardless of any
// later matching entry. Entries without '=' are skipped. An empty config or
// host never matches.
func Lookup(config, host string) (netip.Addr, bool) {
	if config == "" || host == "" {
		return netip.Addr{}, false
	}

	for _, entry := range strings.Split(config, ",") {
		pattern, literal, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if Matches(pattern, host) {
			return parseIPv4(literal)
		}
	}

	return netip.Addr{}, false
}

// Matches reports whether host matches pattern: byte-for-byte equality, or
// for a "*.suffix" pattern, host ending in the literal bytes ".suffix".
// The suffix test is not domain-aware: "example.com" does not match
// "*.example.com", while "a.example.com" does.
func Matches(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if len(pattern) > 1 && pattern[0] == '*' && pattern[1] == '.' {
		return strings.HasSuffix(host, pattern[1:])
	}
	return false
}

// Rules parses config into its valid (pattern, address) pairs, preserving
// order. Entries without '=' or with a bad literal are dropped. Intended for
// inspection surfaces; the lookup path never materializes this slice.
func Rules(config string) []Rule {
	rules := make([]Rule, 0)
	for _, entry := range strings.Split(config, ",") {
		pattern, literal, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		addr, ok := parseIPv4(literal)
		if !ok {
			continue
		}
		rules = append(rules, Rule{Pattern: pattern, Addr: addr})
	}
	return rules
}

// Overrides are IPv4-only: IPv6 and v4-mapped literals count as unparsable.
func parseIPv4(literal string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(literal)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, false
	}
	return addr, true
}

// EnvTable binds Lookup to an environment variable, read fresh on every
// call so table changes take effect without a restart.
type EnvTable struct {
	Var string
}

func (t EnvTable) Lookup(host string) (netip.Addr, bool) {
	return Lookup(os.Getenv(t.Var), host)
}
