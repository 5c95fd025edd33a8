package overrides

import (
	"net/netip"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		host     string
		wantAddr string
		wantOK   bool
	}{
		{
			name:     "exact-match",
			config:   "foo.test=203.0.113.9",
			host:     "foo.test",
			wantAddr: "203.0.113.9",
			wantOK:   true,
		},
		{
			name:     "first-match-wins",
			config:   "a=1.1.1.1,a=2.2.2.2",
			host:     "a",
			wantAddr: "1.1.1.1",
			wantOK:   true,
		},
		{
			name:   "bad-literal-stops-scan",
			config: "a=not-an-ip,a=3.3.3.3",
			host:   "a",
			wantOK: false,
		},
		{
			name:     "wildcard-matches-subdomain",
			config:   "*.blocked.test=127.0.0.1",
			host:     "x.y.blocked.test",
			wantAddr: "127.0.0.1",
			wantOK:   true,
		},
		{
			name:   "wildcard-does-not-match-bare-domain",
			config: "*.example.com=10.0.0.1",
			host:   "example.com",
			wantOK: false,
		},
		{
			name:     "wildcard-is-byte-suffix-not-label-aware",
			config:   "*.example.com=10.0.0.1",
			host:     "evil-example.com.example.com",
			wantAddr: "10.0.0.1",
			wantOK:   true,
		},
		{
			name:     "entry-without-equals-skipped",
			config:   "garbage,foo.test=10.0.0.5",
			host:     "foo.test",
			wantAddr: "10.0.0.5",
			wantOK:   true,
		},
		{
			name:     "first-equals-splits-rest-is-literal",
			config:   "foo.test=10.0.0.5=junk",
			host:     "foo.test",
			wantOK:   false, // "10.0.0.5=junk" is not a valid literal
		},
		{
			name:   "empty-config",
			config: "",
			host:   "foo.test",
			wantOK: false,
		},
		{
			name:   "empty-host",
			config: "foo.test=10.0.0.5",
			host:   "",
			wantOK: false,
		},
		{
			name:   "no-matching-entry",
			config: "other.test=10.0.0.1",
			host:   "example.org",
			wantOK: false,
		},
		{
			name:   "ipv6-literal-rejected",
			config: "foo.test=::1",
			host:   "foo.test",
			wantOK: false,
		},
		{
			name:   "v4-mapped-literal-rejected",
			config: "foo.test=::ffff:10.0.0.5",
			host:   "foo.test",
			wantOK: false,
		},
		{
			name:     "case-sensitive",
			config:   "Foo.Test=10.0.0.5,foo.test=10.0.0.6",
			host:     "foo.test",
			wantAddr: "10.0.0.6",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, ok := Lookup(tt.config, tt.host)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q, %q) ok = %v, want %v", tt.config, tt.host, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			want := netip.MustParseAddr(tt.wantAddr)
			if addr != want {
				t.Errorf("Lookup(%q, %q) = %v, want %v", tt.config, tt.host, addr, want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern string
		host    string
		want    bool
	}{
		{"foo.test", "foo.test", true},
		{"foo.test", "bar.test", false},
		{"*.example.com", "foo.example.com", true},
		{"*.example.com", "a.b.example.com", true},
		{"*.example.com", "example.com", false},
		{"*.example.com", ".example.com", true},
		{"*", "anything", false},
		{"*x", "anything-x", false},
	}

	for _, tt := range tests {
		if got := Matches(tt.pattern, tt.host); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.host, got, tt.want)
		}
	}
}

func TestRules(t *testing.T) {
	rules := Rules("a=1.1.1.1,garbage,b=bad,*.c=2.2.2.2")
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, but got: %d", len(rules))
	}
	if rules[0].Pattern != "a" || rules[0].Addr != netip.MustParseAddr("1.1.1.1") {
		t.Errorf("unexpected first rule: %+v", rules[0])
	}
	if rules[1].Pattern != "*.c" || rules[1].Addr != netip.MustParseAddr("2.2.2.2") {
		t.Errorf("unexpected second rule: %+v", rules[1])
	}
}

func TestEnvTable(t *testing.T) {
	t.Setenv("TEST_SHIM_OVERRIDES", "foo.test=203.0.113.9")

	table := EnvTable{Var: "TEST_SHIM_OVERRIDES"}
	addr, ok := table.Lookup("foo.test")
	if !ok || addr != netip.MustParseAddr("203.0.113.9") {
		t.Fatalf("expected override from environment, got: %v, %v", addr, ok)
	}

	t.Setenv("TEST_SHIM_OVERRIDES", "")
	if _, ok := table.Lookup("foo.test"); ok {
		t.Error("expected no override after clearing the variable")
	}
}
