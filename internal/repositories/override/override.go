// Package override keeps the runtime override rules added through the admin
// API. These sit in front of the environment table and vanish on restart.
package override

import (
	"errors"
	"fmt"
	"net/netip"
	"slices"
	"strings"

	"github.com/vitistack/resolver-shim/internal/overrides"
	"github.com/vitistack/resolver-shim/pkg/persistence"
)

var ErrInvalidRule = errors.New("override rule must have a pattern and an IPv4 address")

type Repository struct {
	store persistence.Store[overrides.Rule]
}

func NewRepository(store persistence.Store[overrides.Rule]) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) Create(rule overrides.Rule) error {
	if rule.Pattern == "" || !rule.Addr.Is4() {
		return ErrInvalidRule
	}
	return r.store.Save(rule.Pattern, rule)
}

func (r *Repository) Delete(pattern string) error {
	if _, err := r.store.Load(pattern); err != nil {
		return fmt.Errorf("no such rule: %s", pattern)
	}
	return r.store.Delete(pattern)
}

func (r *Repository) ReadAll() ([]overrides.Rule, error) {
	return r.store.LoadAll()
}

// Lookup applies the same matching semantics as the environment table.
// Rules are keyed by pattern, so an exact rule beats wildcards; between
// overlapping wildcards the lexically smallest pattern wins, keeping
// repeated lookups deterministic.
func (r *Repository) Lookup(host string) (netip.Addr, bool) {
	if rule, err := r.store.Load(host); err == nil {
		return rule.Addr, true
	}

	rules, err := r.store.LoadAll()
	if err != nil {
		return netip.Addr{}, false
	}
	slices.SortFunc(rules, func(a, b overrides.Rule) int {
		return strings.Compare(a.Pattern, b.Pattern)
	})
	for _, rule := range rules {
		if overrides.Matches(rule.Pattern, host) {
			return rule.Addr, true
		}
	}
	return netip.Addr{}, false
}
