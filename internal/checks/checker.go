// Package checks probes upstream resolvers so the proxy only forwards to
// nameservers that are actually reachable.
package checks

type Checker interface {
	Check() error
}
