// Package resolver provides the resolution entry point of the shim: a
// decorator that filters every address-resolution request through the
// override table and an IPv4-only family constraint before handing it to
// the real resolver.
//
// The request/result contract deliberately mirrors the platform's
// getaddrinfo: (node, service, hints) in, a list of socket address records
// out. The decorator never fabricates result records itself; both branches
// delegate to the real resolver so every result is one the real resolver
// produced.
package resolver

import (
	"context"
	"net/netip"
)

// Family constrains results to one address family, mirroring ai_family.
type Family int

const (
	FamilyUnspec Family = iota
	FamilyIPv4
	FamilyIPv6
)

// SockType mirrors ai_socktype. SockAny expands to one record per
// concrete type, the way an unspecified socktype does downstream.
type SockType int

const (
	SockAny SockType = iota
	SockStream
	SockDatagram
)

type Flags int

const (
	// NumericHost requires the request host to be an IP literal;
	// no name lookup is performed.
	NumericHost Flags = 1 << iota
)

type Hints struct {
	Family   Family
	SockType SockType
	Protocol int
	Flags    Flags
}

// Request is a single resolution request. Host and Service may each be
// empty; nil Hints means no constraints.
type Request struct {
	Host    string
	Service string
	Hints   *Hints
}

// AddrInfo is one resolved socket address record.
type AddrInfo struct {
	Family   Family         `json:"family"`
	SockType SockType       `json:"socktype"`
	Protocol int            `json:"protocol"`
	Addr     netip.AddrPort `json:"addr"`
}

type Resolver interface {
	Resolve(ctx context.Context, req *Request) ([]AddrInfo, error)
}

func familyOf(addr netip.Addr) Family {
	if addr.Unmap().Is4() {
		return FamilyIPv4
	}
	return FamilyIPv6
}
