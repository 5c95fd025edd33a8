package resolver

import (
	"context"
	"os"
	"sync"

	"github.com/vitistack/resolver-shim/internal/overrides"
)

const DEFAULT_OVERRIDES_VAR = "SHIM_DNS_OVERRIDES"

// Interceptor substitutes for the real resolver. Every request first runs
// against the override table; on a match the real resolver is asked to shape
// the override address through a numeric-host request, otherwise the
// original request goes through with its family forced to IPv4.
//
// The override variable is read fresh on every call, so table changes take
// effect immediately. The only shared state is the lazily-bound real
// resolver; everything else is call-local, and concurrent use is safe.
type Interceptor struct {
	envVar string
	bind   func() Resolver
	real   func() Resolver
}

type interceptorOption func(*Interceptor)

func NewInterceptor(opts ...interceptorOption) *Interceptor {
	in := &Interceptor{
		envVar: DEFAULT_OVERRIDES_VAR,
		bind: func() Resolver {
			return NewSystemResolver()
		},
	}

	for _, opt := range opts {
		opt(in)
	}

	// Bound exactly once, on first use. A shim without its real resolver
	// cannot degrade to anything sane, so a nil bind is fatal rather than
	// a silently absorbed error.
	in.real = sync.OnceValue(func() Resolver {
		r := in.bind()
		if r == nil {
			panic("resolver: real resolver unavailable")
		}
		return r
	})

	return in
}

// WithOverridesVar sets the environment variable holding the override table.
func WithOverridesVar(name string) interceptorOption {
	return func(in *Interceptor) {
		in.envVar = name
	}
}

// WithRealResolver sets the binding of the underlying resolver, called once
// on first use.
func WithRealResolver(bind func() Resolver) interceptorOption {
	return func(in *Interceptor) {
		in.bind = bind
	}
}

func (in *Interceptor) Resolve(ctx context.Context, req *Request) ([]AddrInfo, error) {
	real := in.real()

	if addr, ok := overrides.Lookup(os.Getenv(in.envVar), req.Host); ok {
		// Hand the real resolver the override address as a numeric host so
		// the result has the exact shape a normal resolution would have.
		// Service, socket type and protocol survive from the original
		// request; with no hints at all, default to a stream socket.
		hints := Hints{
			Family:   FamilyIPv4,
			SockType: SockStream,
			Flags:    NumericHost,
		}
		if req.Hints != nil {
			hints.SockType = req.Hints.SockType
			hints.Protocol = req.Hints.Protocol
		}
		return real.Resolve(ctx, &Request{
			Host:    addr.String(),
			Service: req.Service,
			Hints:   &hints,
		})
	}

	// No override: pass the request through with the family overwritten to
	// IPv4, whatever the caller asked for.
	hints := Hints{}
	if req.Hints != nil {
		hints = *req.Hints
	}
	hints.Family = FamilyIPv4

	return real.Resolve(ctx, &Request{
		Host:    req.Host,
		Service: req.Service,
		Hints:   &hints,
	})
}
