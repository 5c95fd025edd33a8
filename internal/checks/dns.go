package checks

import (
	"fmt"
	"time"

	"github.com/miekg/dns"
)

// DNSChecker sends a real query to the upstream and requires a usable
// response. An optional validator (e.g. a Lua script) judges the response
// beyond plain reachability.
type DNSChecker struct {
	addr      string
	probeName string
	timeout   time.Duration
	client    *dns.Client
	validator Validator
}

// Validator judges a probe response.
type Validator interface {
	Validate(rcode, answers int) error
}

type DNSCheckerOption func(*DNSChecker)

func NewDNSChecker(addr, probeName string, timeout time.Duration, opts ...DNSCheckerOption) Checker {
	c := &DNSChecker{
		addr:      addr,
		probeName: probeName,
		timeout:   timeout,
		client:    &dns.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func WithValidator(v Validator) DNSCheckerOption {
	return func(c *DNSChecker) {
		c.validator = v
	}
}

func (c *DNSChecker) Check() error {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(c.probeName), dns.TypeA)

	response, _, err := c.client.Exchange(m, c.addr)
	if err != nil {
		return fmt.Errorf("probe query to %s failed: %w", c.addr, err)
	}

	if c.validator != nil {
		return c.validator.Validate(response.Rcode, len(response.Answer))
	}

	if response.Rcode == dns.RcodeServerFailure || response.Rcode == dns.RcodeRefused {
		return fmt.Errorf("upstream %s answered with rcode %s", c.addr, dns.RcodeToString[response.Rcode])
	}

	return nil
}
