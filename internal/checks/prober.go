package checks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Prober re-checks every upstream on a ticker and publishes the healthy
// subset. Publish order follows the configured order, so the proxy's
// preference between upstreams is stable.
type Prober struct {
	upstreams  []string
	newChecker func(addr string) Checker
	interval   time.Duration
	publish    func(healthy []string)
	log        *zap.SugaredLogger
	wg         sync.WaitGroup
}

func NewProber(upstreams []string, interval time.Duration, newChecker func(addr string) Checker, publish func([]string), logger *zap.Logger) *Prober {
	if interval < MIN_PROBE_INTERVAL {
		interval = MIN_PROBE_INTERVAL
	}

	return &Prober{
		upstreams:  upstreams,
		newChecker: newChecker,
		interval:   interval,
		publish:    publish,
		log:        logger.Sugar(),
	}
}

func (p *Prober) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	p.wg.Go(func() {
		defer ticker.Stop()

		p.probe()
		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				p.probe()
			}
		}
	})
}

func (p *Prober) Stop() {
	p.wg.Wait()
}

func (p *Prober) probe() {
	healthy := make([]string, 0, len(p.upstreams))
	for _, upstream := range p.upstreams {
		if err := p.newChecker(upstream).Check(); err != nil {
			p.log.Warnf("upstream %v unhealthy: %v", upstream, err)
			continue
		}
		healthy = append(healthy, upstream)
	}

	if len(healthy) == 0 {
		p.log.Error("no healthy upstreams; keeping the previous set")
		return
	}

	p.publish(healthy)
}
