package rcache

import (
	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/tally"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// lruCache is an LRU cache for Reports
type lruCache struct {
	klocks  *locker.Locker
	reports *lru.Cache
}

// NewLRU produces an LRU ReportCache holding at most size Reports
func NewLRU(size int) (ReportCache, error) {
	reports, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to create report cache of size %d", size)
	}
	return &lruCache{
		klocks:  locker.New(),
		reports: reports,
	}, nil
}

func (c *lruCache) GetOrCompute(key Key, compute func() (*tally.Report, error)) (*tally.Report, error) {
	name := key.String()
	c.klocks.Lock(name)
	defer c.klocks.Unlock(name)
	if v, ok := c.reports.Get(key); ok {
		cached := cloneReport(v.(*tally.Report))
		cached.Cached = true
		return cached, nil
	}
	report, err := compute()
	if err != nil {
		return report, err
	}
	if report != nil && report.Verification == tally.Match {
		c.reports.Add(key, cloneReport(report))
	}
	return report, nil
}

func (c *lruCache) CurrentSize() int {
	return c.reports.Len()
}

func (c *lruCache) Purge() {
	c.reports.Purge()
}

// cloneReport copies a Report deeply enough that callers cannot alter the cached value
func cloneReport(r *tally.Report) *tally.Report {
	cpy := *r
	cpy.PerWorker = append([]tally.PartialResult(nil), r.PerWorker...)
	if r.Categories != nil {
		cpy.Categories = make(tally.CategoryTally, len(r.Categories))
		for k, v := range r.Categories {
			cpy.Categories[k] = v
		}
	}
	if r.Sectors != nil {
		cpy.Sectors = make(tally.SectorTally, len(r.Sectors))
		for k, v := range r.Sectors {
			cpy.Sectors[k] = v
		}
	}
	return &cpy
}
