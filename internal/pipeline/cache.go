package pipeline

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ResultCache keeps recently rendered presentations so an identical
// upload can complete without parsing again.
type ResultCache struct {
	c *gocache.Cache
}

type cachedResult struct {
	title  string
	slides int
	data   []byte
}

// NewResultCache returns a cache whose entries live for ttl. A non-positive
// ttl returns nil, which disables caching.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		return nil
	}
	return &ResultCache{c: gocache.New(ttl, 2*ttl)}
}

// resultKey identifies a conversion. The filename matters because it can
// supply the deck title and always selects the parser.
func resultKey(job *Job) string {
	return strings.Join([]string{job.ContentHash, job.Filename, job.Title}, "|")
}

func (rc *ResultCache) get(job *Job) (cachedResult, bool) {
	if rc == nil {
		return cachedResult{}, false
	}
	v, ok := rc.c.Get(resultKey(job))
	if !ok {
		return cachedResult{}, false
	}
	return v.(cachedResult), true
}

func (rc *ResultCache) put(job *Job, res cachedResult) {
	if rc == nil {
		return
	}
	rc.c.SetDefault(resultKey(job), res)
}

// Len returns the number of cached results, expired or not.
func (rc *ResultCache) Len() int {
	if rc == nil {
		return 0
	}
	return rc.c.ItemCount()
}
