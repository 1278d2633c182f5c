package redisserver

import (
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/rodent-go/pkg/cmap"
)

// limiterIdle is how long a client limiter survives without traffic.
const limiterIdle = 10 * time.Minute

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64
}

// limiterSet keeps one token bucket per client IP. A nil set allows everything.
type limiterSet struct {
	limit rate.Limit
	burst int
	m     *cmap.Map[*clientLimiter]
}

func newLimiterSet(perSecond int) *limiterSet {
	if perSecond <= 0 {
		return nil
	}
	return &limiterSet{
		limit: rate.Limit(perSecond),
		burst: perSecond,
		m:     cmap.New[*clientLimiter](),
	}
}

func (ls *limiterSet) allow(ip string, now time.Time) bool {
	if ls == nil {
		return true
	}
	cl, _ := ls.m.GetOrCreate(ip, func() *clientLimiter {
		return &clientLimiter{lim: rate.NewLimiter(ls.limit, ls.burst)}
	})
	cl.lastSeen.Store(now.UnixNano())
	return cl.lim.AllowN(now, 1)
}

// prune drops limiters idle since before cutoff.
func (ls *limiterSet) prune(cutoff time.Time) int {
	if ls == nil {
		return 0
	}
	c := cutoff.UnixNano()
	return ls.m.DeleteFunc(func(_ string, cl *clientLimiter) bool {
		return cl.lastSeen.Load() < c
	})
}

func (ls *limiterSet) len() int {
	if ls == nil {
		return 0
	}
	return ls.m.Count()
}
