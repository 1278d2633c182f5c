// Package cmap provides a sharded, string-keyed concurrent map.
//
// Keys are spread over a power-of-two number of shards by their murmur3
// hash; each shard has its own RWMutex. It suits registries that many
// goroutines consult for different keys, such as per-client limiters.
//
// Usage:
//
//	m := cmap.New[*rate.Limiter]()
//	lim, _ := m.GetOrCreate(ip, func() *rate.Limiter { return rate.NewLimiter(10, 10) })
package cmap
