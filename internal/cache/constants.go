package cache

import (
	"fmt"
	"time"
)

// Catalog cache keys. Only catalog payloads live in redis; there is no
// occupancy key on purpose.
// Performance listings are never cached: they embed the live free-seat
// count, which moves with every booking.
const (
	PlayListKey = "plays:list" // unfiltered play listing

	PlayKey        = "play:%d"        // play detail, '%d' is play id
	PerformanceKey = "performance:%d" // performance detail, '%d' is performance id
)

// CatalogTTL bounds staleness of cached catalog reads; writes also
// invalidate eagerly.
const CatalogTTL = 5 * time.Minute

func MakePlayKey(playID uint) string {
	return fmt.Sprintf(PlayKey, playID)
}

func MakePerformanceKey(performanceID uint) string {
	return fmt.Sprintf(PerformanceKey, performanceID)
}
