// Package series rebuilds a fixed-cadence time series from the raw sample
// arrays the appliance history endpoint returns.
package series

import "time"

// bucketInterval is the appliance sampling cadence.
const bucketInterval = 10 * time.Minute

// fullDayBuckets is the number of 10-minute buckets in 24 hours.
const fullDayBuckets = 144

// Point is one labeled sample of the reconstructed series.
type Point struct {
	Label   string `json:"label"`
	Total   int64  `json:"total"`
	Blocked int64  `json:"blocked"`
}

// Reconstruct aligns the two sample arrays on a 10-minute cadence and
// attaches clock labels. Both series are truncated to the shorter length;
// extra trailing samples are dropped silently.
//
// When exactly a full day of buckets is present the window is assumed to
// end now, so the first sample is stamped now-24h. Any other length is
// assumed to start at midnight of the current day. This is a heuristic
// about the appliance sampling window, not a contract.
func Reconstruct(total, blocked []int64, now time.Time) []Point {
	n := min(len(total), len(blocked))

	var start time.Time
	if n == fullDayBuckets {
		start = now.Add(-24 * time.Hour)
	} else {
		y, m, d := now.Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}

	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		ts := start.Add(time.Duration(i) * bucketInterval)
		points = append(points, Point{
			Label:   ts.Format("3:04 PM"),
			Total:   total[i],
			Blocked: blocked[i],
		})
	}

	return points
}
