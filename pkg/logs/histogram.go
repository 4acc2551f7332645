// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package logs

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/loglens/loglens/pkg/otel"
)

// Bucket is one histogram bar: a bucket start time label and a record count.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram bucket sizing: aim for 5 seconds per bucket, but always render
// between minBuckets and maxBuckets bars regardless of the time span.
const (
	minBuckets       = 10
	maxBuckets       = 20
	secondsPerBucket = 5
)

// Histogram buckets entries by time and returns one Bucket per interval, in
// time order. The result is empty when there are no entries or no entry has
// a usable (non-zero) timestamp, the caller renders an empty state for both.
func Histogram(entries []*Entry) []Bucket {
	if len(entries) == 0 {
		return nil
	}
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b *Entry) int { return cmp.Compare(a.Time(), b.Time()) })
	minTime, maxTime := sorted[0].Time(), sorted[len(sorted)-1].Time()
	if minTime == 0 || maxTime == 0 {
		return nil // No valid time anchor.
	}

	rangeSeconds := float64(maxTime-minTime) / float64(time.Second.Nanoseconds())
	bucketCount := int(math.Ceil(rangeSeconds / secondsPerBucket))
	bucketCount = min(max(bucketCount, minBuckets), maxBuckets)
	bucketWidth := (maxTime - minTime) / int64(bucketCount)

	buckets := make([]Bucket, bucketCount)
	for i := range buckets {
		start := otel.Int(minTime + int64(i)*bucketWidth)
		buckets[i].Label = start.Time().UTC().Format("15:04:05")
	}
	for _, e := range entries {
		t := e.Time()
		if t == 0 {
			continue
		}
		i := 0
		if bucketWidth > 0 {
			// The maximum timestamp computes to exactly bucketCount, clamp it
			// into the last bucket.
			i = min(int((t-minTime)/bucketWidth), bucketCount-1)
			i = max(i, 0)
		}
		buckets[i].Count++
	}
	return buckets
}
