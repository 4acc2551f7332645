// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package logs

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(ns int64) *Entry { return &Entry{TimeUnixNano: strconv.FormatInt(ns, 10)} }

func TestHistogram_empty(t *testing.T) {
	assert.Empty(t, Histogram(nil))
	assert.Empty(t, Histogram([]*Entry{}))
}

func TestHistogram_noTimeAnchor(t *testing.T) {
	// Without a valid minimum time there is no meaningful bucket range.
	assert.Empty(t, Histogram([]*Entry{entryAt(0)}))
	assert.Empty(t, Histogram([]*Entry{{TimeUnixNano: ""}, entryAt(5)}))
}

func TestHistogram_uniform(t *testing.T) {
	// 100 entries, one every 100ms over ~10s: minimum bucket count applies,
	// and the spread is even.
	var entries []*Entry
	for i := 1; i <= 100; i++ {
		entries = append(entries, entryAt(int64(i)*100000000))
	}
	buckets := Histogram(entries)
	require.Len(t, buckets, 10)
	total := 0
	for _, b := range buckets {
		assert.Equal(t, 10, b.Count)
		total += b.Count
	}
	assert.Equal(t, len(entries), total)
}

func TestHistogram_bucketCountBounds(t *testing.T) {
	for _, x := range []struct {
		name    string
		spanSec int64
		want    int
	}{
		{"zero span clamps up", 0, 10},
		{"short span clamps up", 10, 10},
		{"5s per bucket in range", 75, 15},
		{"long span clamps down", 3600, 20},
	} {
		t.Run(x.name, func(t *testing.T) {
			base := int64(1700000000000000000)
			entries := []*Entry{entryAt(base), entryAt(base + x.spanSec*1000000000)}
			assert.Len(t, Histogram(entries), x.want)
		})
	}
}

func TestHistogram_maxLandsInLastBucket(t *testing.T) {
	base := int64(1700000000000000000)
	entries := []*Entry{entryAt(base), entryAt(base + 3000000000), entryAt(base + 60000000000)}
	buckets := Histogram(entries)
	require.NotEmpty(t, buckets)
	// floor((max-min)/width) would be exactly len(buckets), the clamp keeps
	// the newest record in range.
	assert.Equal(t, 1, buckets[len(buckets)-1].Count)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, len(entries), total)
}

func TestHistogram_singleInstant(t *testing.T) {
	// All entries at the same time: zero width, everything in bucket 0.
	e := entryAt(1700000000000000000)
	buckets := Histogram([]*Entry{e, e, e})
	require.Len(t, buckets, 10)
	assert.Equal(t, 3, buckets[0].Count)
	for _, b := range buckets[1:] {
		assert.Zero(t, b.Count)
	}
}

func TestHistogram_labels(t *testing.T) {
	// 2026-08-29T00:00:00Z, 100s span: 20 buckets of 5s each.
	base := int64(1787961600000000000)
	entries := []*Entry{entryAt(base), entryAt(base + 100000000000)}
	buckets := Histogram(entries)
	require.Len(t, buckets, 20)
	assert.Equal(t, "00:00:00", buckets[0].Label)
	assert.Equal(t, "00:00:05", buckets[1].Label)
	assert.Equal(t, "00:01:35", buckets[19].Label)
}

func TestHistogram_inputOrderIrrelevant(t *testing.T) {
	base := int64(1700000000000000000)
	a := []*Entry{entryAt(base + 9000000000), entryAt(base), entryAt(base + 4000000000)}
	b := []*Entry{a[1], a[2], a[0]}
	assert.Equal(t, Histogram(a), Histogram(b))
}
