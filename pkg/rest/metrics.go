// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loglens_fetch_total",
		Help: "Upstream payload fetches by outcome.",
	}, []string{"outcome"})

	recordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loglens_records_normalized_total",
		Help: "Log records flattened from fetched payloads.",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "loglens_request_duration_seconds",
		Help:    "REST request duration.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
