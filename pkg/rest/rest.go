// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// Package rest implements the REST API for loglens.
//
// Endpoints return JSON values.
//
// # GET /api/v1alpha1/logs
//
// Fetch the upstream payload, flatten it and return the entries, newest first.
//   - Response: array of [logs.Entry], `[]` when the payload holds no records.
//
// # GET /api/v1alpha1/histogram
//
// Fetch the upstream payload, flatten it and return the time histogram.
//   - Response: array of [logs.Bucket], `[]` for degenerate input.
//
// An upstream transport or decode failure aborts the request with 502 and
// `{"error": ...}`. Missing optional payload fields are not failures.
//
// Every request runs the whole fetch, normalize, histogram pipeline, there
// is no cross-request cache.
package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loglens/loglens/internal/pkg/logging"
	"github.com/loglens/loglens/pkg/export"
	"github.com/loglens/loglens/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logging.Log()

// BasePath is the versioned base path for the current version of the REST API.
const BasePath = "/api/v1alpha1"

type API struct {
	Client *export.Client
}

// New API instance, registers handlers with a gin Engine.
func New(client *export.Client, r *gin.Engine) (*API, error) {
	a := &API{Client: client}
	r.Use(a.logger)
	v := r.Group(BasePath)
	v.GET("/logs", a.Logs)
	v.GET("/histogram", a.Histogram)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return a, nil
}

// Close cleans any persistent resources.
func (a *API) Close() {}

// Logs handler returns the flattened entries.
func (a *API) Logs(c *gin.Context) {
	entries, ok := a.normalized(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Array[*logs.Entry](entries))
}

// Histogram handler returns the time-bucketed counts.
func (a *API) Histogram(c *gin.Context) {
	entries, ok := a.normalized(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Array[logs.Bucket](logs.Histogram(entries)))
}

// normalized runs the fetch and flatten steps shared by both endpoints.
func (a *API) normalized(c *gin.Context) ([]*logs.Entry, bool) {
	payload, err := a.Client.Get(c.Request.Context())
	fetchTotal.WithLabelValues(outcome(err)).Inc()
	if !check(c, http.StatusBadGateway, err, "fetching log payload") {
		return nil, false
	}
	entries := logs.Normalize(payload)
	recordsTotal.Add(float64(len(entries)))
	return entries, true
}

func check(c *gin.Context, code int, err error, format ...any) (ok bool) {
	if err != nil && !c.IsAborted() {
		if len(format) > 0 {
			err = fmt.Errorf("%v: %w", fmt.Sprintf(format[0].(string), format[1:]...), err)
		}
		c.AbortWithStatusJSON(code, c.Error(err).JSON())
		log.Error(err, "abort request", "url", c.Request.URL, "code", code)
	}
	return err == nil && !c.IsAborted()
}

// logger is a Gin handler to log requests.
func (a *API) logger(c *gin.Context) {
	start := time.Now()
	defer func() {
		latency := time.Since(start)
		requestDuration.WithLabelValues(c.FullPath()).Observe(latency.Seconds())
		log := log.WithValues(
			"method", c.Request.Method,
			"url", c.Request.URL,
			"from", c.Request.RemoteAddr,
			"status", c.Writer.Status(),
			"latency", latency)
		if len(c.Errors) > 0 {
			log = log.WithValues("errors", c.Errors.Errors())
		}
		if len(c.Errors) > 0 || c.Writer.Status()/100 != 2 {
			log.Info("request failed")
		} else {
			log.V(1).Info("request OK")
		}
	}()
	c.Next()
}
