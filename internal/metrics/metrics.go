// Package metrics holds the Prometheus instrumentation of the AnimeHub API.
//
// Metrics registered here:
//
//	animehub_http_requests_total            counter by method/route/status
//	animehub_http_request_duration_seconds  histogram by method/route
//	animehub_comments_created_total         counter
//	animehub_ratings_total                  counter by result (accepted, duplicate)
//	animehub_admin_logins_total             counter by result (success, failure, limited)
//	animehub_import_items_total             counter by result (created, skipped, failed)
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequests counts handled requests by method, route template and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "animehub_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "animehub_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

var CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "animehub_comments_created_total",
	Help: "Comments posted by visitors.",
})

var Ratings = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "animehub_ratings_total",
	Help: "Rating submissions by result.",
}, []string{"result"})

var AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "animehub_admin_logins_total",
	Help: "Admin login attempts by result.",
}, []string{"result"})

var ImportItems = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "animehub_import_items_total",
	Help: "AniList media processed by the importer, by result.",
}, []string{"result"})

// Handler returns the Prometheus scrape handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency. The route label is the gin
// route template ("/api/anime/:id"), never the raw path.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
