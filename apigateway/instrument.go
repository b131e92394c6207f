// Package gateway holds the cross-cutting http middleware: metrics, CORS,
// request ids and request logging.
package gateway

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func Instrumentation() gin.HandlerFunc {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "payli",
		Subsystem: "request",
		Name:      "requests_count",
		Help:      "Number of requests per each endpoint",
	}, []string{"code", "method", "handler", "host", "url"})

	resTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payli",
		Subsystem: "response",
		Name:      "response_time_hist",
		Help:      "payli response duration",
	})

	resSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payli",
		Subsystem: "response",
		Name:      "size_histogram",
		Help:      "payli response size",
	})

	reqSize := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "payli",
		Subsystem: "request",
		Name:      "size_hist",
		Help:      "Request size instrumenter",
	})

	resTimeSum := prometheus.NewSummary(prometheus.SummaryOpts{
		Namespace: "payli",
		Subsystem: "response",
		Name:      "latency_summary",
		Help:      "Computes responses latency",
	})

	colls := []prometheus.Collector{counterVec, resTime, resSize, reqSize, resTimeSum}
	for _, v := range colls {
		if err := prometheus.Register(v); err != nil {
			panic(err)
		}
	}
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := float64(time.Since(start)) * 1e-6 // to millisecond

		rSize := c.Writer.Size()
		rqSize := c.Request.ContentLength

		status := strconv.Itoa(c.Writer.Status())

		counterVec.WithLabelValues(status, c.Request.Method, c.HandlerName(), c.Request.Host, c.Request.URL.Path).Inc()
		resTime.Observe(duration)
		resSize.Observe(float64(rSize))
		reqSize.Observe(float64(rqSize))
		resTimeSum.Observe(duration)
	}
}
