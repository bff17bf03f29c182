package monitoring

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	exporter       *prometheus.Exporter
	meterProvider  *sdkmetric.MeterProvider
	requestCounter metric.Int64Counter
	latencyHist    metric.Float64Histogram
	initOnce       sync.Once
	httpHandler    http.Handler
)

// Config captures the minimal setup parameters for service telemetry.
type Config struct {
	ServiceName   string
	ResourceAttrs map[string]string
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and runtime instrumentation.
// The returned function shuts down the meter provider.
func Setup(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "unknown-service"
	}

	var attrs []attribute.KeyValue
	attrs = append(attrs, semconv.ServiceName(cfg.ServiceName))
	for k, v := range cfg.ResourceAttrs {
		attrs = append(attrs, attribute.String(k, v))
	}

	var initErr error

	initOnce.Do(func() {
		exp, err := prometheus.New(prometheus.WithoutUnits())
		if err != nil {
			initErr = err
			return
		}
		exporter = exp

		res, err := resource.Merge(
			resource.Default(),
			resource.NewSchemaless(attrs...),
		)
		if err != nil {
			initErr = err
			return
		}

		meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(exporter),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(meterProvider)

		meter := meterProvider.Meter(cfg.ServiceName)

		requestCounter, err = meter.Int64Counter("http_requests_total",
			metric.WithDescription("Total number of HTTP requests handled"))
		if err != nil {
			initErr = err
			return
		}

		latencyHist, err = meter.Float64Histogram("http_request_duration_seconds",
			metric.WithDescription("HTTP request latency in seconds"))
		if err != nil {
			initErr = err
			return
		}

		if err := runtime.Start(runtime.WithMeterProvider(meterProvider)); err != nil {
			initErr = err
			return
		}

		httpHandler = promhttp.Handler()
	})

	if initErr != nil {
		return nil, initErr
	}

	return func(shutdownCtx context.Context) error {
		if meterProvider == nil {
			return nil
		}
		return meterProvider.Shutdown(shutdownCtx)
	}, nil
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler() http.Handler {
	if httpHandler == nil {
		return promhttp.Handler()
	}
	return httpHandler
}

// statusRecorder captures the response status code for instrumentation.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and latency for every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		if requestCounter == nil || latencyHist == nil {
			return
		}

		attrs := metric.WithAttributes(
			attribute.String("http.method", r.Method),
			attribute.String("http.route", r.URL.Path),
			attribute.String("http.status_code", strconv.Itoa(rec.status)),
		)
		requestCounter.Add(r.Context(), 1, attrs)
		latencyHist.Record(r.Context(), time.Since(start).Seconds(), attrs)
	})
}
