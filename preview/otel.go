package preview

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/matthiasbeyer/type-description"

// observe returns middleware that traces each request and records request
// counts and latency with the global OpenTelemetry providers.
func observe(serviceName string) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer(instrumentationName)
	meter := otel.GetMeterProvider().Meter(instrumentationName)

	requestCounter, _ := meter.Int64Counter(
		"typedesc.docs.requests",
		metric.WithDescription("Total number of documentation requests"),
		metric.WithUnit("{request}"),
	)
	requestDuration, _ := meter.Float64Histogram(
		"typedesc.docs.request.duration",
		metric.WithDescription("Duration of documentation requests"),
		metric.WithUnit("ms"),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), "docs "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
					attribute.String("service.name", serviceName),
				),
			)
			defer span.End()

			attrs := []attribute.KeyValue{
				attribute.String("http.target", r.URL.Path),
				attribute.String("service.name", serviceName),
			}
			requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(recorder, r.WithContext(ctx))

			requestDuration.Record(ctx, float64(time.Since(start).Milliseconds()),
				metric.WithAttributes(attrs...))

			span.SetAttributes(attribute.Int("http.status_code", recorder.status))
			if recorder.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(recorder.status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack forwards to the underlying writer so the WebSocket upgrade keeps
// working behind the middleware.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
