package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewWithRegistry("charter-test", prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/api/v1/yachts", 200, 15*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/yachts", 200, 5*time.Millisecond)
	m.ObserveDB("select", nil, time.Millisecond)
	m.ObserveDB("insert", errors.New("boom"), time.Millisecond)
	m.ObserveCatalog("postgres", 4, []string{"length", "amenities"})
	m.ObserveCatalogError("postgres")
	m.ObserveNotification("booking.created", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/yachts", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("insert", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogActiveDimensions.WithLabelValues("amenities")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CatalogRequestsTotal.WithLabelValues("postgres", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("booking.created", "ok")))
}

func TestNewWithRegistry_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegistry("a", prometheus.NewRegistry())
		NewWithRegistry("a", prometheus.NewRegistry())
	})
}
