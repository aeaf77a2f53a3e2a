package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestObserveShowsUpInHandler(t *testing.T) {
	m := NewHTTP()
	m.Observe("GET", "/api/products", 200, 25*time.Millisecond)
	m.Observe("GET", "/api/products", 200, 30*time.Millisecond)
	m.Observe("POST", "/api/wishlist", 401, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `shopmart_http_requests_total{method="GET",route="/api/products",status="200"} 2`) {
		t.Fatalf("expected counter for products route, got:\n%s", body)
	}
	if !strings.Contains(body, `shopmart_http_requests_total{method="POST",route="/api/wishlist",status="401"} 1`) {
		t.Fatalf("expected counter for wishlist 401, got:\n%s", body)
	}
}

func TestObserveNilReceiver(t *testing.T) {
	var m *HTTP
	// must not panic when metrics are not wired
	m.Observe("GET", "/", 200, time.Millisecond)
}
