package relay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"smartlux-backend/internal/webhook/domain"
)

// resolverFunc adapts a plain function to the SubscriberResolver interface.
type resolverFunc func(deviceID string, event domain.EventType) []string

func (f resolverFunc) SubscriberURLs(ctx context.Context, deviceID string, event domain.EventType) []string {
	return f(deviceID, event)
}

func newForwardRouter(secret string, resolver SubscriberResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(resolver, time.Second), secret)
	r.POST("/api/notify/forward/:deviceId", h.Forward)
	return r
}

func TestForwardHandlerAcksImmediately(t *testing.T) {
	router := newForwardRouter("", &stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notify/forward/dev1", strings.NewReader(`{"event":"motion"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestForwardHandlerSecret(t *testing.T) {
	router := newForwardRouter("s3cret", &stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notify/forward/dev1", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/notify/forward/dev1?token=wrong", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/notify/forward/dev1?token=s3cret", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestForwardHandlerDispatchesInBackground(t *testing.T) {
	hit := make(chan []byte, 1)
	subscriber := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		hit <- body
	}))
	defer subscriber.Close()

	router := newForwardRouter("", &stubResolver{urls: []string{subscriber.URL}})

	payload := `{"event_type":"high_temperature","celsius":71}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notify/forward/dev1", strings.NewReader(payload))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	select {
	case body := <-hit:
		assert.JSONEq(t, payload, string(body))
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber was never called")
	}
}

func TestResolveEventFromPayloadFields(t *testing.T) {
	// Both "event" and "event_type" spellings are accepted; the resolver
	// sees the normalized bucket.
	type captured struct {
		event domain.EventType
	}
	got := make(chan captured, 1)

	resolver := resolverFunc(func(deviceID string, event domain.EventType) []string {
		got <- captured{event: event}
		return nil
	})
	router := newForwardRouter("", resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notify/forward/dev1", strings.NewReader(`{"event_type":"high_temperature"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	select {
	case c := <-got:
		assert.Equal(t, domain.EventTemperature, c.event)
	case <-time.After(2 * time.Second):
		t.Fatal("resolver was never called")
	}
}
