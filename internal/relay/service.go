package relay

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"smartlux-backend/internal/webhook/domain"
)

// SubscriberResolver returns the deduplicated webhook URLs registered for a
// device and event type.
type SubscriberResolver interface {
	SubscriberURLs(ctx context.Context, deviceID string, event domain.EventType) []string
}

// Outcome records one subscriber dispatch result.
type Outcome struct {
	URL    string
	Status int
	Err    error
}

// Service broadcasts inbound device events to registered subscriber URLs.
// Delivery is best-effort: one attempt per subscriber per event, no retries.
type Service struct {
	resolver SubscriberResolver
	client   *http.Client
	timeout  time.Duration
}

// NewService creates a relay with the given per-dispatch timeout.
func NewService(resolver SubscriberResolver, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		resolver: resolver,
		client:   &http.Client{},
		timeout:  timeout,
	}
}

// Forward resolves the device's subscribers and POSTs the payload to each
// of them concurrently. Every dispatch gets its own timeout, so one hanging
// subscriber never delays or cancels delivery to the others. All outcomes
// are gathered and logged; none is surfaced to the device.
func (s *Service) Forward(deviceID string, event domain.EventType, payload []byte) []Outcome {
	urls := s.resolver.SubscriberURLs(context.Background(), deviceID, event)
	if len(urls) == 0 {
		log.Printf("[Relay] No subscribers for device %s event %s, nothing to forward", deviceID, event)
		return nil
	}

	outcomes := make([]Outcome, len(urls))
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			outcomes[i] = s.deliver(u, payload)
		}(i, u)
	}
	wg.Wait()

	delivered := 0
	for _, o := range outcomes {
		if o.Err != nil {
			log.Printf("[Relay] Delivery to %s failed: %v", o.URL, o.Err)
		} else {
			delivered++
			log.Printf("[Relay] Delivered to %s (status %d)", o.URL, o.Status)
		}
	}
	log.Printf("[Relay] Device %s event %s: %d/%d deliveries succeeded", deviceID, event, delivered, len(urls))
	return outcomes
}

func (s *Service) deliver(url string, payload []byte) Outcome {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Outcome{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Outcome{URL: url, Err: err}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the response body itself is
	// not interesting beyond logging.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	return Outcome{URL: url, Status: resp.StatusCode}
}
