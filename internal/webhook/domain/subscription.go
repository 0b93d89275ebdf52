package domain

import (
	"net/url"
	"time"
)

// EventType identifies which bucket of a device registry a subscription
// lives in. Devices report "motion", "temperature" and "high_temperature"
// events; the two temperature variants share one bucket.
type EventType string

const (
	EventMotion      EventType = "motion"
	EventTemperature EventType = "temperature"
)

// Subscription is one outbound webhook registration. ID, Owner and CreatedAt
// are immutable once set; UpdatedAt is nil until the first mutation.
type Subscription struct {
	ID        string     `json:"id" firestore:"id"`
	URL       string     `json:"url" firestore:"url"`
	Owner     string     `json:"owner" firestore:"owner"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// Registry is the per-device webhook document, one per deviceId under the
// "webhooks" collection. The whole document is rewritten on every mutation.
type Registry struct {
	Motion      []Subscription `json:"motion" firestore:"motion"`
	Temperature []Subscription `json:"temperature" firestore:"temperature"`
}

// Bucket returns the subscription list for the given event type.
func (r *Registry) Bucket(event EventType) []Subscription {
	if event == EventMotion {
		return r.Motion
	}
	return r.Temperature
}

// SetBucket replaces the subscription list for the given event type.
func (r *Registry) SetBucket(event EventType, subs []Subscription) {
	if event == EventMotion {
		r.Motion = subs
	} else {
		r.Temperature = subs
	}
}

// Find locates a subscription by id across both buckets. An id belongs to
// exactly one bucket at a time.
func (r *Registry) Find(subID string) (*Subscription, EventType, bool) {
	for i := range r.Motion {
		if r.Motion[i].ID == subID {
			return &r.Motion[i], EventMotion, true
		}
	}
	for i := range r.Temperature {
		if r.Temperature[i].ID == subID {
			return &r.Temperature[i], EventTemperature, true
		}
	}
	return nil, "", false
}

// Remove deletes a subscription by id from the given bucket.
func (r *Registry) Remove(event EventType, subID string) {
	bucket := r.Bucket(event)
	out := make([]Subscription, 0, len(bucket))
	for _, s := range bucket {
		if s.ID != subID {
			out = append(out, s)
		}
	}
	r.SetBucket(event, out)
}

// ParseEventType validates an event name supplied on subscription writes.
// "temperature" and "high_temperature" normalize to the temperature bucket.
func ParseEventType(s string) (EventType, bool) {
	switch s {
	case "motion":
		return EventMotion, true
	case "temperature", "high_temperature":
		return EventTemperature, true
	default:
		return "", false
	}
}

// ResolveEventType maps an inbound device event name to a bucket. Devices
// are not trusted to spell event names consistently, so this is lenient:
// empty defaults to motion, anything other than "motion" goes to the
// temperature bucket.
func ResolveEventType(s string) EventType {
	if s == "" || s == "motion" {
		return EventMotion
	}
	return EventTemperature
}

// ValidateURL checks that a subscriber URL is an absolute http or https URL.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
