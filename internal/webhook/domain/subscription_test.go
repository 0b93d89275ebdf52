package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  EventType
		ok    bool
	}{
		{"motion", "motion", EventMotion, true},
		{"temperature", "temperature", EventTemperature, true},
		{"high temperature alias", "high_temperature", EventTemperature, true},
		{"unknown", "humidity", "", false},
		{"empty", "", "", false},
		{"case sensitive", "Motion", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEventType(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEventType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  EventType
	}{
		{"empty defaults to motion", "", EventMotion},
		{"motion", "motion", EventMotion},
		{"temperature", "temperature", EventTemperature},
		{"high temperature", "high_temperature", EventTemperature},
		{"anything else goes to temperature", "smoke", EventTemperature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEventType(tt.input))
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"https", "https://x.example/hook", true},
		{"http", "http://localhost:9000/hook", true},
		{"no scheme", "x.example/hook", false},
		{"bad scheme", "ftp://x.example/hook", false},
		{"no host", "https://", false},
		{"empty", "", false},
		{"garbage", "http://[::1]:namedport", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateURL(tt.input))
		})
	}
}

func TestRegistryFindAndRemove(t *testing.T) {
	reg := Registry{
		Motion:      []Subscription{{ID: "a", URL: "https://a.example"}},
		Temperature: []Subscription{{ID: "b", URL: "https://b.example"}},
	}

	sub, bucket, found := reg.Find("b")
	assert.True(t, found)
	assert.Equal(t, EventTemperature, bucket)
	assert.Equal(t, "https://b.example", sub.URL)

	_, _, found = reg.Find("missing")
	assert.False(t, found)

	reg.Remove(EventTemperature, "b")
	assert.Empty(t, reg.Temperature)
	assert.Len(t, reg.Motion, 1)
}
