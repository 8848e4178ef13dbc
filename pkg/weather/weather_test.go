package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConditionForCode(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{1, "Cloudy"},
		{2, "Cloudy"},
		{3, "Cloudy"},
		{45, "Fog"},
		{48, "Fog"},
		{51, "Rain"},
		{67, "Rain"},
		{80, "Rain"},
		{82, "Rain"},
		{71, "Snow"},
		{77, "Snow"},
		{85, "Snow"},
		{86, "Snow"},
		{95, "Storm"},
		{99, "Storm"},
		{42, "Weather"},
		{-1, "Weather"},
	}

	for _, tc := range cases {
		if got := ConditionForCode(tc.code); got.Label != tc.want {
			t.Fatalf("code %d: expected %s, got %s", tc.code, tc.want, got.Label)
		}
	}
}

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current_weather") != "true" {
			t.Fatalf("missing current_weather param: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"current_weather":{"temperature":18.4,"weathercode":61}}`))
	}))
	defer srv.Close()

	c := New()
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	rep, err := c.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.TemperatureC != 18.4 || rep.Code != 61 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Condition.Label != "Rain" {
		t.Fatalf("unexpected condition: %+v", rep.Condition)
	}
}

func TestCurrentUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New()
	c.BaseURL = srv.URL
	c.HTTPClient = srv.Client()

	if _, err := c.Current(context.Background(), 0, 0); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}
