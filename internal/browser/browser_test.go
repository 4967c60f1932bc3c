package browser

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Headless {
		t.Error("default config should be headless")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestEscJS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"app-root", "app-root"},
		{`a[href='/x']`, `a[href=\'/x\']`},
		{`path\to`, `path\\to`},
	}
	for _, tt := range tests {
		if got := escJS(tt.in); got != tt.want {
			t.Errorf("escJS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("a longer string", 8); got != "a longer..." {
		t.Errorf("Truncate = %q, want %q", got, "a longer...")
	}
}

func TestJSErrorCollector_Empty(t *testing.T) {
	c := &JSErrorCollector{}
	if c.HasErrors() {
		t.Error("empty collector should report no errors")
	}
	if got := c.Errors(); len(got) != 0 {
		t.Errorf("Errors() = %v, want empty", got)
	}
}

func TestJSErrorCollector_HasErrors(t *testing.T) {
	c := &JSErrorCollector{errors: []string{"EXCEPTION: boom"}}
	if !c.HasErrors() {
		t.Error("collector with an error should report HasErrors")
	}

	// Errors returns a copy; mutating it must not touch the collector
	got := c.Errors()
	got[0] = "mutated"
	if c.Errors()[0] != "EXCEPTION: boom" {
		t.Error("Errors() must return a copy")
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		in   interface{}
		want bool
	}{
		{true, true},
		{false, false},
		{float64(0), false},
		{float64(1.5), true},
		{"", false},
		{"x", true},
		{nil, false},
		{map[string]interface{}{}, true},
	}
	for _, tt := range tests {
		if got := IsTruthy(tt.in); got != tt.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
