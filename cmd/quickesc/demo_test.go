package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nikallass/quickesc/internal/config"
)

func TestRunDemoLatch(t *testing.T) {
	var buf bytes.Buffer
	if code := runDemo(config.Default(), &buf); code != 0 {
		t.Fatalf("runDemo = %d, want 0", code)
	}

	out := buf.String()
	for _, want := range []string{
		"variant=latch",
		"tap escape",
		"tap grave",
		"tap f1",
		"tap q",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDemoDance(t *testing.T) {
	cfg := config.Default()
	cfg.Variant = config.VariantDance

	var buf bytes.Buffer
	if code := runDemo(cfg, &buf); code != 0 {
		t.Fatalf("runDemo = %d, want 0", code)
	}

	out := buf.String()
	if !strings.Contains(out, "variant=dance") {
		t.Errorf("output missing variant header:\n%s", out)
	}
	if !strings.Contains(out, "tap escape") || !strings.Contains(out, "tap grave") {
		t.Errorf("output missing emissions:\n%s", out)
	}
}

func TestRunDemoInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Variant = "hold"

	var buf bytes.Buffer
	if code := runDemo(cfg, &buf); code == 0 {
		t.Error("runDemo succeeded with invalid config")
	}
}
