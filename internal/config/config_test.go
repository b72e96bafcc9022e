package config

import "testing"

func TestParseAppliesDefaults(t *testing.T) {
	cli, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cli.BridgeName != "aethel0" {
		t.Fatalf("expected default bridge name, got %q", cli.BridgeName)
	}
	if cli.ListenAddr != "[::1]:50051" {
		t.Fatalf("expected default listen addr, got %q", cli.ListenAddr)
	}
}

func TestParseOverridesFromFlags(t *testing.T) {
	cli, err := Parse([]string{"--bridge-name=br-test", "--log-level=debug"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cli.BridgeName != "br-test" {
		t.Fatalf("expected overridden bridge name, got %q", cli.BridgeName)
	}
	if cli.LogLevel != "debug" {
		t.Fatalf("expected overridden log level, got %q", cli.LogLevel)
	}
}

func TestExtractConfigFlagHandlesBothForms(t *testing.T) {
	if got := extractConfigFlag([]string{"--config", "/etc/aetheld.yaml"}); got != "/etc/aetheld.yaml" {
		t.Fatalf("space form: got %q", got)
	}
	if got := extractConfigFlag([]string{"--config=/etc/aetheld.yaml"}); got != "/etc/aetheld.yaml" {
		t.Fatalf("equals form: got %q", got)
	}
	if got := extractConfigFlag([]string{"--bridge-name=x"}); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
