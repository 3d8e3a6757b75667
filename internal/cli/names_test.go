package cli

import (
	"hilog/pkg/protocol"
	"testing"
)

func TestParseLogType(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  protocol.LogType
		expectErr bool
	}{
		{"app name", "app", 0, false},
		{"core upper case", "CORE", 3, false},
		{"padded kmsg", " kmsg ", 4, false},
		{"numeric", "2", 2, false},
		{"largest code", "15", 15, false},
		{"code too large", "16", 0, true},
		{"unknown name", "security", 0, true},
		{"negative", "-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logType, err := ParseLogType(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q, got type %d", tt.input, logType)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if logType != tt.expected {
				t.Errorf("expected type %d, got %d", tt.expected, logType)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  protocol.LogLevel
		expectErr bool
	}{
		{"debug", "debug", 3, false},
		{"info", "info", 4, false},
		{"warn", "Warn", 5, false},
		{"error", "error", 6, false},
		{"fatal", "fatal", 7, false},
		{"numeric", "1", 1, false},
		{"code too large", "8", 0, true},
		{"unknown name", "verbose", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q, got level %d", tt.input, level)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if level != tt.expected {
				t.Errorf("expected level %d, got %d", tt.expected, level)
			}
		})
	}
}

func TestNamesForCodes(t *testing.T) {
	if got := LogTypeName(3); got != "core" {
		t.Errorf("expected core, got %s", got)
	}
	if got := LogTypeName(9); got != "9" {
		t.Errorf("expected unnamed type to print as 9, got %s", got)
	}
	if got := LogLevelName(6); got != "ERROR" {
		t.Errorf("expected ERROR, got %s", got)
	}
	if got := LogLevelName(0); got != "0" {
		t.Errorf("expected unnamed level to print as 0, got %s", got)
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  uint32
		expectErr bool
	}{
		{"zero", "0", 0, false},
		{"decimal", "1234", 1234, false},
		{"hex", "0xD003F00", 0xD003F00, false},
		{"max", "0xFFFFFFFF", 0xFFFFFFFF, false},
		{"overflow", "0x100000000", 0, true},
		{"garbage", "domain", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, err := ParseDomain(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if domain != tt.expected {
				t.Errorf("expected domain %#x, got %#x", tt.expected, domain)
			}
		})
	}
}
