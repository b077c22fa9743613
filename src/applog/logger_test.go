package applog

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	SetColor(false)
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel("info")
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	msg := fmt.Sprintf("export done size=%dx%d (%.1f%% of container)", 1000, 600, 100.0)
	// a message without args is logged verbatim
	emit := Infof
	emit(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of container)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")

	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Warnf("shown %d", 3)
	Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below warn leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Fatalf("expected warn and error lines, got: %s", out)
	}
}

func TestSetLogLevel_IgnoresUnknown(t *testing.T) {
	captureLog(t)
	SetLogLevel("error")
	SetLogLevel("verbose")
	if GetLogLevel() != LevelError {
		t.Fatalf("unknown level changed state: %v", GetLogLevel())
	}
	if _, ok := ParseLevel("Warning"); !ok {
		t.Fatalf("ParseLevel should accept warning alias")
	}
}
