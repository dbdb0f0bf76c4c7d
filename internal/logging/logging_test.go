package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kinema.log")
	log, err := Setup(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	log.Info("scene compiled", "elements", 3)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"scene compiled"`) {
		t.Fatalf("unexpected log contents: %s", data)
	}
}

func TestDiscardNeverFails(t *testing.T) {
	log := Discard()
	log.Info("dropped")
	log.Error("also dropped")
}
