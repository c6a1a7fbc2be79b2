package header

import (
	"testing"
	"time"
)

func TestHeaderInit(t *testing.T) {
	var h Header
	h.Init(KindCheckReport, "v1", "1.2.3")

	if h.Kind != KindCheckReport {
		t.Errorf("Kind = %q, want %q", h.Kind, KindCheckReport)
	}
	if h.APIVersion != "v1" {
		t.Errorf("APIVersion = %q, want %q", h.APIVersion, "v1")
	}
	if h.Metadata["version"] != "1.2.3" {
		t.Errorf("Metadata[version] = %q, want %q", h.Metadata["version"], "1.2.3")
	}

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	if err != nil {
		t.Fatalf("timestamp is not RFC3339: %v", err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("timestamp %v is stale", ts)
	}
}

func TestHeaderInitOmitsEmptyVersion(t *testing.T) {
	var h Header
	h.Init(KindProbeResult, "v1", "")

	if _, ok := h.Metadata["version"]; ok {
		t.Error("empty version should not be recorded")
	}
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindSanitizeResult, KindCheckReport, KindProbeResult} {
		if !k.IsValid() {
			t.Errorf("Kind %q should be valid", k)
		}
	}

	unknown := Kind("Recipe")
	if unknown.IsValid() {
		t.Errorf("Kind %q should be invalid", unknown)
	}
}
