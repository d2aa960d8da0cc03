package commands

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompareFiles(t *testing.T) {
	cases := []struct {
		name   string
		left   string
		right  string
		differ bool
	}{
		{"equal", `{"Image": "ubuntu", "WorkingDirectory": "/"}`, `{"WorkingDirectory": "/", "Image": "ubuntu"}`, false},
		{"unknown keys ignored", `{"Image": "ubuntu"}`, `{"Image": "ubuntu", "Extra": 1}`, false},
		{"different value", `{"Image": "ubuntu"}`, `{"Image": "alpine"}`, true},
		{"unset versus empty", `{}`, `{"Entrypoint": []}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			left, right := writePayload(t, tc.left), writePayload(t, tc.right)

			report, err := compareFiles(left, right, "docker", nil)
			if !tc.differ {
				if err != nil || report != "" {
					t.Errorf("expected equal models, got %q, %v", report, err)
				}
				return
			}

			if !errors.Is(err, ErrModelsDiffer) {
				t.Fatalf("expected ErrModelsDiffer, got %v", err)
			}
			if !strings.Contains(report, "--- "+left) || !strings.Contains(report, "+++ "+right) {
				t.Errorf("expected both paths in the report, got %q", report)
			}
		})
	}
}

func TestCompareFilesErrors(t *testing.T) {
	valid := writePayload(t, `{"Image": "ubuntu"}`)

	if _, err := compareFiles(filepath.Join(t.TempDir(), "missing.json"), valid, "docker", nil); err == nil || errors.Is(err, ErrModelsDiffer) {
		t.Errorf("expected a read error, got %v", err)
	}

	invalid := writePayload(t, `{"Image": 1}`)
	if _, err := compareFiles(valid, invalid, "docker", nil); err == nil || errors.Is(err, ErrModelsDiffer) {
		t.Errorf("expected a decode error, got %v", err)
	}
}
