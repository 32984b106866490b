// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package launch

import (
	"errors"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	failCmds      map[string]bool // "bin arg1 arg2" -> whether Run/Start fails
	calls         []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) record(name string, args []string) error {
	key := name + " " + strings.Join(args, " ")
	m.calls = append(m.calls, key)
	if m.failCmds[key] {
		return errors.New("command failed: " + key)
	}
	return nil
}

func (m *mockExecutor) Run(name string, args ...string) error {
	return m.record(name, args)
}

func (m *mockExecutor) Start(name string, args ...string) error {
	return m.record(name, args)
}

func TestNewOpener_PerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "explorer"},
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			o := newOpener(tt.goos, &mockExecutor{})
			if o.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", o.Name(), tt.want)
			}
		})
	}
}

func TestOpener_Open(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		wantErr  string
		wantCall string
	}{
		{
			name:     "starts the browser",
			exec:     &mockExecutor{availableBins: map[string]bool{"xdg-open": true}},
			wantCall: "xdg-open /tmp/out",
		},
		{
			name:    "browser missing",
			exec:    &mockExecutor{availableBins: map[string]bool{}},
			wantErr: "not available",
		},
		{
			name: "start fails",
			exec: &mockExecutor{
				availableBins: map[string]bool{"xdg-open": true},
				failCmds:      map[string]bool{"xdg-open /tmp/out": true},
			},
			wantErr:  "opening /tmp/out",
			wantCall: "xdg-open /tmp/out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newOpener("linux", tt.exec).Open("/tmp/out")
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantCall != "" && (len(tt.exec.calls) != 1 || tt.exec.calls[0] != tt.wantCall) {
				t.Errorf("calls = %v, want [%s]", tt.exec.calls, tt.wantCall)
			}
		})
	}
}

func TestDetectOffice(t *testing.T) {
	tests := []struct {
		name     string
		bins     map[string]bool
		wantName string
		wantErr  bool
	}{
		{name: "soffice available", bins: map[string]bool{"soffice": true, "libreoffice": true}, wantName: "soffice"},
		{name: "libreoffice fallback", bins: map[string]bool{"libreoffice": true}, wantName: "libreoffice"},
		{name: "neither available", bins: map[string]bool{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := detectOffice(&mockExecutor{availableBins: tt.bins})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if o.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", o.Name(), tt.wantName)
			}
		})
	}
}

func TestOffice_ConvertToPDF(t *testing.T) {
	exec := &mockExecutor{availableBins: map[string]bool{"soffice": true}}
	o, err := detectOffice(exec)
	if err != nil {
		t.Fatal(err)
	}

	if err := o.ConvertToPDF("/out/Doc.docx", "/out"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "soffice --headless --convert-to pdf --outdir /out /out/Doc.docx"
	if len(exec.calls) != 1 || exec.calls[0] != want {
		t.Errorf("calls = %v, want [%s]", exec.calls, want)
	}

	exec.failCmds = map[string]bool{want: true}
	if err := o.ConvertToPDF("/out/Doc.docx", "/out"); err == nil {
		t.Error("expected conversion error")
	}
}
