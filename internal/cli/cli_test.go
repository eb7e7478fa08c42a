package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rescale/circular-pager/internal/pager"
)

// execute runs the root command with a private config path.
func execute(t *testing.T, configFile string, args ...string) (string, error) {
	t.Helper()
	cfgFile, verbose, debug = "", false, false

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", configFile}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "pager.conf")
}

func TestSimulateDragThenSettle(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--pages", "5", "drag:150", "settle:150")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}

	want := strings.Join([]string{
		"> init",
		"  changed: index=0 page=A",
		"  offset=500 actual=5 attached: E@400 [A@500] B@600",
		"> drag:150",
		"  changed: index=2 page=C",
		"  offset=150 actual=2 attached: B@100 [C@200] D@300",
		"> settle:150",
		"  offset=700 actual=7 attached: B@600 [C@700] D@800",
		"",
	}, "\n")
	if out != want {
		t.Errorf("simulate output =\n%s\nwant\n%s", out, want)
	}
}

func TestSimulateLinearOverscroll(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--pages", "2", "settle:5p")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "  changed: index=1 page=B\n  offset=100 actual=1 attached: A@0 [B@100]\n") {
		t.Errorf("expected overscroll to stop at the last page, got\n%s", out)
	}
}

func TestSimulateCleared(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--pages", "3", "pages:0")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "  changed: no current page\n  offset=0 actual=- attached:") {
		t.Errorf("expected an empty list to clear the current page, got\n%s", out)
	}
}

func TestSimulateInitialIndex(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--pages", "4", "--index", "2")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "  changed: index=2 page=C\n  offset=600 actual=6 attached: B@500 [C@600] D@700\n") {
		t.Errorf("expected C current in the middle copy, got\n%s", out)
	}
}

func TestSimulateEvents(t *testing.T) {
	out, err := execute(t, tempConfig(t), "simulate", "--pages", "5", "--events", "settle:530")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "  settled: raw=530 snapped=500 actual=5\n") {
		t.Errorf("expected a settled event, got\n%s", out)
	}
}

func TestSimulateThresholdFromConfig(t *testing.T) {
	path := tempConfig(t)
	content := "[pager]\npreload_radius = 1\ncircular_threshold = 6\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := execute(t, path, "simulate", "--pages", "5")
	if err != nil {
		t.Fatalf("simulate error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "  offset=0 actual=0 attached: [A@0] B@100\n") {
		t.Errorf("expected a linear list below the configured threshold, got\n%s", out)
	}
}

func TestSimulateErrors(t *testing.T) {
	_, err := execute(t, tempConfig(t), "simulate", "fling:3")
	if !errors.Is(err, ErrInvalidStep) {
		t.Errorf("unknown step error = %v, want ErrInvalidStep", err)
	}

	_, err = execute(t, tempConfig(t), "simulate", "--threshold", "2")
	if !errors.Is(err, pager.ErrThresholdTooSmall) {
		t.Errorf("threshold error = %v, want ErrThresholdTooSmall", err)
	}
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		arg       string
		kind      stepKind
		offset    float64
		pageUnits bool
		n         int
		wantErr   bool
	}{
		{arg: "drag:150", kind: stepDrag, offset: 150},
		{arg: "drag:-20", kind: stepDrag, offset: -20},
		{arg: "settle:1.5p", kind: stepSettle, offset: 1.5, pageUnits: true},
		{arg: "index:3", kind: stepIndex, n: 3},
		{arg: "index:-1", kind: stepIndex, n: -1},
		{arg: "clear", kind: stepClear},
		{arg: "pages:0", kind: stepPages},
		{arg: "reverse", kind: stepReverse},
		{arg: "resize:320", kind: stepResize, n: 320},
		{arg: "drag", wantErr: true},
		{arg: "drag:abc", wantErr: true},
		{arg: "settle:p", wantErr: true},
		{arg: "index:1.5", wantErr: true},
		{arg: "pages:-2", wantErr: true},
		{arg: "resize:0", wantErr: true},
		{arg: "clear:1", wantErr: true},
		{arg: "jump:2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseStep(tt.arg)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStep) {
					t.Errorf("parseStep(%q) error = %v, want ErrInvalidStep", tt.arg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseStep(%q) error = %v", tt.arg, err)
			}
			if got.kind != tt.kind || got.offset != tt.offset || got.pageUnits != tt.pageUnits || got.n != tt.n {
				t.Errorf("parseStep(%q) = %+v", tt.arg, got)
			}
		})
	}
}

func TestStepResolve(t *testing.T) {
	s := step{offset: 1.5, pageUnits: true}
	if got := s.resolve(200); got != 300 {
		t.Errorf("resolve(200) = %v, want 300", got)
	}
	s = step{offset: 42}
	if got := s.resolve(200); got != 42 {
		t.Errorf("resolve(200) = %v, want 42", got)
	}
}

func TestConfigInitShowPath(t *testing.T) {
	path := tempConfig(t)

	out, err := execute(t, path, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", strings.TrimSpace(out), path)
	}

	out, err = execute(t, path, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "not found, using defaults") {
		t.Errorf("expected defaults note before init, got\n%s", out)
	}

	if _, err := execute(t, path, "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config init did not write %s: %v", path, err)
	}

	out, err = execute(t, path, "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(out, "already exists") {
		t.Errorf("expected existing config notice, got\n%s", out)
	}

	out, err = execute(t, path, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"[pager]", "preload_radius     = 1", "circular_threshold = 3", "settle_delay_ms    = 150"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestRootCommands(t *testing.T) {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	for _, name := range []string{"simulate", "demo", "config", "completion"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
	if rootCmd.Version == "" {
		t.Error("Version is empty")
	}
}
