package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-sh/internal/config"
)

func testConfig(order int) *config.Config {
	cfg := config.Default()
	cfg.SH.Order = order
	return cfg
}

func runCmd(t *testing.T, cfg *config.Config, name string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := run(name, args, cfg, &out); err != nil {
		t.Fatalf("%s %v: %v", name, args, err)
	}
	return out.String()
}

// parseField reads the values of a "name: v0 v1 ..." line.
func parseField(t *testing.T, out, name string) []float64 {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		rest, ok := strings.CutPrefix(line, name+": ")
		if !ok {
			continue
		}
		var vals []float64
		for _, s := range strings.Fields(rest) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				t.Fatalf("field %s: %v", name, err)
			}
			vals = append(vals, v)
		}
		return vals
	}
	t.Fatalf("field %s not found in %q", name, out)
	return nil
}

func TestEvalBasis(t *testing.T) {
	got := runCmd(t, testConfig(2), "eval", "-dir", "0,0,1")
	if want := "basis: 0.282095 0 0.488603 0\n"; got != want {
		t.Errorf("eval = %q, want %q", got, want)
	}
}

func TestEvalFunction(t *testing.T) {
	// Only the constant term: the value is c0*Y00 everywhere.
	got := runCmd(t, testConfig(2), "e", "-dir", "1,2,3", "-coeffs", "3.5449077018110318,0,0,0")
	if want := "value: 1\n"; got != want {
		t.Errorf("eval = %q, want %q", got, want)
	}
}

func TestProductWithOne(t *testing.T) {
	got := runCmd(t, testConfig(2), "product", "-f", "3.544907701811032,0,0,0", "-g", "0.5,-1,2,0.25")
	if want := "coeffs: 0.5 -1 2 0.25\n"; got != want {
		t.Errorf("product = %q, want %q", got, want)
	}
}

func TestRotateMatchesRotateZ(t *testing.T) {
	cfg := testConfig(3)
	cfg.SH.Precision = 12
	coeffs := "0.3,-0.2,0.7,0.1,0.4,-0.5,0.25,0.9,-0.6"

	euler := parseField(t, runCmd(t, cfg, "rotate", "-coeffs", coeffs, "-euler", "0,0,90"), "coeffs")
	axis := parseField(t, runCmd(t, cfg, "rotate", "-coeffs", coeffs, "-axis", "0,0,2", "-angle", "90"), "coeffs")
	quat := parseField(t, runCmd(t, cfg, "rotate", "-coeffs", coeffs, "-quat", "0,0,1,1"), "coeffs")
	z := parseField(t, runCmd(t, cfg, "rz", "-coeffs", coeffs, "-angle", "90"), "coeffs")

	if len(euler) != 9 || len(axis) != 9 || len(quat) != 9 || len(z) != 9 {
		t.Fatalf("got %d, %d, %d and %d coefficients, want 9", len(euler), len(axis), len(quat), len(z))
	}
	for i := range z {
		if math.Abs(euler[i]-z[i]) > 1e-5 || math.Abs(axis[i]-z[i]) > 1e-5 || math.Abs(quat[i]-z[i]) > 1e-5 {
			t.Errorf("coefficient %d: euler %v, axis %v, quat %v, rotatez %v", i, euler[i], axis[i], quat[i], z[i])
		}
	}
}

func TestLightYAMLOutput(t *testing.T) {
	cfg := testConfig(2)
	cfg.Output.Format = config.FormatYAML

	out := runCmd(t, cfg, "light", "-kind", "directional", "-dir", "0,1,0", "-color", "1,0.5,0")

	var result map[string][]float64
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	r, g, b := result["r"], result["g"], result["b"]
	if len(r) != 4 || len(g) != 4 || len(b) != 4 {
		t.Fatalf("unexpected output %v", result)
	}
	if math.Abs(r[0]-1.18164) > 1e-5 || math.Abs(r[1]+2.04665) > 1e-5 {
		t.Errorf("r = %v, want [1.18164 -2.04665 0 0]", r)
	}
	if math.Abs(g[0]-0.5*r[0]) > 1e-5 || b[0] != 0 {
		t.Errorf("g = %v, b = %v", g, b)
	}
}

func TestLightLambert(t *testing.T) {
	// A convolved directional light reproduces its color at the light direction.
	out := runCmd(t, testConfig(4), "light", "-dir", "1,1,0", "-lambert")
	r := parseField(t, out, "r")

	var coeffs []string
	for _, v := range r {
		coeffs = append(coeffs, strconv.FormatFloat(v, 'g', -1, 64))
	}
	v := parseField(t, runCmd(t, testConfig(4), "eval", "-dir", "1,1,0", "-coeffs", strings.Join(coeffs, ",")), "value")
	if math.Abs(v[0]-1) > 1e-4 {
		t.Errorf("exit radiance = %v, want 1", v[0])
	}
}

func TestBakeScene(t *testing.T) {
	scene := filepath.Join(t.TempDir(), "lights.yaml")
	content := `
lights:
  - name: key
    kind: directional
    direction: {x: 0, y: 1, z: 0}
    color: [1, 1, 1]
`
	if err := os.WriteFile(scene, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out := runCmd(t, testConfig(3), "bake", "-scene", scene, "-normal", "0,1,0")
	if got := parseField(t, out, "r"); len(got) != 9 {
		t.Errorf("baked %d red coefficients, want 9", len(got))
	}
	diffuse := parseField(t, out, "diffuse")
	for i, v := range diffuse {
		if math.Abs(v-1) > 1e-6 {
			t.Errorf("diffuse channel %d = %v, want 1", i, v)
		}
	}
}

func TestBakeConfigScene(t *testing.T) {
	var out bytes.Buffer
	err := run("bake", nil, testConfig(3), &out)
	if err == nil {
		t.Fatal("expected an error baking an empty scene")
	}
}

func TestInfo(t *testing.T) {
	got := runCmd(t, testConfig(3), "info")
	want := "order: 3\ncoefficients: 9\nbands: l=0 0..0, l=1 1..3, l=2 4..8\n"
	if got != want {
		t.Errorf("info = %q, want %q", got, want)
	}
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	cfg := testConfig(5)

	out := runCmd(t, cfg, "config", "-save", path)
	if !strings.Contains(out, "order: 5") {
		t.Errorf("config output missing order:\n%s", out)
	}
	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not saved: %v", err)
	}
	if string(saved) != out {
		t.Errorf("saved config differs from printed config")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		args []string
		want error
	}{
		{"unknown command", "transmogrify", nil, errUnknownCommand},
		{"zero direction", "eval", []string{"-dir", "0,0,0"}, errZeroVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.cmd, tt.args, testConfig(3), &out); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	failures := []struct {
		name string
		cmd  string
		args []string
	}{
		{"rotate without rotation", "rotate", []string{"-coeffs", "1,0,0,0"}},
		{"rotate with both", "rotate", []string{"-coeffs", "1,0,0,0", "-euler", "0,0,1", "-axis", "0,0,1"}},
		{"rotate with euler and quat", "rotate", []string{"-coeffs", "1,0,0,0", "-euler", "0,0,1", "-quat", "0,0,0,1"}},
		{"short quaternion", "rotate", []string{"-coeffs", "1,0,0,0", "-quat", "0,0,1"}},
		{"zero quaternion", "rotate", []string{"-coeffs", "1,0,0,0", "-quat", "0,0,0,0"}},
		{"product missing g", "product", []string{"-f", "1,0,0,0"}},
		{"short coefficients", "rotatez", []string{"-coeffs", "1,0,0", "-angle", "10"}},
		{"bad color", "light", []string{"-color", "1,2"}},
		{"unknown light kind", "light", []string{"-kind", "laser"}},
		{"missing scene", "bake", []string{"-scene", "/nonexistent/lights.yaml"}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.cmd, tt.args, testConfig(3), &out); err == nil {
				t.Errorf("expected an error, got output %q", out.String())
			}
		})
	}
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run("help", nil, testConfig(3), &out); err != nil {
		t.Fatal(err)
	}
	for _, c := range commands {
		if !strings.Contains(out.String(), c.usage) {
			t.Errorf("usage does not mention %s", c.name)
		}
	}
}
