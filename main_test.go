package main

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exticons/icon"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(args, &out, log.New(&logs, "", 0))
	return out.String(), err
}

func TestRunSVGWithVerify(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")

	out, err := runCmd(t, "-out", dir, "-format", "svg", "-verify")
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, out)
	}

	for _, size := range []int{16, 48, 128} {
		path := icon.IconPath(dir, size, "svg")
		if !strings.Contains(out, "Created "+path) {
			t.Errorf("output does not report %s", path)
		}
		if !strings.Contains(out, "✓ "+path) {
			t.Errorf("output does not verify %s", path)
		}
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "icons.yaml")
	fileDir := filepath.Join(tmpDir, "from-file")
	flagDir := filepath.Join(tmpDir, "from-flag")

	content := "output_dir: " + fileDir + "\nsizes: [24]\nformat: svg\n"
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCmd(t, "-config", configFile, "-out", flagDir); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// Sizes and format come from the file, the directory from the flag
	if _, err := os.Stat(icon.IconPath(flagDir, 24, "svg")); err != nil {
		t.Errorf("icon24.svg not written to the flag directory: %v", err)
	}
	if _, err := os.Stat(fileDir); !os.IsNotExist(err) {
		t.Errorf("config file directory should not be used, stat err = %v", err)
	}
}

func TestRunConfigFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "icons.yaml")
	outDir := filepath.Join(tmpDir, "env-icons")

	content := "output_dir: " + outDir + "\nsizes: [32]\nformat: svg\n"
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ICONGEN_CONFIG", configFile)

	if _, err := runCmd(t); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(icon.IconPath(outDir, 32, "svg")); err != nil {
		t.Errorf("icon32.svg not written: %v", err)
	}
}

func TestRunCheckOnly(t *testing.T) {
	dir := t.TempDir()

	out, err := runCmd(t, "-out", dir, "-check")
	if err == nil {
		t.Fatal("checking an empty directory should fail")
	}
	if !strings.Contains(err.Error(), "3 of 3") {
		t.Errorf("error = %v, want all three icons reported", err)
	}
	if strings.Contains(out, "Created") {
		t.Errorf("-check must not generate icons:\n%s", out)
	}
}

func TestRunCheckHonorsFormat(t *testing.T) {
	if !icon.RasterAvailable() {
		t.Skip("raster backend not compiled in")
	}
	dir := t.TempDir()

	if out, err := runCmd(t, "-out", dir, "-format", "png"); err != nil {
		t.Fatalf("png run error = %v\n%s", err, out)
	}
	if out, err := runCmd(t, "-out", dir, "-format", "svg"); err != nil {
		t.Fatalf("svg run error = %v\n%s", err, out)
	}
	for _, size := range icon.DefaultSizes {
		if err := os.WriteFile(icon.IconPath(dir, size, "svg"), []byte("garbage"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Valid PNGs sit next to the broken SVGs and must not stand in for them
	out, err := runCmd(t, "-out", dir, "-check", "-format", "svg")
	if err == nil {
		t.Fatalf("-check -format svg passed over broken SVGs:\n%s", out)
	}
	if !strings.Contains(err.Error(), "3 of 3") {
		t.Errorf("error = %v, want all three icons reported", err)
	}
	if strings.Contains(out, ".png") {
		t.Errorf("-check -format svg looked at PNGs:\n%s", out)
	}

	if out, err := runCmd(t, "-out", dir, "-check", "-format", "png"); err != nil {
		t.Errorf("-check -format png error = %v\n%s", err, out)
	}
	if _, err := runCmd(t, "-out", dir, "-check"); err != nil {
		t.Errorf("-check with auto format should prefer the PNGs, error = %v", err)
	}
}

func TestRunVerifyChecksWrittenFiles(t *testing.T) {
	dir := t.TempDir()

	// Stale PNGs from an earlier run, deliberately the wrong size
	for _, size := range icon.DefaultSizes {
		f, err := os.Create(icon.IconPath(dir, size, "png"))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}

	out, err := runCmd(t, "-out", dir, "-format", "svg", "-verify")
	if err != nil {
		t.Fatalf("run() error = %v\n%s", err, out)
	}
	for _, size := range icon.DefaultSizes {
		if path := icon.IconPath(dir, size, "svg"); !strings.Contains(out, "✓ "+path) {
			t.Errorf("output does not verify %s", path)
		}
	}
	if strings.Contains(out, ".png") {
		t.Errorf("-verify looked at files this run did not write:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Bad Sizes", []string{"-sizes", "16,x"}},
		{"Negative Size", []string{"-sizes", "-16"}},
		{"Bad Format", []string{"-format", "gif"}},
		{"Missing Config", []string{"-config", "/nonexistent/icons.yaml"}},
		{"Unknown Flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-out", t.TempDir()}, tt.args...)
			if _, err := runCmd(t, args...); err == nil {
				t.Errorf("run(%v) = nil, want error", tt.args)
			}
		})
	}
}
