package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/fontcode/internal/config"
	"github.com/tsawler/fontcode/store"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()

	stores := map[store.Family]int{store.HZK: 94 * 94 * 24, store.ASC: 95 * 12}
	for family, n := range stores {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 31)
		}
		path := store.Path(root, family, 12)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return config.Config{AssetsDir: root, LogLevel: "error", Dialect: "c51"}
}

func TestRunSupported(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"supported"}, testConfig(t), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if got, want := out.String(), "ASC\t12\nHZK\t12\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunUsageErrors(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"render"}},
		{"missing text", []string{"generate"}},
		{"two characters", []string{"preview", "ab"}},
		{"bad flag", []string{"generate", "-bogus", "A"}},
		{"bad format", []string{"preview", "-format", "gif", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, cfg, &bytes.Buffer{})
			if !errors.Is(err, errUsage) {
				t.Errorf("error = %v, want usage error", err)
			}
		})
	}
}

func TestRunGenerate(t *testing.T) {
	var out bytes.Buffer
	args := []string{"generate", "-family", "ASC", "-size", "12", "-name", "hello", "A"}
	if err := run(args, testConfig(t), &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "unsigned char code hello[] = {\n") {
		t.Errorf("unexpected declaration:\n%s", got)
	}
	if n := strings.Count(got, "0x"); n != 12 {
		t.Errorf("got %d literals, want 12", n)
	}
}

func TestRunGenerateErrors(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unsupported size", []string{"generate", "-size", "16", "中"}, store.ErrUnsupportedSize},
		{"unsupported family", []string{"generate", "-family", "GBK", "中"}, store.ErrUnsupportedFamily},
		{"missing store", []string{"generate", "-assets", t.TempDir(), "中"}, store.ErrStoreNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, cfg, &bytes.Buffer{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunGenerateDecode(t *testing.T) {
	cfg := testConfig(t)
	src := filepath.Join(t.TempDir(), "font.c")

	packing := []string{"-arrangement", "vertical", "-mode", "vertical_lower", "-invert"}

	gen := append([]string{"generate", "-o", src}, packing...)
	if err := run(append(gen, "字库"), cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var decoded bytes.Buffer
	dec := append([]string{"decode"}, packing...)
	if err := run(append(dec, src), cfg, &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	var want bytes.Buffer
	for i, char := range []string{"字", "库"} {
		if i > 0 {
			want.WriteString("\n")
		}
		if err := run([]string{"preview", char}, cfg, &want); err != nil {
			t.Fatal(err)
		}
	}

	if decoded.String() != want.String() {
		t.Errorf("decoded glyphs differ from previews:\n%s\nwant:\n%s", decoded.String(), want.String())
	}
}

func TestRunPreviewFormats(t *testing.T) {
	cfg := testConfig(t)

	var text bytes.Buffer
	if err := run([]string{"preview", "中"}, cfg, &text); err != nil {
		t.Fatalf("text preview failed: %v", err)
	}
	if n := strings.Count(text.String(), "\n"); n != 12 {
		t.Errorf("text preview has %d lines, want 12", n)
	}

	var img bytes.Buffer
	if err := run([]string{"preview", "-format", "png", "-scale", "2", "中"}, cfg, &img); err != nil {
		t.Fatalf("png preview failed: %v", err)
	}
	decoded, err := png.Decode(&img)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("PNG is %dx%d, want 32x24", b.Dx(), b.Dy())
	}

	var page bytes.Buffer
	if err := run([]string{"preview", "-format", "html", "中"}, cfg, &page); err != nil {
		t.Fatalf("html preview failed: %v", err)
	}
	if n := strings.Count(page.String(), "<tr>"); n != 12 {
		t.Errorf("html preview has %d rows, want 12", n)
	}
}
