package core

import (
	"path/filepath"
	"strings"
	"testing"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestHashContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty content", content: "", want: "0"},
		{name: "single byte", content: "a", want: "2p"},
		{name: "two bytes", content: "ab", want: "2e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashContent([]byte(tt.content)); got != tt.want {
				t.Errorf("HashContent(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestHashContentDiffers(t *testing.T) {
	a := HashContent([]byte(".logo { color: red; }"))
	b := HashContent([]byte(".logo { color: blue; }"))
	if a == b {
		t.Errorf("expected different hashes, both were %q", a)
	}
}

func TestModuleNameForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "css/header.module.css", want: "Header"},
		{path: "footer.module.css", want: "Footer"},
		{path: "hero.css", want: "Hero"},
		{path: "", want: "Module"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ModuleNameForPath(tt.path); got != tt.want {
				t.Errorf("ModuleNameForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestScopedClassName(t *testing.T) {
	if got := ScopedClassName("Header", "logo", "abc"); got != "Header_logo__abc" {
		t.Errorf("unexpected scoped class %q", got)
	}
}

func TestAssetName(t *testing.T) {
	got := AssetName("styles.css", []byte("a"))
	if got != "styles.2p.css" {
		t.Errorf("AssetName = %q, want styles.2p.css", got)
	}
}

func TestIsAssetName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"styles.2p.css", true},
		{AssetName("styles.css", []byte(".a { top: 0 }")), true},
		{"styles.css", false},
		{"styles..css", false},
		{"styles.2P.css", false},
		{"styles.2p.js", false},
		{"main.2p.css", false},
		{"styles.zzzzzzzz.css", false},
		{"styles.a-b.css", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAssetName("styles.css", tt.name); got != tt.want {
				t.Errorf("IsAssetName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestValidateOutDir(t *testing.T) {
	tests := []struct {
		dir     string
		wantErr string
	}{
		{dir: "dist"},
		{dir: "./build/site"},
		{dir: "", wantErr: "cannot be empty"},
		{dir: "   ", wantErr: "cannot be empty"},
		{dir: "/", wantErr: "filesystem root"},
		{dir: "../dist", wantErr: "parent directory"},
		{dir: "..", wantErr: "parent directory"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			err := ValidateOutDir(tt.dir)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCalculateOutputPaths(t *testing.T) {
	paths := CalculateOutputPaths("dist", "styles.abc.css")

	if paths.HTML != filepath.Join("dist", "index.html") {
		t.Errorf("unexpected HTML path %s", paths.HTML)
	}
	if paths.CSS != filepath.Join("dist", "styles.abc.css") {
		t.Errorf("unexpected CSS path %s", paths.CSS)
	}
	if paths.Manifest != filepath.Join("dist", "manifest.json") {
		t.Errorf("unexpected manifest path %s", paths.Manifest)
	}
}

func TestAssetHref(t *testing.T) {
	if got := AssetHref("styles.css", false); got != "/styles.css" {
		t.Errorf("absolute href = %q", got)
	}
	if got := AssetHref("/styles.css", true); got != "styles.css" {
		t.Errorf("relative href = %q", got)
	}
}

func TestManifest(t *testing.T) {
	page := RenderedPage{CSS: []byte("a"), CSSName: "styles.2p.css"}
	man := NewManifest(page)

	data, err := man.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	parsed, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	htmlPath, cssHref := GetAssets(parsed, "index")
	if htmlPath != "/index.html" {
		t.Errorf("expected /index.html, got %s", htmlPath)
	}
	if cssHref != "/styles.2p.css" {
		t.Errorf("expected /styles.2p.css, got %s", cssHref)
	}
	if parsed.Entries["index"].Hash != "2p" {
		t.Errorf("expected hash 2p, got %s", parsed.Entries["index"].Hash)
	}
}

func TestGetAssetsFallback(t *testing.T) {
	htmlPath, cssHref := GetAssets(nil, "index")
	if htmlPath != "/index.html" || cssHref != "" {
		t.Errorf("unexpected fallback %q %q", htmlPath, cssHref)
	}
}

func TestParseManifestInvalid(t *testing.T) {
	if _, err := ParseManifest([]byte("{")); err == nil {
		t.Error("expected error for truncated manifest")
	}
}

func TestDocument(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var b strings.Builder
		if err := WriteDocument(&b, Shell{}, h.P(g.Text("hi"))); err != nil {
			t.Fatalf("WriteDocument: %v", err)
		}
		got := b.String()

		if !strings.HasPrefix(got, "<!doctype html>") {
			t.Errorf("expected doctype prefix, got %q", got)
		}
		for _, want := range []string{`<html lang="en">`, "<title>DevPortfolio</title>", "<body><p>hi</p></body>"} {
			if !strings.Contains(got, want) {
				t.Errorf("expected %q in %q", want, got)
			}
		}
		if strings.Contains(got, "stylesheet") {
			t.Errorf("expected no stylesheet link, got %q", got)
		}
		if strings.Contains(got, `name="description"`) {
			t.Errorf("expected no description meta, got %q", got)
		}
	})

	t.Run("custom shell", func(t *testing.T) {
		var b strings.Builder
		shell := Shell{Title: "Me", Lang: "pt", Description: "About me", StylesheetHref: "/styles.css"}
		if err := WriteDocument(&b, shell, h.P()); err != nil {
			t.Fatalf("WriteDocument: %v", err)
		}
		got := b.String()

		for _, want := range []string{
			`<html lang="pt">`,
			"<title>Me</title>",
			`<meta name="description" content="About me">`,
			`<link rel="stylesheet" href="/styles.css">`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("expected %q in %q", want, got)
			}
		}
	})
}
