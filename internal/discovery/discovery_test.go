package discovery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// TestFileType_String tests the String method for all FileType constants
func TestFileType_String(t *testing.T) {
	tests := []struct {
		name     string
		fileType FileType
		want     string
	}{
		{"JSON", FileTypeJSON, "json"},
		{"YAML", FileTypeYAML, "yaml"},
		{"Markdown", FileTypeMarkdown, "markdown"},
		{"Unknown", FileTypeUnknown, "unknown"},
		{"Invalid", FileType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fileType.String(); got != tt.want {
				t.Errorf("FileType.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseFileType tests conversion from string to FileType
func TestParseFileType(t *testing.T) {
	tests := []struct {
		input   string
		want    FileType
		wantErr bool
	}{
		{"json", FileTypeJSON, false},
		{" YAML ", FileTypeYAML, false},
		{"yml", FileTypeYAML, false},
		{"md", FileTypeMarkdown, false},
		{"csv", FileTypeUnknown, true},
		{"", FileTypeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFileType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFileType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFileType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		path    string
		want    FileType
		errPart string
	}{
		{"a/b/courses.json", FileTypeJSON, ""},
		{"COURSES.JSON", FileTypeJSON, ""},
		{"semester.yaml", FileTypeYAML, ""},
		{"semester.yml", FileTypeYAML, ""},
		{"notes/statistika.md", FileTypeMarkdown, ""},
		{"notes.txt", FileTypeUnknown, "unsupported file type"},
		{"Makefile", FileTypeUnknown, "no extension"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFileType(tt.path)
			if got != tt.want {
				t.Errorf("DetectFileType(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if tt.errPart == "" && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.errPart != "" && (err == nil || !strings.Contains(err.Error(), tt.errPart)) {
				t.Errorf("Expected error containing %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "2024-ganjil/aljabar.json", `{"name":"Aljabar"}`)
	writeFile(t, root, "2024-ganjil/nested/statistika.yaml", "name: Statistika\n")
	writeFile(t, root, "export.yml", "- name: A\n")
	writeFile(t, root, "README.md", "# notes")
	if err := os.MkdirAll(filepath.Join(root, "dir.json"), 0755); err != nil {
		t.Fatal(err)
	}

	fd := NewFileDiscovery(root)

	t.Run("default patterns", func(t *testing.T) {
		files, err := fd.DiscoverFiles()
		if err != nil {
			t.Fatalf("DiscoverFiles() error = %v", err)
		}
		var rels []string
		for _, f := range files {
			rels = append(rels, f.RelPath)
		}
		want := []string{"2024-ganjil/aljabar.json", "2024-ganjil/nested/statistika.yaml", "export.yml"}
		if strings.Join(rels, ",") != strings.Join(want, ",") {
			t.Errorf("Expected %v, got %v", want, rels)
		}
		if files[0].Type != FileTypeJSON || files[1].Type != FileTypeYAML {
			t.Errorf("Unexpected types %v, %v", files[0].Type, files[1].Type)
		}
		if string(files[0].Contents) != `{"name":"Aljabar"}` {
			t.Errorf("Unexpected contents %q", files[0].Contents)
		}
	})

	t.Run("overlapping patterns yield each file once", func(t *testing.T) {
		files, err := fd.DiscoverFiles("**/*.json", "2024-ganjil/*.json")
		if err != nil {
			t.Fatalf("DiscoverFiles() error = %v", err)
		}
		if len(files) != 1 {
			t.Errorf("Expected 1 file, got %d", len(files))
		}
	})

	t.Run("unsupported matches are skipped", func(t *testing.T) {
		files, err := fd.DiscoverFiles("*.md")
		if err != nil {
			t.Fatalf("DiscoverFiles() error = %v", err)
		}
		if len(files) != 0 {
			t.Errorf("Expected no files, got %d", len(files))
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		if _, err := fd.DiscoverFiles("[unclosed"); err == nil {
			t.Error("Expected an error for an invalid pattern")
		}
	})
}

func TestValidateFilePath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.json", "[]")
	writeFile(t, root, "empty.json", "")
	writeFile(t, root, "binary.json", "\x00\x01")

	tests := []struct {
		name    string
		path    string
		errPart string
	}{
		{"valid", filepath.Join(root, "ok.json"), ""},
		{"missing", filepath.Join(root, "nope.json"), "file not found"},
		{"directory", root, "is a directory"},
		{"empty", filepath.Join(root, "empty.json"), "file is empty"},
		{"binary", filepath.Join(root, "binary.json"), "binary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateFilePath(tt.path)
			if tt.errPart == "" {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Expected error containing %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "one.yml", "name: A\n")
	writeFile(t, root, "one.txt", "name: A\n")

	f, err := ReadFile(filepath.Join(root, "one.yml"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if f.Type != FileTypeYAML || f.RelPath != "one.yml" || f.Size != 8 {
		t.Errorf("Unexpected file %+v", f)
	}

	if _, err := ReadFile(filepath.Join(root, "one.txt")); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}
}
