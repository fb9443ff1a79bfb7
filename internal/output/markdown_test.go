package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarkdownFormatter_Format(t *testing.T) {
	r := BuildReport(sampleCourses(t), nil)
	r.DataDir = "/home/mhs/.uttrack"

	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf, false, "").Format(r); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Study Progress Report",
		"**Data:** `/home/mhs/.uttrack`",
		"| Courses | 3 |",
		"| Credit units | 6 |",
		"| 1 | Pancasila | Hanya UAS | 2 | - | 90.00 | 90.00 | A (4.00) | 8.00 |",
		`Lab \| Fisika`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "### 1. Pancasila") {
		t.Error("Details should only be shown in verbose mode")
	}
}

func TestMarkdownFormatter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf, true, "").Format(BuildReport(sampleCourses(t), nil)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "### 1. Pancasila") {
		t.Errorf("Expected per-course details in verbose mode\n%s", buf.String())
	}
}

func TestMarkdownFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf, false, "").Format(BuildReport(nil, nil)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "*No courses to show.*") {
		t.Errorf("Expected empty-state text\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "| Highest / lowest / average | - / - / - |") {
		t.Errorf("Expected placeholder scores\n%s", buf.String())
	}
}

func TestEscapeCell(t *testing.T) {
	if got := escapeCell("a|b\nc"); got != `a\|b c` {
		t.Errorf("escapeCell() = %q", got)
	}
}
