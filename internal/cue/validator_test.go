package cue

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dotcommander/uttrack/internal/course"
)

func loadedValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas failed: %v", err)
	}
	return v
}

// canonical returns c as it is stored, decoded the way the store decodes it.
func canonical(t *testing.T, c course.Course) map[string]any {
	t.Helper()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	return m
}

// TestNewValidator tests the Validator constructor
func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
	if v.ctx == nil {
		t.Error("Validator.ctx is nil")
	}
	if len(v.schemas) != 0 {
		t.Errorf("Expected empty schemas map, got %d entries", len(v.schemas))
	}
}

// TestLoadSchemas tests loading embedded CUE schemas
func TestLoadSchemas(t *testing.T) {
	v := loadedValidator(t)
	if _, ok := v.schemas["course"]; !ok {
		t.Error("Expected schema \"course\" to be loaded")
	}
}

func TestValidateCourseBeforeLoad(t *testing.T) {
	v := NewValidator()
	if _, err := v.ValidateCourse(map[string]any{}); err == nil {
		t.Error("Expected an error when no schema is loaded")
	}
}

func TestValidateCourse(t *testing.T) {
	v := loadedValidator(t)

	edited, err := course.Apply(course.New("Statistika", 2, course.SchemeTuton), course.SetDiscussionScore{Session: 0, Value: "85.5"})
	if err != nil {
		t.Fatal(err)
	}
	edited, err = course.Apply(edited, course.SetExamSchedule{Value: "2025-01-12 07:30"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		data      func() map[string]any
		wantError bool
		wantPath  string
	}{
		{
			name:      "new course",
			data:      func() map[string]any { return canonical(t, course.New("Aljabar", 3, course.SchemeTuton)) },
			wantError: false,
		},
		{
			name:      "edited course",
			data:      func() map[string]any { return canonical(t, edited) },
			wantError: false,
		},
		{
			name:      "zero credit units keeps three modules",
			data:      func() map[string]any { return canonical(t, course.New("Kosong", 0, course.SchemeHanyaUAS)) },
			wantError: false,
		},
		{
			name:      "unknown scheme is allowed",
			data:      func() map[string]any { return canonical(t, course.New("Seminar", 1, "Seminar")) },
			wantError: false,
		},
		{
			name: "module count does not follow credit units",
			data: func() map[string]any {
				m := canonical(t, course.New("Aljabar", 3, course.SchemeTuton))
				m["finalExam"].(map[string]any)["modules"] = []any{false, true}
				return m
			},
			wantError: true,
			wantPath:  "finalExam",
		},
		{
			name: "short attendance list",
			data: func() map[string]any {
				m := canonical(t, course.New("Aljabar", 1, course.SchemeTuton))
				m["tutorial"].(map[string]any)["attendance"] = []any{true}
				return m
			},
			wantError: true,
			wantPath:  "tutorial",
		},
		{
			name: "credit units as text",
			data: func() map[string]any {
				m := canonical(t, course.New("Aljabar", 1, course.SchemeTuton))
				m["creditUnits"] = "1"
				return m
			},
			wantError: true,
			wantPath:  "creditUnits",
		},
		{
			name: "unsanitized schedule",
			data: func() map[string]any {
				m := canonical(t, course.New("Aljabar", 1, course.SchemeTuton))
				m["finalExam"].(map[string]any)["schedule"] = "25/12/2024 09:30"
				return m
			},
			wantError: true,
			wantPath:  "finalExam",
		},
		{
			name: "legacy field names",
			data: func() map[string]any {
				return map[string]any{"name": "Lama", "sks": "2", "uas": map[string]any{"target": "70"}}
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := v.ValidateCourse(tt.data())
			if err != nil {
				t.Fatalf("ValidateCourse() error = %v", err)
			}
			if hasErrors := len(errs) > 0; hasErrors != tt.wantError {
				t.Fatalf("ValidateCourse() errors = %v, wantError %v", errs, tt.wantError)
			}
			if tt.wantPath == "" {
				return
			}
			for _, e := range errs {
				if strings.HasPrefix(e.Path, tt.wantPath) {
					return
				}
			}
			t.Errorf("Expected an error under %q, got %v", tt.wantPath, errs)
		})
	}
}

func TestValidateCollection(t *testing.T) {
	v := loadedValidator(t)

	t.Run("not a list", func(t *testing.T) {
		errs, err := v.ValidateCollection(map[string]any{"name": "x"})
		if err != nil {
			t.Fatal(err)
		}
		if len(errs) != 1 || errs[0].Record != 0 {
			t.Fatalf("Expected one collection-level error, got %v", errs)
		}
		if !strings.Contains(errs[0].String(), "collection") {
			t.Errorf("Unexpected message %q", errs[0].String())
		}
	})

	t.Run("records are numbered from one", func(t *testing.T) {
		raw := []any{
			canonical(t, course.New("Baik", 1, course.SchemeTuton)),
			"junk",
			map[string]any{"name": "Lama", "sks": 2},
		}
		errs, err := v.ValidateCollection(raw)
		if err != nil {
			t.Fatal(err)
		}
		records := map[int]bool{}
		for _, e := range errs {
			records[e.Record] = true
		}
		if records[1] || !records[2] || !records[3] {
			t.Errorf("Expected errors for records 2 and 3 only, got %v", errs)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		errs, err := v.ValidateCollection([]any{})
		if err != nil {
			t.Fatal(err)
		}
		if len(errs) != 0 {
			t.Errorf("Expected no errors, got %v", errs)
		}
	})
}

func TestIntegral(t *testing.T) {
	got := integral(map[string]any{"a": 3.0, "b": []any{1.5, 2.0}, "c": "x"}).(map[string]any)
	if _, ok := got["a"].(int64); !ok {
		t.Errorf("Expected int64 for whole float, got %T", got["a"])
	}
	list := got["b"].([]any)
	if _, ok := list[0].(float64); !ok {
		t.Errorf("Expected float64 to stay, got %T", list[0])
	}
	if _, ok := list[1].(int64); !ok {
		t.Errorf("Expected int64 in list, got %T", list[1])
	}
}
