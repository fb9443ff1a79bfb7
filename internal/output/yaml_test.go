package output

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLFormatter(&buf, "").Format(BuildReport(sampleCourses(t), nil)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded struct {
		Summary struct {
			GPA     string `yaml:"gpa"`
			Courses int    `yaml:"courses"`
		} `yaml:"summary"`
		Courses []CourseRow `yaml:"courses"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded.Summary.Courses != 3 || decoded.Summary.GPA == "" {
		t.Errorf("Unexpected summary %+v", decoded.Summary)
	}
	if len(decoded.Courses) != 3 || decoded.Courses[1].Name != "Lab | Fisika" {
		t.Errorf("Unexpected courses %+v", decoded.Courses)
	}
}
