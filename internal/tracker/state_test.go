package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/uttrack/internal/course"
)

func seed(t *testing.T) *State {
	t.Helper()
	s := New(nil)
	for _, in := range []NewCourse{
		{Name: "Aljabar", CreditUnits: "3", Scheme: "Tuton"},
		{Name: "Lab Fisika", CreditUnits: "2", Scheme: "Praktik"},
		{Name: "Statistika", CreditUnits: "3", Scheme: "Tuton"},
		{Name: "Pancasila", CreditUnits: "2", Scheme: "Hanya UAS"},
	} {
		_, err := s.AddCourse(in)
		require.NoError(t, err)
	}
	s.ResetSelection()
	return s
}

func TestAddCourseSelectsNewCourse(t *testing.T) {
	s := New(nil)

	idx, err := s.AddCourse(NewCourse{Name: " Aljabar ", CreditUnits: "3", Scheme: "Tuton"})
	require.NoError(t, err)

	assert.Equal(t, 0, idx)
	require.NotNil(t, s.Selection.Course)
	assert.Equal(t, 0, *s.Selection.Course)
	assert.Equal(t, "Aljabar", s.Courses[0].Name)
	assert.Equal(t, 3, s.Courses[0].CreditUnits)
	assert.Len(t, s.Courses[0].FinalExam.Modules, 9)
}

func TestAddCourseValidation(t *testing.T) {
	tests := []struct {
		name       string
		input      NewCourse
		wantFields []string
	}{
		{"missing name", NewCourse{CreditUnits: "3", Scheme: "Tuton"}, []string{"name"}},
		{"blank name", NewCourse{Name: "   ", CreditUnits: "3", Scheme: "Tuton"}, []string{"name"}},
		{"missing credit units", NewCourse{Name: "A", Scheme: "Tuton"}, []string{"creditUnits"}},
		{"non-numeric credit units", NewCourse{Name: "A", CreditUnits: "tiga", Scheme: "Tuton"}, []string{"creditUnits"}},
		{"unknown scheme", NewCourse{Name: "A", CreditUnits: "3", Scheme: "Seminar"}, []string{"scheme"}},
		{"too many credit units", NewCourse{Name: "A", CreditUnits: "25", Scheme: "Tuton"}, []string{"creditUnits"}},
		{"overflowing credit units", NewCourse{Name: "A", CreditUnits: "9223372036854775807", Scheme: "Tuton"}, []string{"creditUnits"}},
		{"everything missing", NewCourse{}, []string{"name", "creditUnits", "scheme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			_, err := s.AddCourse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			var fields []string
			for _, f := range ve.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Empty(t, s.Courses)
		})
	}
}

func TestAddCourseAcceptsSchemeWithSpace(t *testing.T) {
	s := New(nil)
	_, err := s.AddCourse(NewCourse{Name: "Pancasila", CreditUnits: "2", Scheme: "Hanya UAS"})
	require.NoError(t, err)
	assert.Equal(t, course.SchemeHanyaUAS, s.Courses[0].Scheme)
}

func TestDeleteCourseAdjustsSelection(t *testing.T) {
	t.Run("selected course removed", func(t *testing.T) {
		s := seed(t)
		s.SelectCourse(1)
		_, err := s.DeleteCourse(1)
		require.NoError(t, err)
		assert.Nil(t, s.Selection.Course)
	})

	t.Run("selection after removed index shifts", func(t *testing.T) {
		s := seed(t)
		s.SelectCourse(3)
		_, err := s.DeleteCourse(1)
		require.NoError(t, err)
		require.NotNil(t, s.Selection.Course)
		assert.Equal(t, 2, *s.Selection.Course)
		assert.Equal(t, "Pancasila", s.Courses[*s.Selection.Course].Name)
	})

	t.Run("selection before removed index stays", func(t *testing.T) {
		s := seed(t)
		s.SelectCourse(0)
		_, err := s.DeleteCourse(2)
		require.NoError(t, err)
		require.NotNil(t, s.Selection.Course)
		assert.Equal(t, 0, *s.Selection.Course)
	})

	t.Run("category cleared when last course of scheme goes", func(t *testing.T) {
		s := seed(t)
		s.SelectCategory(course.SchemePraktik)
		removed, err := s.DeleteCourse(1)
		require.NoError(t, err)
		assert.Equal(t, "Lab Fisika", removed.Name)
		assert.Equal(t, course.Scheme(""), s.Selection.Category)
	})

	t.Run("category kept while courses remain", func(t *testing.T) {
		s := seed(t)
		s.SelectCategory(course.SchemeTuton)
		_, err := s.DeleteCourse(0)
		require.NoError(t, err)
		assert.Equal(t, course.SchemeTuton, s.Selection.Category)
	})

	t.Run("out of range", func(t *testing.T) {
		s := seed(t)
		_, err := s.DeleteCourse(9)
		assert.ErrorIs(t, err, course.ErrIndexOutOfRange)
		assert.Len(t, s.Courses, 4)
	})
}

func TestDeleteCourseDoesNotAliasRemaining(t *testing.T) {
	s := seed(t)
	before := append([]course.Course(nil), s.Courses...)
	_, err := s.DeleteCourse(0)
	require.NoError(t, err)
	assert.Equal(t, before[1].Name, s.Courses[0].Name)
	assert.Equal(t, before[3].Name, s.Courses[2].Name)
}

func TestVisible(t *testing.T) {
	s := seed(t)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Visible())

	s.SelectCategory(course.SchemeTuton)
	assert.Equal(t, []int{0, 2}, s.Visible())

	s.SelectCourse(3)
	assert.Equal(t, []int{3}, s.Visible())

	s.SelectCourse(10)
	assert.Empty(t, s.Visible())

	s.ResetSelection()
	s.Courses = nil
	assert.Empty(t, s.Visible())
}

func TestCategories(t *testing.T) {
	s := seed(t)
	assert.Equal(t, []course.Scheme{course.SchemeTuton, course.SchemePraktik, course.SchemeHanyaUAS}, s.Categories())
}

func TestApply(t *testing.T) {
	s := seed(t)

	require.NoError(t, s.Apply(0, course.SetDiscussionScore{Session: 0, Value: "90"}))
	assert.True(t, s.Courses[0].Tutorial.DiscussionStatus[0])

	err := s.Apply(0, course.ToggleAttendance{Session: 8})
	assert.ErrorIs(t, err, course.ErrIndexOutOfRange)

	err = s.Apply(7, course.ToggleAttendance{Session: 0})
	assert.ErrorIs(t, err, course.ErrIndexOutOfRange)
}
