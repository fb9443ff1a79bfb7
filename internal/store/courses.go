package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dotcommander/uttrack/internal/course"
)

// CoursesKey is the key the course collection is stored under.
const CoursesKey = "utTrackerData"

// CourseRepository loads and saves the whole course collection as one blob.
type CourseRepository struct {
	kv     KV
	logger *zap.Logger
}

// NewCourseRepository returns a repository over kv. A nil logger is
// replaced by a no-op one.
func NewCourseRepository(kv KV, logger *zap.Logger) *CourseRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseRepository{kv: kv, logger: logger}
}

// Load returns the stored collection with every record normalized. A
// missing blob, a malformed one, or one that is not an array all yield an
// empty collection; only an unreadable store is reported as an error.
func (r *CourseRepository) Load() ([]course.Course, error) {
	data, err := r.kv.Get(CoursesKey)
	if errors.Is(err, ErrNotFound) {
		return []course.Course{}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.decode(data), nil
}

func (r *CourseRepository) decode(data []byte) []course.Course {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		r.logger.Error("Discarding malformed course data", zap.String("key", CoursesKey), zap.Error(err))
		return []course.Course{}
	}
	courses, ok := course.NormalizeAll(raw)
	if !ok {
		r.logger.Error("Discarding course data that is not a list", zap.String("key", CoursesKey))
		return []course.Course{}
	}
	r.logger.Debug("Loaded courses", zap.Int("count", len(courses)))
	return courses
}

// Raw returns the stored blob as is.
func (r *CourseRepository) Raw() ([]byte, error) {
	return r.kv.Get(CoursesKey)
}

// EncodeCourses renders courses in the stored form.
func EncodeCourses(courses []course.Course) ([]byte, error) {
	if courses == nil {
		courses = []course.Course{}
	}
	data, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal courses: %w", err)
	}
	return data, nil
}

// Save replaces the stored collection with courses.
func (r *CourseRepository) Save(courses []course.Course) error {
	data, err := EncodeCourses(courses)
	if err != nil {
		return err
	}
	if err := r.kv.Set(CoursesKey, data); err != nil {
		return fmt.Errorf("failed to save courses: %w", err)
	}
	r.logger.Debug("Saved courses", zap.Int("count", len(courses)))
	return nil
}
