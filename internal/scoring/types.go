package scoring

// Grade is a letter grade with its grade-point value.
type Grade struct {
	Letter string  `json:"letter" yaml:"letter"`
	Point  float64 `json:"point" yaml:"point"`
}

// CategoryScores are the per-category sub-scores of a course, each on a
// 0-100 scale. Inactive categories are 0.
type CategoryScores struct {
	Tutorial  float64 `json:"tutorial" yaml:"tutorial"`
	Practicum float64 `json:"practicum" yaml:"practicum"`
	Exam      float64 `json:"exam" yaml:"exam"`
}

// Metric is one line of a score breakdown.
type Metric struct {
	Category  string  `json:"category" yaml:"category"`     // tutorial, practicum, exam
	Name      string  `json:"name" yaml:"name"`             // Human-readable name
	Points    float64 `json:"points" yaml:"points"`         // Points earned
	MaxPoints float64 `json:"max_points" yaml:"max_points"` // Maximum possible points
	Counted   int     `json:"counted" yaml:"counted"`       // Items that entered the average
	Note      string  `json:"note,omitempty" yaml:"note,omitempty"`
}

// Result is the display-ready outcome for one course.
type Result struct {
	TutorialScore string   `json:"tutorialScore" yaml:"tutorialScore"` // "-" when inactive
	ExamScore     string   `json:"examScore" yaml:"examScore"`         // "-" when inactive
	FinalScore    string   `json:"finalScore" yaml:"finalScore"`
	LetterGrade   string   `json:"letterGrade" yaml:"letterGrade"`
	GradePoint    float64  `json:"gradePoint" yaml:"gradePoint"`
	CreditPoints  string   `json:"creditPoints" yaml:"creditPoints"`
	Final         float64  `json:"-" yaml:"-"`
	Details       []Metric `json:"details,omitempty" yaml:"details,omitempty"`
}

// Progress counts completed trackable activities.
type Progress struct {
	Completed int    `json:"completed" yaml:"completed"`
	Total     int    `json:"total" yaml:"total"`
	Percent   int    `json:"percent" yaml:"percent"`
	Label     string `json:"label" yaml:"label"`
}
