package model

import "time"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	MultipleSelect QuestionType = "multiple_select"
	ShortAnswer    QuestionType = "short_answer"
	Essay          QuestionType = "essay"
)

type Quiz struct {
	UUIDBase
	LessonID    uint   `gorm:"index" json:"lessonId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// TimeLimit is in minutes, 0 means untimed.
	TimeLimit int `gorm:"default:0" json:"timeLimit"`
	// PassingScore is a percentage in [0,100].
	PassingScore int `gorm:"default:60" json:"passingScore"`
	// MaxAttempts of 0 means unlimited.
	MaxAttempts        int            `gorm:"default:0" json:"maxAttempts"`
	IsPublished        bool           `gorm:"default:false" json:"isPublished"`
	AvailableFrom      *time.Time     `json:"availableFrom"`
	AvailableUntil     *time.Time     `json:"availableUntil"`
	RandomizeQuestions bool           `gorm:"default:false" json:"randomizeQuestions"`
	Questions          []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

type QuizQuestion struct {
	UUIDBase
	QuizID string       `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Type   QuestionType `gorm:"size:20;not null" json:"type"`
	Prompt string       `gorm:"type:text;not null" json:"prompt"`
	Points int          `gorm:"default:1" json:"points"`
	Order  int          `gorm:"default:0" json:"order"`
	// CorrectAnswer carries the canonical answer for true_false and
	// short_answer questions. Choice types use the option flags instead,
	// essay questions have no machine-checkable answer.
	CorrectAnswer string       `gorm:"size:1024" json:"-"`
	Options       []QuizOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

type QuizOption struct {
	BaseModel
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
	Position   int    `gorm:"default:0" json:"position"`
}

func (QuizOption) TableName() string {
	return "quiz_options"
}
