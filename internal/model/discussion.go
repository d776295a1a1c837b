package model

type DiscussionThread struct {
	BaseModel
	CourseID uint              `gorm:"index;not null" json:"courseId"`
	AuthorID uint              `gorm:"index;not null" json:"authorId"`
	Title    string            `gorm:"size:255;not null" json:"title"`
	Body     string            `gorm:"type:text" json:"body"`
	IsPinned bool              `gorm:"default:false" json:"isPinned"`
	Replies  []DiscussionReply `gorm:"foreignKey:ThreadID" json:"replies,omitempty"`
}

func (DiscussionThread) TableName() string {
	return "discussion_threads"
}

type DiscussionReply struct {
	BaseModel
	ThreadID uint   `gorm:"index;not null" json:"threadId"`
	AuthorID uint   `gorm:"index;not null" json:"authorId"`
	Body     string `gorm:"type:text;not null" json:"body"`
}

func (DiscussionReply) TableName() string {
	return "discussion_replies"
}
