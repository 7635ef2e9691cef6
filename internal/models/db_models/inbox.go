package db_models

type MessageStatus string

const (
	MessageUnread  MessageStatus = "unread"
	MessageRead    MessageStatus = "read"
	MessageReplied MessageStatus = "replied"
)

type ContactMessage struct {
	BaseModel
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Subject string        `json:"subject"`
	Message string        `gorm:"type:text" json:"message"`
	Status  MessageStatus `gorm:"type:varchar(16);index" json:"status"`
}

type NewsletterSignup struct {
	BaseModel
	Email string `gorm:"uniqueIndex" json:"email"`
}
