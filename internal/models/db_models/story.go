package db_models

type StoryStatus string

const (
	StoryPending  StoryStatus = "pending"
	StoryApproved StoryStatus = "approved"
	StoryRejected StoryStatus = "rejected"
)

type Story struct {
	BaseModel
	Title       string      `gorm:"not null" json:"title"`
	Author      string      `json:"author"`
	Role        string      `json:"role"`
	AuthorImage string      `json:"author_image"`
	CoverImage  string      `json:"cover_image"`
	Gallery     StringList  `json:"gallery"`
	Excerpt     string      `gorm:"type:text" json:"excerpt"`
	Content     StringList  `json:"content"`
	Date        string      `json:"date"`
	Rating      int         `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Status      StoryStatus `gorm:"type:varchar(16);index" json:"status"`
}
