package request_models

type StoryRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Role        string   `json:"role" binding:"max=100"`
	AuthorImage string   `json:"author_image"`
	CoverImage  string   `json:"cover_image"`
	Gallery     []string `json:"gallery"`
	Excerpt     string   `json:"excerpt" binding:"max=500"`
	Content     []string `json:"content" binding:"required,min=1"`
	Rating      int      `json:"rating" binding:"required,min=1,max=5"`
}

type ReplyRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SocialLinksRequest struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Whatsapp  string `json:"whatsapp"`
}

type SettingsRequest struct {
	SiteName        string             `json:"site_name" binding:"required"`
	ContactEmail    string             `json:"contact_email" binding:"omitempty,email"`
	ContactPhone    string             `json:"contact_phone"`
	Address         string             `json:"address"`
	SocialLinks     SocialLinksRequest `json:"social_links"`
	MaintenanceMode bool               `json:"maintenance_mode"`
}
