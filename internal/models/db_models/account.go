package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"type:varchar(16);default:user" json:"role"`
	Avatar       string `json:"avatar,omitempty"`
}
