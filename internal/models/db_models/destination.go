package db_models

const DefaultDestinationImage = "https://images.unsplash.com/photo-1516426122078-c23e76319801?q=80&w=2068&auto=format&fit=crop"

type Destination struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Image       string `json:"image"`
	Description string `gorm:"type:text" json:"description"`
	// PackageCount is maintained by editors, it is not derived from tours.
	PackageCount int        `json:"package_count"`
	Price        string     `json:"price,omitempty"`
	Highlights   StringList `json:"highlights"`
}
