package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// TourEmbedding caches the vector of a tour's descriptive text. ContentHash
// detects stale rows after the tour is edited.
type TourEmbedding struct {
	TourID      string          `gorm:"primaryKey;column:tour_id"`
	ContentHash string          `gorm:"type:varchar(64)"`
	Embedding   pgvector.Vector `gorm:"type:vector"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}
