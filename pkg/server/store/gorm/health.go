package gorm

import (
	"gorm.io/gorm"

	"github.com/investlab/vollab/pkg/server/store"
)

var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore answers the /health probe from the quote database
// connection.
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a health store on the shared connection
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity runs a trivial query to confirm the connection is live
func (s *HealthStore) CheckConnectivity() error {
	return s.db.Exec("SELECT 1").Error
}
