package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/store/schema"
)

// Models lists every table managed by the store
var Models = []interface{}{
	&schema.Counter{},
	&schema.TraitDefinition{},
	&schema.Asset{},
	&schema.AppliedTrait{},
	&schema.AccountBalance{},
	&schema.UserStats{},
	&schema.CustomizationEvent{},
}

// Migrate creates or updates the schema and seeds the global counters
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	for _, name := range domain.Counters {
		counter := schema.Counter{Name: name}
		if err := db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&counter).Error; err != nil {
			return fmt.Errorf("failed to seed counter %s: %w", name, err)
		}
	}

	return nil
}
