package seeds

import (
	"log"

	"gorm.io/gorm"

	users "folio_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	if err := users.SeedAdminUser(db); err != nil {
		log.Printf("[ERROR] Admin seed failed: %v", err)
	}
}
