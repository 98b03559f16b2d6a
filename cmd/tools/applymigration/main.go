// Command applymigration creates or updates the order_events audit table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	drv "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
)

// MySQL "Duplicate key name".
const errDupKeyName = 1061

var indexes = []string{
	`CREATE INDEX ix_order_events_order_channel ON order_events (order_id, channel, created_at)`,
	`CREATE INDEX ix_order_events_actor ON order_events (actor_account, created_at)`,
}

func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", "", "MySQL DSN (defaults to DB_DSN)")
	flag.Parse()
	if *dsn == "" {
		*dsn = os.Getenv("DB_DSN")
	}
	if *dsn == "" {
		log.Fatal("DB_DSN environment variable or -dsn is required")
	}

	db, err := orders.OpenAuditDB(*dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := orders.NewAuditRepo(db).AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate order_events: %v", err)
	}
	for _, stmt := range indexes {
		if err := exec(db, stmt); err != nil {
			log.Fatalf("Failed: %v", err)
		}
	}

	fmt.Println("✓ order_events is up to date")
}

// exec runs stmt, treating an index that already exists as success.
func exec(db *gorm.DB, stmt string) error {
	err := db.Exec(stmt).Error
	var me *drv.MySQLError
	if errors.As(err, &me) && me.Number == errDupKeyName {
		return nil
	}
	return err
}
