// Package importer seeds an address book from the contacts table of a MySQL database. The
// database is only read; nothing is ever written back.
package importer

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/config"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
	dto "gitlab.com/dirk.krummacker/contacts-assistant/pkg/model"
	"go.uber.org/zap"
)

// selectContacts reads every importable row in a stable order.
const selectContacts = `
	SELECT id, name, phone, birthday
	FROM contacts
	ORDER BY id
`

// Summary counts what an import did.
type Summary struct {
	Rows      int // rows read from the database
	Created   int // records created in the address book
	Phones    int // phone numbers added
	Birthdays int // birthdays set
	Skipped   int // rows or values that could not be used
}

// Importer reads contacts through the sqlx database wrapper.
type Importer struct {
	db *sqlx.DB
}

// CreateDatabase opens a connection to the MySQL database described by cfg.
func CreateDatabase(cfg config.Database) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", cfg.User, cfg.Password, cfg.Host, cfg.Name)
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	return sqlDB, nil
}

// New wraps sqlDB. The database argument can be a real database for production use or a mock
// database within unit tests.
func New(sqlDB *sql.DB) *Importer {
	return &Importer{db: sqlx.NewDb(sqlDB, "mysql")}
}

// Import merges all rows of the contacts table into book. Rows are applied like the add command:
// the phone is appended to an existing record of the same name, otherwise a new record is
// created. A birthday is only taken if the record has none yet. Rows without a name and values
// that fail validation are skipped and logged.
func (i *Importer) Import(ctx context.Context, book *addressbook.AddressBook) (Summary, error) {
	var rows []dto.ContactRow
	if err := i.db.SelectContext(ctx, &rows, selectContacts); err != nil {
		return Summary{}, fmt.Errorf("could not read contacts: %w", err)
	}

	var summary Summary
	for _, row := range rows {
		summary.Rows++
		ctx := logger.WithFields(ctx, zap.Int64("id", row.Id))
		if row.Name == nil {
			logger.Warn(ctx, "skipping contact without name")
			summary.Skipped++
			continue
		}
		record := book.Find(*row.Name)
		if record == nil {
			created, err := model.NewRecord(*row.Name)
			if err != nil {
				logger.Warn(ctx, "skipping contact", zap.Error(err))
				summary.Skipped++
				continue
			}
			book.AddRecord(created)
			record = created
			summary.Created++
		}
		if row.Phone != nil {
			if err := record.AddPhone(*row.Phone); err != nil {
				logger.Warn(ctx, "skipping phone", zap.String("name", record.Name()), zap.Error(err))
				summary.Skipped++
			} else {
				summary.Phones++
			}
		}
		if row.Birthday != nil {
			if err := record.SetBirthday(model.BirthdayFromTime(*row.Birthday)); err != nil {
				logger.Warn(ctx, "skipping birthday", zap.String("name", record.Name()), zap.Error(err))
				summary.Skipped++
			} else {
				summary.Birthdays++
			}
		}
	}
	logger.Info(ctx, "contacts imported",
		zap.Int("rows", summary.Rows),
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}
