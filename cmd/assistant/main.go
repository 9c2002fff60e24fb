// Package main provides the command line entrypoint of the contact assistant. Without a
// subcommand it starts the interactive assistant; "serve" exposes the same address book over a
// REST API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/assistant"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/config"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/importer"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"go.uber.org/zap"
)

// app carries what all subcommands share.
type app struct {
	configPath     string
	importContacts bool
	cfg            *config.Config
	book           *addressbook.AddressBook
}

// Usage examples on the command line:
// > go run ./cmd/assistant
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run ./cmd/assistant --import
// > PORT=8080 GIN_LOGGING=off go run ./cmd/assistant serve
func main() {
	a := &app{book: addressbook.New()}

	rootCmd := &cobra.Command{
		Use:               "assistant",
		Short:             "Keeps contacts in memory and tells whose birthday is coming up",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.repl,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config File Path")
	rootCmd.PersistentFlags().BoolVar(&a.importContacts, "import", false,
		"import contacts from the configured MySQL database before starting")
	rootCmd.AddCommand(serveCommand(a))

	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, initializes logging and optionally seeds the address book.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	if a.importContacts {
		return a.seed(cmd.Context())
	}
	return nil
}

// seed imports the contacts of the configured database into the address book.
func (a *app) seed(ctx context.Context) error {
	if !a.cfg.Database.Configured() {
		return errors.New("cannot import contacts: DBHOST is not set")
	}
	sqlDB, err := importer.CreateDatabase(a.cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	summary, err := importer.New(sqlDB).Import(ctx, a.book)
	if err != nil {
		return err
	}
	logger.Info(ctx, "address book seeded", zap.Int("contacts", a.book.Len()), zap.Int("skipped", summary.Skipped))
	return nil
}

// repl runs the interactive assistant on stdin and stdout.
func (a *app) repl(cmd *cobra.Command, _ []string) error {
	bot := assistant.New(a.book, assistant.NewConsoleView(os.Stdout))
	return bot.Run(cmd.Context(), os.Stdin, os.Stdout)
}
