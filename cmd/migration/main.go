package main

import (
	"bufio"
	"context"
	"flag"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/config"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/importer"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"go.uber.org/zap"
)

// Prepares the database that the assistant imports contacts from by executing a SQL file
// statement by statement.
//
// Usage example on the command line:
// > DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go -file=../../scripts/database.sql
func main() {
	filePtr := flag.String("file", "database.sql", "the sql file to execute")
	configPtr := flag.String("c", "", "the config file path")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(*configPtr)
	if err != nil {
		panic(err)
	}
	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	sqlDB, err := importer.CreateDatabase(cfg.Database)
	if err != nil {
		logger.Fatal(ctx, "could not open database", zap.Error(err))
	}
	db := sqlx.NewDb(sqlDB, "mysql")
	defer db.Close()

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		logger.Fatal(ctx, "could not open sql file", zap.String("file", *filePtr), zap.Error(err))
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	statements := 0
	for fileScanner.Scan() {
		line := fileScanner.Text()
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			db.MustExecContext(ctx, builder.String())
			builder = strings.Builder{}
			statements++
		}
	}
	logger.Info(ctx, "sql file executed", zap.String("file", *filePtr), zap.Int("statements", statements))
}
