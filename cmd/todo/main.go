package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/cli"
	"github.com/idilsaglam/todo/internal/store/sqlitestore"
	"github.com/idilsaglam/todo/internal/todos"
	"github.com/idilsaglam/todo/internal/ui"
)

func main() {
	// Root flags
	dbPath := flag.String("db", "", "database file (default ./todo_list.db3)")
	theme := flag.String("theme", "classic", "color theme: classic, neon or mono")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	os.Exit(run(*dbPath, *theme, *logLevel))
}

func run(dbPath, theme, logLevel string) int {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", logLevel, err)
		return 2
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "todo",
	})
	ui.SetTheme(theme)

	if dbPath == "" {
		dbPath, err = sqlitestore.DefaultPath()
		if err != nil {
			ui.Fail(os.Stderr, "storage: "+err.Error())
			return 1
		}
	}
	logger.Debug("using database", "path", dbPath)

	list := todos.New(
		sqlitestore.New(dbPath, logger.WithPrefix("store")),
		todos.WithLogger(logger),
	)
	viewer := cli.NewViewer(list, cli.NewTeaPrompter(nil, nil), cli.Options{Logger: logger})

	ctx := context.Background()
	if err := viewer.InitStorage(ctx); err != nil {
		return 1
	}
	if err := viewer.Run(ctx); err != nil {
		logger.Error("menu stopped", "err", err)
		return 1
	}
	return 0
}
