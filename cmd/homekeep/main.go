package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/homekeep/internal/cli"
	"github.com/alexanderramin/homekeep/internal/config"
	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/importer"
	"github.com/alexanderramin/homekeep/internal/repository"
	"github.com/alexanderramin/homekeep/internal/service"
	"github.com/alexanderramin/homekeep/internal/status"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(config.Options{ConfigFile: configFileFlag(args)})
	if err != nil {
		return err
	}

	engine, err := status.NewEngine(cfg.EngineOptions()...)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	roomRepo := repository.NewSQLiteRoomRepo(database)
	areaRepo := repository.NewSQLiteAreaRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	clock := status.SystemClock{}

	app := &cli.App{
		Rooms:  service.NewRoomService(roomRepo, clock, observers...),
		Areas:  service.NewAreaService(areaRepo, roomRepo, clock, observers...),
		Tasks:  service.NewTaskService(taskRepo, areaRepo, uow, clock, observers...),
		Status: service.NewStatusService(uow, engine, observers...),
		Import: service.NewImportService(importer.NewOsLoader(), uow, clock, observers...),
	}

	// Detect interactive terminal for form prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// configFileFlag pulls --config out of args ahead of cobra, which only
// parses flags once services exist.
func configFileFlag(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
