package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/db"
	"github.com/alexanderramin/homekeep/internal/importer"
	"github.com/alexanderramin/homekeep/internal/repository"
	"github.com/alexanderramin/homekeep/internal/status"
)

type importService struct {
	loader   *importer.Loader
	uow      db.UnitOfWork
	clock    status.Clock
	observer UseCaseObserver
}

func NewImportService(loader *importer.Loader, uow db.UnitOfWork, clock status.Clock, observers ...UseCaseObserver) ImportService {
	if loader == nil {
		loader = importer.NewOsLoader()
	}
	return &importService{
		loader:   loader,
		uow:      uow,
		clock:    clockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Import expands patterns, validates every matched file and writes all of
// them in one transaction. Nothing is written if any file is invalid.
func (s *importService) Import(ctx context.Context, patterns ...string) (result *app.ImportResult, err error) {
	span := startUseCase(s.observer, "import", map[string]any{"patterns": strings.Join(patterns, ",")})
	defer func() { span.end(ctx, err) }()

	if len(patterns) == 0 {
		return nil, fmt.Errorf("no import files given: %w", ErrInvalidInput)
	}
	paths, err := s.loader.Expand(patterns...)
	if err != nil {
		return nil, err
	}

	var errs []error
	files := make([]*importer.HouseholdFile, 0, len(paths))
	for _, p := range paths {
		file, loadErr := s.loader.Load(p)
		if loadErr != nil {
			errs = append(errs, loadErr)
			continue
		}
		for _, vErr := range importer.Validate(file) {
			errs = append(errs, fmt.Errorf("%s: %w", p, vErr))
		}
		files = append(files, file)
	}
	if len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result, err = s.write(ctx, files)
	if err != nil {
		return nil, err
	}
	result.Files = paths
	span.fields["files"] = len(paths)
	span.fields["tasks"] = result.TaskCount
	return result, nil
}

// ImportFile validates and writes an already decoded household.
func (s *importService) ImportFile(ctx context.Context, file *importer.HouseholdFile) (result *app.ImportResult, err error) {
	span := startUseCase(s.observer, "import-file", nil)
	defer func() { span.end(ctx, err) }()

	if errs := importer.Validate(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	return s.write(ctx, []*importer.HouseholdFile{file})
}

func (s *importService) write(ctx context.Context, files []*importer.HouseholdFile) (*app.ImportResult, error) {
	now := s.clock.Now()
	households := make([]*importer.Household, 0, len(files))
	for _, f := range files {
		h, err := importer.Convert(f, now)
		if err != nil {
			return nil, fmt.Errorf("converting household: %w", err)
		}
		households = append(households, h)
	}

	result := &app.ImportResult{}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRooms := repository.NewSQLiteRoomRepo(tx)
		txAreas := repository.NewSQLiteAreaRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		for _, h := range households {
			for _, r := range h.Rooms {
				if err := txRooms.Create(ctx, r); err != nil {
					return fmt.Errorf("creating room %q: %w", r.Name, err)
				}
			}
			for _, a := range h.Areas {
				if err := txAreas.Create(ctx, a); err != nil {
					return fmt.Errorf("creating area %q: %w", a.Name, err)
				}
			}
			for _, t := range h.Tasks {
				if err := txTasks.Create(ctx, t); err != nil {
					return fmt.Errorf("creating task %q: %w", t.Name, err)
				}
			}
			result.RoomCount += len(h.Rooms)
			result.AreaCount += len(h.Areas)
			result.TaskCount += len(h.Tasks)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return errors.New(msg)
}
