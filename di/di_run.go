package di

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"organizer/config"
	"organizer/db"
	"organizer/domain"
	"organizer/facade"
	"organizer/files"
	"organizer/menu"
	"organizer/repo"
	"organizer/service"
	"organizer/state"
)

type App struct {
	Menu  menu.Menu
	Deps  menu.Deps
	close func()
}

// Close releases the storage connection, if any.
func (a *App) Close() {
	if a.close != nil {
		a.close()
	}
}

// storage is the chosen backend plus what releases it.
type storage struct {
	Backend repo.Backend
	Close   func()
}

func openStorage(ctx context.Context, cfg *config.Config) (storage, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		sdb, err := db.OpenSQLite(ctx, cfg.SQLiteFile())
		if err != nil {
			return storage{}, err
		}
		b, err := repo.NewSQLiteBackend(ctx, sdb, cfg.SQLiteFile())
		if err != nil {
			_ = sdb.Close()
			return storage{}, err
		}
		return storage{Backend: b, Close: func() { _ = b.Close() }}, nil
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return storage{}, err
		}
		b, err := repo.NewPgBackend(ctx, pool)
		if err != nil {
			pool.Close()
			return storage{}, err
		}
		return storage{Backend: b, Close: pool.Close}, nil
	case config.BackendFile:
		return storage{Backend: repo.NewFileBackend(cfg.DataDir, cfg.Files), Close: func() {}}, nil
	}
	return storage{}, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
}

func provideAll(c *dig.Container, ctors ...any) error {
	for _, ctor := range ctors {
		if err := c.Provide(ctor); err != nil {
			return err
		}
	}
	return nil
}

// Build wires configuration, storage, managers and the menu, then creates
// any collection that does not exist yet.
func Build(ctx context.Context, cfg *config.Config, console *menu.Console) (*App, error) {
	c := dig.New()
	err := provideAll(c,
		func() context.Context { return ctx },
		func() *config.Config { return cfg },
		func() *menu.Console { return console },
		openStorage,
		func(s storage) repo.Backend { return s.Backend },
		domain.NewFactory,

		func(b repo.Backend) *repo.Store[domain.Note] { return repo.NewStore[domain.Note](string(domain.Notes), b) },
		func(b repo.Backend) *repo.Store[domain.Task] { return repo.NewStore[domain.Task](string(domain.Tasks), b) },
		func(b repo.Backend) *repo.Store[domain.Contact] {
			return repo.NewStore[domain.Contact](string(domain.Contacts), b)
		},
		func(b repo.Backend) *repo.Store[domain.FinanceRecord] {
			return repo.NewStore[domain.FinanceRecord](string(domain.Finance), b)
		},

		func(s *repo.Store[domain.Note], cfg *config.Config, con *menu.Console) *service.Manager[domain.Note] {
			m := service.NewManager[domain.Note](domain.Notes, s, files.NoteCodec{}, cfg.ExportPath())
			m.OnCorrupt(con.ReportCorrupt)
			return m
		},
		func(s *repo.Store[domain.Task], cfg *config.Config, con *menu.Console) *service.Manager[domain.Task] {
			m := service.NewManager[domain.Task](domain.Tasks, s, files.TaskCodec{}, cfg.ExportPath())
			m.OnCorrupt(con.ReportCorrupt)
			return m
		},
		func(s *repo.Store[domain.Contact], cfg *config.Config, con *menu.Console) *service.Manager[domain.Contact] {
			m := service.NewManager[domain.Contact](domain.Contacts, s, files.ContactCodec{}, cfg.ExportPath())
			m.OnCorrupt(con.ReportCorrupt)
			return m
		},
		func(s *repo.Store[domain.FinanceRecord], cfg *config.Config, con *menu.Console) *service.Manager[domain.FinanceRecord] {
			m := service.NewManager[domain.FinanceRecord](domain.Finance, s, files.FinanceCodec{}, cfg.ExportPath())
			m.OnCorrupt(con.ReportCorrupt)
			return m
		},
		service.NewAnalyticsService,

		func(cfg *config.Config) state.Store { return state.New(cfg.DataDir) },
		func(cfg *config.Config) (menu.Menu, error) { return menu.Load(cfg.MenuPath) },
	)
	if err != nil {
		return nil, err
	}

	var app *App
	err = c.Invoke(func(
		ctx context.Context,
		s storage,
		f domain.Factory,
		m menu.Menu,
		st state.Store,
		notesStore *repo.Store[domain.Note],
		tasksStore *repo.Store[domain.Task],
		contactsStore *repo.Store[domain.Contact],
		financeStore *repo.Store[domain.FinanceRecord],
		notes *service.Manager[domain.Note],
		tasks *service.Manager[domain.Task],
		contacts *service.Manager[domain.Contact],
		finance *service.Manager[domain.FinanceRecord],
		ana *service.AnalyticsService,
	) error {
		if err := bootstrap(ctx, console, notesStore, tasksStore, contactsStore, financeStore); err != nil {
			s.Close()
			return err
		}
		app = &App{
			Menu: m,
			Deps: menu.Deps{
				Notes:    facade.NoteFacade{Manager: notes, F: f},
				Tasks:    facade.TaskFacade{Manager: tasks, F: f},
				Contacts: facade.ContactFacade{Manager: contacts, F: f},
				Finance:  facade.FinanceFacade{Manager: finance, F: f, Ana: ana},
				State:    st,
				IO:       console,
			},
			close: s.Close,
		}
		return nil
	})
	if err != nil {
		return nil, dig.RootCause(err)
	}
	return app, nil
}
