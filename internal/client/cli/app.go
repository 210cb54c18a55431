package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/campuskart/internal/client/client"
	"github.com/dmitrijs2005/campuskart/internal/client/config"
	"github.com/dmitrijs2005/campuskart/internal/client/filter"
	"github.com/dmitrijs2005/campuskart/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/campuskart/internal/client/services"
	"github.com/dmitrijs2005/campuskart/internal/cryptox"
	"github.com/dmitrijs2005/campuskart/internal/filex"
	"github.com/dmitrijs2005/campuskart/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	identity *services.Identity
	catalog  *services.Catalog
	log      logging.Logger

	// query is the current filter state; the view dimension defaults to
	// "all" and survives a "clear" of the other filters.
	query filter.Query

	reader *bufio.Reader
	out    io.Writer
}

// verifierFor maps the configured policy name to a Verifier. Unknown names
// fall back to the baseline plain policy.
func verifierFor(name string) cryptox.Verifier {
	if name == config.PolicyArgon2 {
		return cryptox.NewArgon2()
	}
	return cryptox.Plain{}
}

// resolveDSN places a bare database filename under a ./data subdirectory,
// creating it on first run. Absolute paths, explicit relative paths and
// ":memory:" pass through untouched.
func resolveDSN(dsn string) (string, error) {
	if dsn == ":memory:" || filepath.IsAbs(dsn) || strings.ContainsRune(dsn, filepath.Separator) {
		return dsn, nil
	}
	dir, err := filex.EnsureSubDir("data")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dsn), nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault(os.Stderr)

	dsn, err := resolveDSN(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	store := kvstore.NewSQLiteRepository(db)

	identity, err := services.NewIdentity(ctx, store, verifierFor(c.CredentialPolicy), log)
	if err != nil {
		return nil, err
	}

	catalog, err := services.NewCatalog(ctx, store, identity, !c.DisableSeed, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   c,
		identity: identity,
		catalog:  catalog,
		log:      log,
		query:    filter.Query{View: filter.ViewAll},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.identity.Session() != nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
