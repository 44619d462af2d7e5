package cmdhint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/cmdhint/internal/db"
	dbRedis "github.com/kailas-cloud/cmdhint/internal/db/redis"
	"github.com/kailas-cloud/cmdhint/internal/domain"
	"github.com/kailas-cloud/cmdhint/internal/repository/datafile"
	documentrepo "github.com/kailas-cloud/cmdhint/internal/repository/document"
	indexrepo "github.com/kailas-cloud/cmdhint/internal/repository/index"
	searchrepo "github.com/kailas-cloud/cmdhint/internal/repository/search"
	documentuc "github.com/kailas-cloud/cmdhint/internal/usecase/document"
	healthuc "github.com/kailas-cloud/cmdhint/internal/usecase/health"
	loaderuc "github.com/kailas-cloud/cmdhint/internal/usecase/loader"
	searchuc "github.com/kailas-cloud/cmdhint/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces, swapped out in tests.
type searchUseCase interface {
	FindCommand(ctx context.Context, subject, rawQuery string) (string, error)
	FindGuide(ctx context.Context, subject, rawQuery string) (string, error)
}

type loaderUseCase interface {
	RefreshData(ctx context.Context) (loaderuc.Result, error)
	RefreshSynonyms(ctx context.Context) (int, error)
}

type documentUseCase interface {
	List(ctx context.Context, offset, limit int) (documentuc.Page, error)
	Count(ctx context.Context, kind domain.IndexKind) (int, error)
}

// LoadResult counts the documents written by Load.
type LoadResult struct {
	Commands int
	Guides   int
}

// Client is the cmdhint SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	loaderSvc loaderUseCase
	docSvc    documentUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and connects to Redis.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("cmdhint: redis address required (use WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("cmdhint: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("cmdhint: redis not ready: %w", err)
	}

	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	docRepo := documentrepo.New(store, cfg.keyPrefix)
	if cfg.maxBatchSize > 0 {
		docRepo = docRepo.WithBatchSize(cfg.maxBatchSize)
	}
	source := datafile.New(cfg.documentsFile, cfg.synonymsFile)

	return &Client{
		store: store,
		searchSvc: searchuc.New(searchrepo.New(store, cfg.keyPrefix)).
			WithTypoTolerance(cfg.typo).
			WithRelaxation(cfg.relax),
		loaderSvc: loaderuc.New(source, indexrepo.New(store, cfg.keyPrefix), docRepo),
		docSvc:    documentuc.New(docRepo),
		healthSvc: healthuc.New(store),
		obs:       obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks Redis connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Command returns the command line that best answers query within subject.
// query uses the decoded URL form: words joined by '+' or spaces.
func (c *Client) Command(ctx context.Context, subject, query string) (line string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("command", start, err) }()

	line, err = c.searchSvc.FindCommand(ctx, subject, query)
	if err != nil {
		return "", fmt.Errorf("find command: %w", err)
	}
	return line, nil
}

// Guide returns the formatted step-by-step guide that best answers query.
func (c *Client) Guide(ctx context.Context, subject, query string) (text string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("guide", start, err) }()

	text, err = c.searchSvc.FindGuide(ctx, subject, query)
	if err != nil {
		return "", fmt.Errorf("find guide: %w", err)
	}
	return text, nil
}

// Load replaces the indexed commands and guides with the documents file contents.
func (c *Client) Load(ctx context.Context) (res LoadResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("load", start, err) }()

	r, err := c.loaderSvc.RefreshData(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("load: %w", err)
	}
	return LoadResult{Commands: r.Commands, Guides: r.Guides}, nil
}

// LoadSynonyms applies the synonyms file and returns the number of groups.
func (c *Client) LoadSynonyms(ctx context.Context) (groups int, err error) {
	start := time.Now()
	defer func() { c.obs.observe("load_synonyms", start, err) }()

	groups, err = c.loaderSvc.RefreshSynonyms(ctx)
	if err != nil {
		return 0, fmt.Errorf("load synonyms: %w", err)
	}
	return groups, nil
}

// Commands returns a page of raw command documents. Zero limit means the default page size.
func (c *Client) Commands(ctx context.Context, offset, limit int) (docs []json.RawMessage, err error) {
	start := time.Now()
	defer func() { c.obs.observe("commands", start, err) }()

	page, err := c.docSvc.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}
	return page.Results, nil
}

// Count returns how many commands and guides are indexed. A kind whose index
// was never loaded counts as zero.
func (c *Client) Count(ctx context.Context) (res LoadResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("count", start, err) }()

	if res.Commands, err = c.countKind(ctx, domain.IndexCommands); err != nil {
		return LoadResult{}, err
	}
	if res.Guides, err = c.countKind(ctx, domain.IndexGuides); err != nil {
		return LoadResult{}, err
	}
	return res, nil
}

func (c *Client) countKind(ctx context.Context, kind domain.IndexKind) (int, error) {
	n, err := c.docSvc.Count(ctx, kind)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
