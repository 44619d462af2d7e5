package cmdhint

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	keyPrefix     string
	documentsFile string
	synonymsFile  string

	typo         bool
	relax        bool
	maxBatchSize int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		keyPrefix:     "cmdhint:",
		documentsFile: "data.json",
		synonymsFile:  "synonyms.json",
		typo:          true,
		relax:         true,
	}
}

// WithRedis configures the client to connect to a Redis 8 instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithACLUser sets the Redis ACL username.
func WithACLUser(username string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
	})
}

// WithDB selects a logical Redis database.
func WithDB(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.db = n
	})
}

// WithKeyPrefix namespaces index names and document keys.
// Default: "cmdhint:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithDataFiles sets the documents and synonyms file paths used by Load and LoadSynonyms.
func WithDataFiles(documents, synonyms string) Option {
	return optionFunc(func(c *clientConfig) {
		c.documentsFile = documents
		c.synonymsFile = synonyms
	})
}

// WithTypoTolerance toggles fuzzy matching of longer words. Default: on.
func WithTypoTolerance(on bool) Option {
	return optionFunc(func(c *clientConfig) {
		c.typo = on
	})
}

// WithRelaxation toggles retrying a query without its last words. Default: on.
func WithRelaxation(on bool) Option {
	return optionFunc(func(c *clientConfig) {
		c.relax = on
	})
}

// WithMaxBatchSize sets how many documents go into one pipelined write.
// Default: 500.
func WithMaxBatchSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxBatchSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
