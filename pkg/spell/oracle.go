package spell

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yaklabco/spellint/internal/logging"
	"github.com/yaklabco/spellint/pkg/dictionary"
)

// Oracle answers spelling queries. Implementations must be safe for
// concurrent use once constructed.
type Oracle interface {
	// IsCorrect reports whether word is spelled correctly.
	IsCorrect(word string) bool

	// Suggest returns replacement candidates, best first.
	Suggest(word string) []string
}

// LoadFunc builds an Oracle. It is called at most once per Provider.
type LoadFunc func(ctx context.Context) (Oracle, error)

// Provider loads an Oracle lazily and shares it with every caller.
//
// The load runs once, in its own goroutine, detached from any caller's
// cancellation. All callers observe the same Oracle or the same error.
type Provider struct {
	load LoadFunc

	once   sync.Once
	done   chan struct{}
	oracle Oracle
	err    error
}

// NewProvider creates a Provider around load.
func NewProvider(load LoadFunc) *Provider {
	return &Provider{
		load: load,
		done: make(chan struct{}),
	}
}

// NewStaticProvider returns a Provider that is already resolved to oracle.
func NewStaticProvider(oracle Oracle) *Provider {
	p := NewProvider(func(context.Context) (Oracle, error) { return oracle, nil })
	p.Start()
	return p
}

// Start begins loading in the background if it has not begun yet.
func (p *Provider) Start() {
	p.once.Do(func() {
		go func() {
			defer close(p.done)
			p.oracle, p.err = p.load(context.Background())
		}()
	})
}

// Get returns the shared Oracle, starting the load if needed and waiting
// for it to finish or for ctx to be done.
//
//nolint:ireturn // Oracle is the capability callers depend on.
func (p *Provider) Get(ctx context.Context) (Oracle, error) {
	p.Start()

	select {
	case <-p.done:
		return p.oracle, p.err
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for dictionary: %w", ctx.Err())
	}
}

// Ready reports whether the load has finished.
func (p *Provider) Ready() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

//nolint:gochecknoglobals // Process-wide oracle shared by every run.
var (
	defaultOnce     sync.Once
	defaultProvider *Provider
)

// Default returns the process-wide Provider over the built-in English
// dictionary.
func Default() *Provider {
	defaultOnce.Do(func() {
		defaultProvider = NewProvider(DictionaryLoader(dictionary.Options{}))
	})
	return defaultProvider
}

// DictionaryLoader returns a LoadFunc that builds a dictionary.Dictionary
// from opts and logs how long the load took.
func DictionaryLoader(opts dictionary.Options) LoadFunc {
	return func(ctx context.Context) (Oracle, error) {
		logger := logging.FromContext(ctx)
		started := time.Now()

		dict, err := dictionary.Load(ctx, opts)
		if err != nil {
			return nil, err
		}

		logger.Debug("dictionary loaded",
			logging.FieldWords, dict.Len(),
			logging.FieldDuration, time.Since(started),
		)
		return dict, nil
	}
}
