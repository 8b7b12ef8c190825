// Package ethiomorph provides bidirectional morphology for Ge'ez: root
// extraction from inflected words and generation of inflected words from
// roots, driven by the lexicon, templates and stems data files.
package ethiomorph

import (
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint and matrix metadata.
const Version = "2.4"

// Engine holds all loaded data and provides the public API.
// It is immutable after New returns and safe for concurrent use.
type Engine struct {
	lexicon   *Lexicon
	templates TemplateSet
	// stems maps stem code → definition.
	stems map[string]*StemDefinition

	log      *zap.Logger
	validate *validator.Validate
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New loads the data files from dataDir and returns a ready-to-use Engine.
func New(dataDir string, opts ...Option) (*Engine, error) {
	return NewFromFS(os.DirFS(dataDir), opts...)
}

// NewDefault returns an Engine over the embedded data set.
func NewDefault(opts ...Option) (*Engine, error) {
	return NewFromFS(DefaultData(), opts...)
}

// NewFromFS loads lexicon.json, templates.json and stems.json from fsys.
func NewFromFS(fsys fs.FS, opts ...Option) (*Engine, error) {
	e := &Engine{
		lexicon:  newLexicon(),
		stems:    make(map[string]*StemDefinition),
		log:      zap.NewNop(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.loadLexicon(fsys); err != nil {
		return nil, err
	}
	if err := e.loadTemplates(fsys); err != nil {
		return nil, err
	}
	if err := e.loadStems(fsys); err != nil {
		return nil, err
	}
	return e, nil
}

// Lexicon returns the loaded lexicon.
func (e *Engine) Lexicon() *Lexicon {
	return e.lexicon
}

// Templates returns the loaded templates. The value shares maps with the
// engine and must not be modified.
func (e *Engine) Templates() TemplateSet {
	return e.templates
}

// Stems returns a copy of the stem definitions keyed by code.
func (e *Engine) Stems() map[string]StemDefinition {
	out := make(map[string]StemDefinition, len(e.stems))
	for k, v := range e.stems {
		out[k] = *v
	}
	return out
}
