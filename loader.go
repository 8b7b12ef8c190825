package ethiomorph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Data file names inside the data directory.
const (
	lexiconFileName   = "lexicon.json"
	templatesFileName = "templates.json"
	stemsFileName     = "stems.json"
)

// newValidator returns a validator with the "geezroot" rule registered: the
// field must normalize to a skeleton of 3 or 4 fidel consonants.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("geezroot", func(fl validator.FieldLevel) bool {
		rads := radicals(Normalize(fl.Field().String()))
		if len(rads) < 3 || len(rads) > 4 {
			return false
		}
		for _, r := range rads {
			if !IsFidel(r) {
				return false
			}
		}
		return true
	})
	return v
}

// readJSON decodes name from fsys into dst.
func readJSON(fsys fs.FS, name string, dst any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// loadLexicon reads lexicon.json. The file is optional: a missing lexicon
// leaves the engine running on algorithmic detection alone.
func (e *Engine) loadLexicon(fsys fs.FS) error {
	var lf lexiconFile
	if err := readJSON(fsys, lexiconFileName, &lf); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			e.log.Warn("lexicon not found, using empty lexicon", zap.String("file", lexiconFileName))
			return nil
		}
		return err
	}
	if err := e.validate.Struct(lf); err != nil {
		return fmt.Errorf("validate %s: %w", lexiconFileName, err)
	}
	for _, r := range lf.Roots {
		e.lexicon.addRoot(r)
	}
	for _, n := range lf.Nouns {
		e.lexicon.addNoun(n)
	}
	roots, nouns := e.lexicon.Len()
	e.log.Info("lexicon loaded", zap.Int("roots", roots), zap.Int("nouns", nouns))
	return nil
}

// loadTemplates reads templates.json.
func (e *Engine) loadTemplates(fsys fs.FS) error {
	var ts TemplateSet
	if err := readJSON(fsys, templatesFileName, &ts); err != nil {
		return err
	}
	if err := e.validate.Struct(ts); err != nil {
		return fmt.Errorf("validate %s: %w", templatesFileName, err)
	}
	e.templates = ts
	e.log.Info("templates loaded",
		zap.Int("verb_types", len(ts.Types)),
		zap.Int("weak_root_rules", len(ts.WeakRootRules)))
	return nil
}

// loadStems reads stems.json. Both {"stems": {...}} and a bare map of
// stem code to definition are accepted.
func (e *Engine) loadStems(fsys fs.FS) error {
	var raw map[string]json.RawMessage
	if err := readJSON(fsys, stemsFileName, &raw); err != nil {
		return err
	}
	body, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if inner, ok := raw["stems"]; ok {
		body = inner
	}
	stems := make(map[string]*StemDefinition)
	if err := json.Unmarshal(body, &stems); err != nil {
		return fmt.Errorf("parse %s: %w", stemsFileName, err)
	}
	for code, sd := range stems {
		if sd == nil {
			return fmt.Errorf("validate %s: stem %q is null", stemsFileName, code)
		}
		if err := e.validate.Struct(sd); err != nil {
			return fmt.Errorf("validate %s: stem %q: %w", stemsFileName, code, err)
		}
	}
	e.stems = stems
	e.log.Info("stems loaded", zap.Int("stems", len(stems)))
	return nil
}
