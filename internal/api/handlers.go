package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethiomorph/ethiomorph"
	"go.uber.org/zap"
)

const frameworkName = "EthioMorph Research Platform"

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Framework string `json:"framework"`
	Version   string `json:"version"`
}

type server struct {
	engine  *ethiomorph.Engine
	log     *zap.Logger
	metrics *Metrics
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// writeEngineError reports a generation failure. Structured morphology
// errors keep their kind on the wire.
func (s *server) writeEngineError(w http.ResponseWriter, err error) {
	var me *ethiomorph.MorphError
	if errors.As(err, &me) {
		status := http.StatusBadRequest
		if me.Kind == ethiomorph.ErrRootTooShort {
			status = http.StatusUnprocessableEntity
		}
		s.writeJSON(w, status, me)
		return
	}
	s.log.Error("engine call failed", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

// param returns a cleaned query parameter, or writes a 400 and reports
// false when it is required and missing.
func (s *server) param(w http.ResponseWriter, r *http.Request, name string, required bool) (string, bool) {
	v := ethiomorph.CleanInput(r.URL.Query().Get(name))
	if v == "" && required {
		s.writeError(w, http.StatusBadRequest, "missing '"+name+"' query parameter")
		return "", false
	}
	return v, true
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	word, ok := s.param(w, r, "word", true)
	if !ok {
		return
	}
	res := s.engine.ExtractRoot(word)
	s.metrics.Analyses.WithLabelValues(string(res.Analysis.Method)).Inc()
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handleExpand(w http.ResponseWriter, r *http.Request) {
	root, ok := s.param(w, r, "root", true)
	if !ok {
		return
	}
	verbType, _ := s.param(w, r, "verb_type", false)

	m, err := s.engine.ExpandRoot(root, verbType)
	s.metrics.observeGeneration("expand", err)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *server) handleExpandSimple(w http.ResponseWriter, r *http.Request) {
	root, ok := s.param(w, r, "root", true)
	if !ok {
		return
	}
	verbType, _ := s.param(w, r, "verb_type", false)

	m, err := s.engine.ExpandRootSimple(root, verbType)
	s.metrics.observeGeneration("expand_simple", err)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	root, ok := s.param(w, r, "root", true)
	if !ok {
		return
	}
	tense, _ := s.param(w, r, "tense", false)
	if tense == "" {
		tense = string(ethiomorph.Perfective)
	}
	subject, _ := s.param(w, r, "subject", false)
	if subject == "" {
		subject = "3sm"
	}
	verbType, _ := s.param(w, r, "verb_type", false)

	g, err := s.engine.GenerateWord(root, ethiomorph.Tense(tense), subject, ethiomorph.GenerateOptions{VerbType: verbType})
	s.metrics.observeGeneration("generate", err)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *server) handleDerived(w http.ResponseWriter, r *http.Request) {
	root, ok := s.param(w, r, "root", true)
	if !ok {
		return
	}
	class, ok := s.param(w, r, "class", true)
	if !ok {
		return
	}
	verbType, _ := s.param(w, r, "verb_type", false)

	d, err := s.engine.GenerateDerived(root, class, verbType)
	s.metrics.observeGeneration("derived", err)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *server) handleStems(w http.ResponseWriter, r *http.Request) {
	root, ok := s.param(w, r, "root", true)
	if !ok {
		return
	}
	code, _ := s.param(w, r, "code", false)
	if code == "" {
		s.metrics.observeGeneration("stems", nil)
		s.writeJSON(w, http.StatusOK, s.engine.ExpandStems(root))
		return
	}

	sw, err := s.engine.GenerateStem(root, code)
	s.metrics.observeGeneration("stem", err)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sw)
}

func (s *server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Templates())
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Framework: frameworkName,
		Version:   ethiomorph.Version,
	})
}
