package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts the API on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/generate", h.handleGenerate)
	r.Post("/api/solve", h.handleSolve)
	r.Post("/api/compare", h.handleCompare)
	r.Post("/api/validate", h.handleValidate)
	r.Post("/api/hint", h.handleHint)
	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// Router returns a ready-to-serve router with the API mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func parseStrategy(s string) domain.Strategy {
	if strings.EqualFold(strings.TrimSpace(s), "minimax") {
		return domain.StrategyMinimax
	}
	return domain.StrategyBruteforce
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Generate ----

type generateReq struct {
	Seed  int64 `json:"seed,omitempty"`
	Large int   `json:"large,omitempty"`
	Count int   `json:"count,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	large, count := req.Large, req.Count
	if count == 0 {
		count = 6
	}
	if large == 0 {
		large = 1 + int(seed%4)
		if large > count {
			large = count
		}
	}
	p, st, err := h.UC.Generate(r.Context(), seed, large, count)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Puzzle: p, DurationMs: st.Duration.Milliseconds()})
}

// ---- Solve ----

type solveReq struct {
	Numbers  []int  `json:"numbers"`
	Target   int    `json:"target"`
	Strategy string `json:"strategy,omitempty"`
}

type solveResp struct {
	Expression string `json:"expression,omitempty"`
	Value      int    `json:"value,omitempty"`
	Score      int    `json:"score"`
	Exact      bool   `json:"exact"`
	Nodes      int    `json:"nodes,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	strategy := parseStrategy(req.Strategy)
	p := &domain.Puzzle{Numbers: req.Numbers, Target: req.Target}
	sol, st, err := h.UC.Solve(r.Context(), p, strategy)
	if err != nil {
		observeSolve(strategy, "error", st)
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	outcome := "approx"
	if sol.Exact() {
		outcome = "exact"
	}
	observeSolve(strategy, outcome, st)
	writeJSON(w, http.StatusOK, solveResp{
		Expression: sol.Render(),
		Value:      sol.Value(),
		Score:      sol.Score,
		Exact:      sol.Exact(),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Compare ----

type compareReq struct {
	Numbers []int `json:"numbers"`
	Target  int   `json:"target"`
}

type compareResp struct {
	Bruteforce solveResp `json:"bruteforce"`
	Minimax    solveResp `json:"minimax"`
	Verdict    string    `json:"verdict,omitempty"`
	Error      string    `json:"error,omitempty"`
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, compareResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	p := &domain.Puzzle{Numbers: req.Numbers, Target: req.Target}
	c, err := h.UC.Compare(r.Context(), p)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, compareResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, compareResp{
		Bruteforce: outcomeResp(c.Bruteforce),
		Minimax:    outcomeResp(c.Minimax),
		Verdict:    c.Verdict(),
	})
}

func outcomeResp(o usecase.Outcome) solveResp {
	return solveResp{
		Expression: o.Solution.Render(),
		Value:      o.Solution.Value(),
		Score:      o.Solution.Score,
		Exact:      o.Solution.Exact(),
		Nodes:      o.Stats.Nodes,
		DurationMs: o.Stats.Duration.Milliseconds(),
	}
}

// ---- Validate ----

type validateReq struct {
	Numbers []int `json:"numbers"`
	Target  int   `json:"target"`
}

type validateResp struct {
	OK       bool     `json:"ok"`
	Problems []string `json:"problems,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	p := &domain.Puzzle{Numbers: req.Numbers, Target: req.Target}
	ok, problems, err := h.UC.Validate(r.Context(), p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Problems: problems})
}

// ---- Hint ----

type hintReq struct {
	Numbers []int `json:"numbers"`
	Target  int   `json:"target"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), req.Numbers, req.Target)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hh})
}
