package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"svw.info/sudokugen/internal/board"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Routes mounts the JSON API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/generate", h.generate)
	r.Post("/api/solve", h.solve)
	r.Post("/api/validate", h.validate)
	r.Post("/api/hint", h.hint)
	r.Post("/api/puzzles", h.save)
	r.Get("/api/puzzles", h.list)
	r.Get("/api/puzzles/{id}", h.load)
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errResp{Error: err.Error()})
}

// statusFor maps engine errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnsupportedVariant),
		errors.Is(err, board.ErrInvalidBoardShape),
		errors.Is(err, generator.ErrInvalidHintCount):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrUnsolvable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func fail(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, statusFor(err))
	render.JSON(w, r, errResp{Error: err.Error()})
}

// boardReq is the shared request shape for board-consuming endpoints.
type boardReq struct {
	Board   [9][9]uint8 `json:"board"`
	Variant string      `json:"variant,omitempty"`
}

// toBoard validates the request matrix and wraps it with its variant.
func (req *boardReq) toBoard() (*board.Board, error) {
	v := domain.Standard
	if req.Variant != "" {
		parsed, err := domain.ParseVariant(req.Variant)
		if err != nil {
			return nil, err
		}
		v = parsed
	}
	return board.FromValues(req.Board, v)
}

// ---- Generate ----

type generateReq struct {
	Variant string `json:"variant,omitempty"`
	Hints   int    `json:"hints,omitempty"`
	Seed    int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	v := domain.Standard
	if req.Variant != "" {
		parsed, err := domain.ParseVariant(req.Variant)
		if err != nil {
			badRequest(w, r, err)
			return
		}
		v = parsed
	}
	if req.Hints == 0 {
		req.Hints = 32
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), req.Seed, req.Hints, v)
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, generateResp{
		Puzzle:     p,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveResp struct {
	Board      [9][9]uint8 `json:"board"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handler) solve(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	in, err := req.toBoard()
	if err != nil {
		fail(w, r, err)
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, solveResp{Board: out.Matrix(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	v := domain.Standard
	if req.Variant != "" {
		parsed, err := domain.ParseVariant(req.Variant)
		if err != nil {
			badRequest(w, r, err)
			return
		}
		v = parsed
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Board, v)
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(w http.ResponseWriter, r *http.Request) {
	var req boardReq
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, err)
		return
	}
	b, err := req.toBoard()
	if err != nil {
		fail(w, r, err)
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), b)
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := render.DecodeJSON(r.Body, &p); err != nil {
		badRequest(w, r, err)
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, saveResp{ID: p.ID})
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, p)
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	render.JSON(w, r, listResp{Puzzles: ps})
}
