// Package api exposes the quiz session API over HTTP for a browser front end.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 16

// API serves the JSON quiz endpoints
type API struct {
	quiz   *service.QuizService
	store  *service.SessionStore
	logger *zap.Logger
}

// New creates the HTTP API
func New(quiz *service.QuizService, store *service.SessionStore, logger *zap.Logger) *API {
	return &API{
		quiz:   quiz,
		store:  store,
		logger: logger,
	}
}

// Routes builds the router. origins is the CORS allow list.
func (a *API) Routes(origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(requestLogger(a.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words_loaded": a.quiz.Available()})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/grades", a.listGrades)
		r.Post("/sessions", a.createSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", a.getSession)
			r.Delete("/", a.deleteSession)
			r.Post("/answer", a.answer)
			r.Post("/next", a.next)
			r.Post("/restart", a.restart)
		})
	})

	return r
}

type sessionView struct {
	ID       string               `json:"id"`
	Grade    string               `json:"grade"`
	State    domain.SessionState  `json:"state"`
	Screen   domain.Screen        `json:"screen"`
	Meaning  string               `json:"meaning,omitempty"`
	Options  []string             `json:"options,omitempty"`
	Current  int                  `json:"current"`
	Total    int                  `json:"total"`
	Feedback *domain.AnswerResult `json:"feedback,omitempty"`
}

type answerResponse struct {
	domain.AnswerResult
	Session sessionView `json:"session"`
}

func newView(id string, e *service.Entry) sessionView {
	current, total := e.Session.Progress()
	v := sessionView{
		ID:       id,
		Grade:    e.Session.Grade(),
		State:    e.Session.State(),
		Screen:   e.Screen,
		Options:  e.Options,
		Current:  current,
		Total:    total,
		Feedback: e.Feedback,
	}
	if q, err := e.Session.CurrentQuestion(); err == nil {
		v.Meaning = q.Meaning
	}
	return v
}

func (a *API) listGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := a.quiz.Grades()
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"grades": grades})
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Grade string `json:"grade"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := a.quiz.Start(req.Grade)
	if err != nil {
		a.writeError(w, err)
		return
	}

	id := uuid.NewString()
	if err := a.store.Create(id, sess); err != nil {
		a.writeError(w, err)
		return
	}

	a.logger.Info("Quiz started over HTTP",
		zap.String("session_id", id),
		zap.String("grade", req.Grade),
	)

	a.withEntry(w, r, id, http.StatusCreated, nil)
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	a.withEntry(w, r, chi.URLParam(r, "id"), http.StatusOK, nil)
}

func (a *API) deleteSession(w http.ResponseWriter, r *http.Request) {
	a.store.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) answer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	var resp answerResponse
	err := a.store.Do(id, func(e *service.Entry) error {
		result, err := e.Answer(req.Word)
		if err != nil {
			return err
		}
		resp = answerResponse{AnswerResult: result, Session: newView(id, e)}
		return nil
	})
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) next(w http.ResponseWriter, r *http.Request) {
	a.withEntry(w, r, chi.URLParam(r, "id"), http.StatusOK, (*service.Entry).Next)
}

func (a *API) restart(w http.ResponseWriter, r *http.Request) {
	a.withEntry(w, r, chi.URLParam(r, "id"), http.StatusOK, (*service.Entry).Restart)
}

// withEntry applies action to the session and writes its view
func (a *API) withEntry(w http.ResponseWriter, r *http.Request, id string, status int, action func(*service.Entry) error) {
	var view sessionView
	err := a.store.Do(id, func(e *service.Entry) error {
		if action != nil {
			if err := action(e); err != nil {
				return err
			}
		}
		view = newView(id, e)
		return nil
	})
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, status, view)
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDataLoad):
		writeErr(w, http.StatusServiceUnavailable, domain.MsgLoadFailed)
	case errors.Is(err, domain.ErrUnknownGrade), errors.Is(err, service.ErrSessionNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyPool):
		writeErr(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrSessionFinished), errors.Is(err, service.ErrAnswerRequired):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		a.logger.Error("Unhandled API error", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errResp{Error: msg})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
