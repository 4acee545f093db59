package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/vidkeeper/internal/common"
	"github.com/dmitrijs2005/vidkeeper/internal/logging"
	"github.com/dmitrijs2005/vidkeeper/internal/models"
	"github.com/dmitrijs2005/vidkeeper/internal/services"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front-end for the video catalog.
type Server struct {
	addr    string
	catalog services.CatalogService
	logger  logging.Logger
	handler http.Handler

	indexTmpl    *template.Template
	videoTmpl    *template.Template
	notFoundTmpl *template.Template
	errorTmpl    *template.Template
}

// NewServer builds a server listening on addr and backed by catalog.
// Templates are parsed here so a malformed one fails at startup, not on
// the first request.
func NewServer(addr string, catalog services.CatalogService, logger logging.Logger) *Server {
	s := &Server{
		addr:         addr,
		catalog:      catalog,
		logger:       logger,
		indexTmpl:    template.Must(template.New("index").Parse(indexHTML)),
		videoTmpl:    template.Must(template.New("video").Parse(videoHTML)),
		notFoundTmpl: template.Must(template.New("notfound").Parse(notFoundHTML)),
		errorTmpl:    template.Must(template.New("error").Parse(errorHTML)),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/videos/{id:[0-9]+}", s.handleVideo).Methods(http.MethodGet)
	r.HandleFunc("/videos/{id:[0-9]+}/delete", s.handleDelete).Methods(http.MethodPost)

	s.handler = s.requestLogger(gorillaHandlers.RecoveryHandler()(r))
	return s
}

// Handler returns the fully wrapped route tree.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info(ctx, "server stopped")
	return nil
}

// requestLogger tags each request with a generated id and logs it once
// the response is written.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.With("request_id", uuid.NewString())
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Info(r.Context(), "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"duration", m.Duration,
		)
	})
}

// pageVideo is a models.Video flattened for template rendering.
type pageVideo struct {
	ID       int64
	Title    string
	Uploader string
	Tags     string
	Uploaded string
}

func toPageVideo(v models.Video) pageVideo {
	tags := "-"
	if len(v.Tags) > 0 {
		tags = strings.Join(v.Tags, ", ")
	}
	return pageVideo{
		ID:       v.ID,
		Title:    v.Title,
		Uploader: v.Uploader,
		Tags:     tags,
		Uploaded: v.UploadedAt.Format(time.RFC1123),
	}
}

// uploadForm carries submitted field values back into the index page so
// a rejected upload does not wipe what the user typed.
type uploadForm struct {
	Title       string
	Description string
	Uploader    string
	Tags        string
}

type indexPage struct {
	Videos []pageVideo
	Query  string
	Error  string
	Form   uploadForm
}

type videoPage struct {
	Video pageVideo
	JSON  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	records, err := s.catalog.Search(r.Context(), query)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderIndex(w, r, http.StatusOK, indexPage{
		Videos: toPageVideos(records),
		Query:  strings.TrimSpace(query),
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	form := uploadForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Uploader:    r.PostFormValue("uploader"),
		Tags:        r.PostFormValue("tags"),
	}

	_, err := s.catalog.Upload(r.Context(), form.Title, form.Description,
		form.Uploader, models.ParseTags(form.Tags))
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !errors.Is(err, common.ErrorValidation) {
		s.renderError(w, r, err)
		return
	}

	// Re-render the index with the rejected values still in the form.
	records, listErr := s.catalog.List(r.Context())
	if listErr != nil {
		s.renderError(w, r, listErr)
		return
	}
	s.renderIndex(w, r, http.StatusUnprocessableEntity, indexPage{
		Videos: toPageVideos(records),
		Error:  "Title must not be empty.",
		Form:   form,
	})
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	v, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.renderNotFound(w, r, id)
			return
		}
		s.renderError(w, r, err)
		return
	}

	b, err := json.MarshalIndent(v, "", common.JSONIndent)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, s.videoTmpl, videoPage{
		Video: toPageVideo(*v),
		JSON:  string(b),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.renderNotFound(w, r, id)
			return
		}
		s.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// pathID extracts the id route variable. The route pattern only admits
// digits, so a parse failure means an id too large for int64.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

func toPageVideos(records []models.Video) []pageVideo {
	out := make([]pageVideo, 0, len(records))
	for _, v := range records {
		out = append(out, toPageVideo(v))
	}
	return out
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, status int, data indexPage) {
	s.render(w, r, status, s.indexTmpl, data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error(r.Context(), "rendering page", "template", tmpl.Name(), "error", err)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request, id int64) {
	s.render(w, r, http.StatusNotFound, s.notFoundTmpl, struct{ ID int64 }{ID: id})
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	s.render(w, r, http.StatusInternalServerError, s.errorTmpl, struct{ Message string }{
		Message: err.Error(),
	})
}
