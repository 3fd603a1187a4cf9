package web

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jessejeter/spanish-tools/internal/conjugation"
	"github.com/jessejeter/spanish-tools/internal/deck"
	"github.com/jessejeter/spanish-tools/internal/domain"
	"github.com/jessejeter/spanish-tools/internal/srs"
	"github.com/jessejeter/spanish-tools/internal/storage"
)

//go:embed all:static
var staticFiles embed.FS

//go:embed all:templates
var templateFiles embed.FS

// Server holds the dependencies for the HTTP server.
type Server struct {
	db        *storage.DB
	router    *http.ServeMux
	params    *srs.Params
	syncOpts  deck.Options
	templates *template.Template
	now       func() time.Time
}

// NewServer creates and configures a new server.
func NewServer(db *storage.DB, params *srs.Params, syncOpts deck.Options) *Server {
	// Parse templates
	tpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	s := &Server{
		db:        db,
		router:    http.NewServeMux(),
		params:    params,
		syncOpts:  syncOpts,
		templates: tpl,
		now:       time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// routes sets up the routing for the server.
func (s *Server) routes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatalf("Failed to create sub-filesystem for static assets: %v", err)
	}
	fileServer := http.FileServer(http.FS(staticFS))

	s.router.Handle("/static/", http.StripPrefix("/static/", fileServer))
	s.router.Handle("/", fileServer)

	// HTMX-based routes
	s.router.HandleFunc("/deck", s.handleGetDeck())
	s.router.HandleFunc("/review/next", s.handleGetNextReview())
	s.router.HandleFunc("/review/answer/", s.handleShowAnswer())
	s.router.HandleFunc("/review/", s.handlePostReview())
	s.router.HandleFunc("/progress", s.handleGetProgress())
	s.router.HandleFunc("/conjugate", s.handleGetConjugation())

	// Source management routes
	s.router.HandleFunc("/sources", s.handleSources())
	s.router.HandleFunc("/sources/", s.handleDeleteSource())
	s.router.HandleFunc("/sync", s.handlePostSync())
}

// handlePostSync triggers a manual sync and re-renders the source list.
func (s *Server) handlePostSync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Run in the foreground to make the user wait for the result.
		if err := deck.RunSync(s.db, s.syncOpts); err != nil {
			slog.Error("Sync failed", "error", err)
			http.Error(w, "Sync failed", http.StatusInternalServerError)
			return
		}

		sources, err := s.db.AllSources()
		if err != nil {
			slog.Error("Error getting sources after sync", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data := map[string]interface{}{
			"Sources": sources,
		}

		// Render both the success message and the updated list
		s.templates.ExecuteTemplate(w, "sync_success", nil)
		s.templates.ExecuteTemplate(w, "source_list", data)
	}
}

// handleSources handles both GET and POST for the sources page.
func (s *Server) handleSources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			s.handleGetSources(w, r)
		case http.MethodPost:
			s.handlePostSource(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// handleGetSources renders the main sources management page.
func (s *Server) handleGetSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.db.AllSources()
	if err != nil {
		slog.Error("Error getting sources", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Sources": sources,
	}
	s.templates.ExecuteTemplate(w, "sources", data)
}

// handlePostSource adds a new source and re-renders the source list.
func (s *Server) handlePostSource(w http.ResponseWriter, r *http.Request) {
	path := r.PostFormValue("path")
	if path == "" {
		http.Error(w, "Path cannot be empty", http.StatusBadRequest)
		return
	}

	if existing, err := s.db.FindSourceByPath(path); err == nil && existing != nil {
		http.Error(w, "Source already exists", http.StatusConflict)
		return
	}

	if _, err := s.db.InsertSource(path, deck.SourceType(path)); err != nil {
		slog.Error("Error inserting new source", "error", err)
		http.Error(w, "Failed to add source", http.StatusInternalServerError)
		return
	}

	sources, err := s.db.AllSources()
	if err != nil {
		slog.Error("Error getting sources after add", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"Sources": sources,
	}
	s.templates.ExecuteTemplate(w, "source_list", data)
}

// handleDeleteSource deletes a source and re-renders the source list.
func (s *Server) handleDeleteSource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		idStr := strings.TrimPrefix(r.URL.Path, "/sources/")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid source ID", http.StatusBadRequest)
			return
		}

		if err := s.db.DeleteSource(id); err != nil {
			slog.Error("Error deleting source", "id", id, "error", err)
			http.Error(w, "Failed to delete source", http.StatusInternalServerError)
			return
		}

		sources, err := s.db.AllSources()
		if err != nil {
			slog.Error("Error getting sources after delete", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data := map[string]interface{}{
			"Sources": sources,
		}
		s.templates.ExecuteTemplate(w, "source_list", data)
	}
}

// handleGetDeck renders the deck view, showing the number of due entries.
func (s *Server) handleGetDeck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dueEntries, err := s.db.DueEntries(s.now())
		if err != nil {
			slog.Error("Error getting due entries for deck view", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data := map[string]interface{}{
			"DueCount":      len(dueEntries),
			"HasDueEntries": len(dueEntries) > 0,
		}
		s.templates.ExecuteTemplate(w, "deck", data)
	}
}

// handleGetNextReview renders the front of the next due flashcard.
func (s *Server) handleGetNextReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dueEntries, err := s.db.DueEntries(s.now())
		if err != nil {
			slog.Error("Error getting next due entry", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if len(dueEntries) == 0 {
			s.templates.ExecuteTemplate(w, "deck", map[string]interface{}{
				"DueCount":      0,
				"HasDueEntries": false,
			})
			return
		}
		next := dueEntries[0]
		s.templates.ExecuteTemplate(w, "card_front", next)
	}
}

// handleShowAnswer renders the back of a flashcard.
func (s *Server) handleShowAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash := strings.TrimPrefix(r.URL.Path, "/review/answer/")
		entry, err := s.db.FindEntryByHash(hash)
		if err != nil || entry == nil {
			http.NotFound(w, r)
			return
		}
		s.templates.ExecuteTemplate(w, "card_back", entry)
	}
}

// handlePostReview grades a flashcard and renders the next one.
func (s *Server) handlePostReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		hash := strings.TrimPrefix(r.URL.Path, "/review/")
		var outcome srs.Outcome
		if err := outcome.UnmarshalText([]byte(r.PostFormValue("outcome"))); err != nil {
			http.Error(w, "Invalid outcome", http.StatusBadRequest)
			return
		}

		entry, err := s.db.FindEntryByHash(hash)
		if err != nil || entry == nil {
			http.NotFound(w, r)
			return
		}

		now := s.now()
		updated, err := s.params.Review(entry.Item(), outcome, now)
		if err != nil {
			if errors.Is(err, srs.ErrInvalidTimestamp) {
				http.Error(w, "Review time is before the last review", http.StatusBadRequest)
				return
			}
			slog.Error("Error grading entry", "hash", hash, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		entry.ApplyItem(updated)
		if err := s.db.UpdateReviewState(entry); err != nil {
			slog.Error("Error updating review state", "hash", hash, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if err := s.db.InsertReviewLog(domain.ReviewLog{
			EntryHash:  hash,
			ReviewedAt: now,
			Outcome:    int(outcome),
		}); err != nil {
			slog.Warn("Failed to log review", "hash", hash, "error", err)
		}

		// After the review, show the next due card.
		s.handleGetNextReview()(w, r)
	}
}

// handleGetProgress renders learning-stage and review-history stats.
func (s *Server) handleGetProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := s.now()

		entries, err := s.db.AllEntries()
		if err != nil {
			slog.Error("Error getting entries for progress view", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		stages := make(map[srs.Stage]int)
		items := make([]srs.Item, 0, len(entries))
		for _, es := range entries {
			item := es.Item()
			stages[s.params.Stage(item)]++
			items = append(items, item)
		}
		due := srs.DueBy(items, now)

		outcomes, err := s.db.OutcomeCounts()
		if err != nil {
			slog.Error("Error getting outcome counts", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		reviewedToday, err := s.db.CountReviewsSince(midnight)
		if err != nil {
			slog.Error("Error counting today's reviews", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		data := map[string]interface{}{
			"New":           stages[srs.StageNew],
			"Learning":      stages[srs.StageLearning],
			"Mature":        stages[srs.StageMature],
			"Lapsed":        stages[srs.StageLapsed],
			"Fail":          outcomes[srs.Fail],
			"Hard":          outcomes[srs.Hard],
			"Good":          outcomes[srs.Good],
			"Easy":          outcomes[srs.Easy],
			"ReviewedToday": reviewedToday,
			"DueCount":      len(due),
		}
		s.templates.ExecuteTemplate(w, "progress", data)
	}
}

// handleGetConjugation renders a conjugation table for the requested verb.
func (s *Server) handleGetConjugation() http.HandlerFunc {
	type tenseRow struct {
		Tense conjugation.Tense
		Forms [6]string
	}
	return func(w http.ResponseWriter, r *http.Request) {
		verb := strings.TrimSpace(r.FormValue("verb"))
		if verb == "" {
			s.templates.ExecuteTemplate(w, "conjugation", map[string]interface{}{"Verb": ""})
			return
		}

		table, err := conjugation.Conjugate(verb)
		if err != nil {
			if errors.Is(err, conjugation.ErrNotInfinitive) {
				s.templates.ExecuteTemplate(w, "conjugation", map[string]interface{}{
					"Verb":  verb,
					"Error": "Not a conjugatable infinitive",
				})
				return
			}
			slog.Error("Error conjugating verb", "verb", verb, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		rows := make([]tenseRow, 0, len(table.Conjugations))
		for _, c := range table.Conjugations {
			rows = append(rows, tenseRow{Tense: c.Tense, Forms: c.Forms})
		}

		s.templates.ExecuteTemplate(w, "conjugation", map[string]interface{}{
			"Verb":    table.Infinitive,
			"Persons": conjugation.Persons,
			"Rows":    rows,
		})
	}
}
