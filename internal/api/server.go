// Package api exposes the analyzer over HTTP: a small upload form and a
// JSON analysis API.
package api

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fmuoria/resume-analyzer/internal/agent"
	"github.com/fmuoria/resume-analyzer/internal/export"
)

//go:embed index.html
var indexPage []byte

// maxUploadBytes caps the multipart form size at 16 MB; resumes are
// small documents.
const maxUploadBytes = 16 << 20

// Server handles HTTP requests
type Server struct {
	agent  *agent.Analyzer
	logger *zap.Logger
}

// NewServer creates a new API server
func NewServer(a *agent.Analyzer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{agent: a, logger: logger}
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /report", s.handleReport)
	mux.HandleFunc("GET /report/export", s.handleExport)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.loggingMiddleware(mux)
}

// handleIndex serves the upload form
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

// handleHealth provides a health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// handleAnalyze accepts a multipart form with a "resume" file and a
// "job_description" text field and runs the full analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse form: %v", err))
		return
	}

	jobDesc := r.FormValue("job_description")
	if strings.TrimSpace(jobDesc) == "" {
		s.respondError(w, http.StatusBadRequest, "job_description is required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" && ext != ".txt" && ext != ".docx" {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unsupported file type: %s", ext))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read resume file")
		return
	}

	if _, err := s.agent.FileHandler.SaveUploadedFile(header.Filename, bytes.NewReader(data)); err != nil {
		s.logger.Warn("failed to persist upload", zap.String("filename", header.Filename), zap.Error(err))
	}

	report, err := s.agent.Analyze(r.Context(), header.Filename, data, jobDesc)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, report)
}

// handleReport returns the most recent analysis
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.agent.LastReport()
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, report)
}

// handleExport downloads the most recent analysis as an Excel workbook
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	report, err := s.agent.LastReport()
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	data, err := export.ToExcel(report)
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("resume_analysis_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// respondJSON sends a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error response
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}
