// Package ui exposes the analysis engine over HTTP.
package ui

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"scistat/analysis"
	"scistat/app"
	"scistat/domain/core"
	"scistat/domain/sample"
	"scistat/ports"
)

// Server serves the analysis API and rendered report pages
type Server struct {
	router   *gin.Engine
	analyzer *app.AnalyzerService
	repo     ports.ReportRepository
	port     string
}

// NewServer creates the server and registers all routes
func NewServer(analyzer *app.AnalyzerService, repo ports.ReportRepository, port string) *Server {
	s := &Server{
		router:   gin.Default(),
		analyzer: analyzer,
		repo:     repo,
		port:     port,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/reports", s.handleListReports)
		api.GET("/reports/:id", s.handleGetReport)
	}

	s.router.GET("/reports/:id", s.handleReportPage)
}

// Handler exposes the route tree for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks
func (s *Server) Run() error {
	log.Printf("[Server] listening on :%s", s.port)
	return s.router.Run(":" + s.port)
}

// GroupPayload is one labeled member of a group analysis request
type GroupPayload struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// AnalyzeRequest is the JSON shape of POST /api/analyze
type AnalyzeRequest struct {
	X          []float64      `json:"x"`
	Y          []float64      `json:"y,omitempty"`
	Groups     []GroupPayload `json:"groups,omitempty"`
	Name       string         `json:"name,omitempty"`
	XName      string         `json:"xname,omitempty"`
	YName      string         `json:"yname,omitempty"`
	Categories string         `json:"categories,omitempty"`
	Alpha      float64        `json:"alpha,omitempty"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var payload AnalyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	req := analysis.Request{
		X:          payload.X,
		Y:          payload.Y,
		Name:       payload.Name,
		XName:      payload.XName,
		YName:      payload.YName,
		Categories: payload.Categories,
		Alpha:      payload.Alpha,
	}
	if len(payload.Groups) > 0 {
		g := sample.NewGroup()
		for _, member := range payload.Groups {
			g.Add(member.Label, sample.New(member.Values))
		}
		req.Groups = g
	}

	outcome, err := s.analyzer.Analyze(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsCleaningError(err) || errors.Is(err, core.ErrEmptyGroup) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (s *Server) handleGetReport(c *gin.Context) {
	rep, err := s.repo.GetByID(c.Request.Context(), core.ReportID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) handleListReports(c *gin.Context) {
	reports, err := s.repo.List(c.Request.Context(), 50, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// handleReportPage renders the stored report as an HTML page
func (s *Server) handleReportPage(c *gin.Context) {
	rep, err := s.repo.GetByID(c.Request.Context(), core.ReportID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "report not found")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	page := markdown.ToHTML([]byte(rep.Markdown()), p, renderer)

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
