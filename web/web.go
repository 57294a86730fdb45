// Package web provides the folio web server: routing, templates, embedded
// assets, sessions and the uploaded media directory.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/folio-panel/folio/config"
	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/util/common"
	"github.com/folio-panel/folio/web/controller"
	"github.com/folio-panel/folio/web/locale"
	"github.com/folio-panel/folio/web/middleware"
	"github.com/folio-panel/folio/web/service"
	"github.com/folio-panel/folio/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//go:embed assets
var assetsFS embed.FS

//go:embed html/*
var htmlFS embed.FS

//go:embed translation/*
var i18nFS embed.FS

var startTime = time.Now()

type wrapAssetsFS struct {
	embed.FS
}

func (f *wrapAssetsFS) Open(name string) (fs.File, error) {
	file, err := f.FS.Open("assets/" + name)
	if err != nil {
		return nil, err
	}
	return &wrapAssetsFile{File: file}, nil
}

type wrapAssetsFile struct {
	fs.File
}

func (f *wrapAssetsFile) Stat() (fs.FileInfo, error) {
	info, err := f.File.Stat()
	if err != nil {
		return nil, err
	}
	return &wrapAssetsFileInfo{FileInfo: info}, nil
}

type wrapAssetsFileInfo struct {
	fs.FileInfo
}

func (f *wrapAssetsFileInfo) ModTime() time.Time {
	return startTime
}

// Server is the folio web server. It owns no global state: the store handle
// and configuration are injected by the caller.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db  *gorm.DB
	cfg *config.WebConfig

	index *controller.IndexController
	admin *controller.AdminController

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer(db *gorm.DB, cfg *config.WebConfig) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{db: db, cfg: cfg, ctx: ctx, cancel: cancel}
}

// getHtmlFiles walks the local `web/html` directory and returns a list of
// template file paths. Used only in debug/development mode.
func (s *Server) getHtmlFiles() ([]string, error) {
	files := make([]string, 0)
	dir, _ := os.Getwd()
	err := fs.WalkDir(os.DirFS(dir), "web/html", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// getHtmlTemplate parses embedded HTML templates from the bundled `htmlFS`.
func (s *Server) getHtmlTemplate(funcMap template.FuncMap) (*template.Template, error) {
	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(htmlFS, "html", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			newT, err := t.ParseFS(htmlFS, path+"/*.html")
			if err != nil {
				// ignore folders without matches
				return nil
			}
			t = newT
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// initRouter initializes Gin, registers middleware, templates, static assets,
// controllers and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	if err := locale.InitLocalizer(i18nFS); err != nil {
		return nil, err
	}

	engine := gin.Default()
	engine.Use(middleware.RequestIDMiddleware())

	if s.cfg.Domain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(s.cfg.Domain))
	}
	engine.Use(middleware.BodyLimitMiddleware(s.cfg.MaxUploadSize))

	store := cookie.NewStore([]byte(s.cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions(session.CookieName, store))

	// API responses are small JSON bodies
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/admin/api/"}),
	))
	engine.Use(locale.LocalizerMiddleware())

	funcMap := template.FuncMap{"dict": dict, "csv": csv}
	engine.SetFuncMap(funcMap)

	if config.IsDebug() {
		files, err := s.getHtmlFiles()
		if err != nil {
			return nil, err
		}
		engine.LoadHTMLFiles(files...)
		engine.StaticFS("/assets", http.FS(os.DirFS("web/assets")))
	} else {
		tpl, err := s.getHtmlTemplate(funcMap)
		if err != nil {
			return nil, err
		}
		engine.SetHTMLTemplate(tpl)
		engine.StaticFS("/assets", http.FS(&wrapAssetsFS{FS: assetsFS}))
	}

	uploads := service.NewUploadService(s.cfg.UploadFolder)
	if err := os.MkdirAll(uploads.Folder(), 0o755); err != nil {
		return nil, err
	}
	engine.Static("/static/uploads", uploads.Folder())

	// Redirects (/admin -> /admin/dashboard etc.)
	engine.Use(middleware.RedirectMiddleware())

	g := engine.Group("/")
	s.index = controller.NewIndexController(g,
		service.NewContentService(s.db),
		service.NewUserService(s.db),
		service.NewLoginLimiter(service.DefaultMaxLoginFailures, service.DefaultLoginWindow),
		s.cfg.SessionMaxAge,
	)
	s.admin = controller.NewAdminController(g, s.db, uploads)

	// 404 handler
	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// dict builds a map from alternating keys and values for passing several
// values to a nested template.
func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, common.NewErrorf("dict expects an even number of arguments, got %d", len(values))
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, common.NewErrorf("dict key %v is not a string", values[i])
		}
		m[key] = values[i+1]
	}
	return m, nil
}

// csv splits a comma separated list, dropping blank entries.
func csv(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(s.cfg.Listen, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts end when the server is stopped
		BaseContext: func(net.Listener) context.Context { return s.ctx },
	}

	go func() {
		defer common.Recover("web server")
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("web server stopped:", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer s.cancel()

	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	// Shutdown already closes the listener
	if errors.Is(err2, net.ErrClosed) {
		err2 = nil
	}
	return common.Combine(err1, err2)
}
