package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/jtb/fifa_manager/controller"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"stat":   statFormatter,
				"txt":    textFormatter,
				"metric": metricFormatter,
				"money":  moneyFormatter,
				"date":   dateFormatter,
				"refid":  refidFormatter,
			},
		},
	})
}

func staticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// The static directory is embedded at compile time, a failure
		// here means the binary itself is broken.
		log.Fatalf("static assets missing from binary: %v", err)
	}
	return sub
}
