package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jtb/fifa_manager/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	// JSON API consumed by the browser pages.
	r.Route("/api/players", func(r chi.Router) {
		r.Get("/search", searchHandler(ctrl, render))
		r.Get("/compare/data", compareHandler(ctrl, render))
		r.Get("/{playerID:\\d+}", getPlayerHandler(ctrl, render))
		r.Post("/", createPlayerHandler(ctrl, render))
		r.Put("/{playerID:\\d+}", updatePlayerHandler(ctrl, render))
		r.Delete("/{playerID:\\d+}", deletePlayerHandler(ctrl, render))
	})

	// Browser pages.
	r.Get("/", welcomePageHandler(ctrl, render))
	r.Get("/search", searchPageHandler(ctrl, render))
	r.Get("/players/{playerID:\\d+}", playerPageHandler(ctrl, render))
	r.Get("/compare", comparePageHandler(ctrl, render))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Get("/", adminPageHandler(ctrl, render))
		r.Get("/players/new", playerFormPageHandler(ctrl, render))
		r.Get("/players/{playerID:\\d+}/edit", playerFormPageHandler(ctrl, render))
		r.Post("/players", createPlayerFormHandler(ctrl, render))
		r.Post("/players/{playerID:\\d+}", updatePlayerFormHandler(ctrl, render))
		r.Post("/players/{playerID:\\d+}/delete", deletePlayerFormHandler(ctrl, render))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS()))))

	return r
}
