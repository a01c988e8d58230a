package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jtb/fifa_manager/controller"
	"github.com/jtb/fifa_manager/db"
	"github.com/jtb/fifa_manager/model"
	"github.com/unrolled/render"
)

// Failures that aren't the client's fault collapse into one generic
// payload; the real error goes to the log, not the response.
const serverErrorMsg = "Server error"

func searchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := filterFromQuery(r)

		results, total, err := ctrl.Search(r.Context(), f)
		if err != nil {
			log.Printf("error searching players: %v", err)
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": serverErrorMsg})
			return
		}

		w.Header().Set("X-Total-Count", strconv.Itoa(total))
		render.JSON(w, http.StatusOK, results)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := playerIDParam(r)

		p, err := ctrl.GetPlayer(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.JSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
			} else {
				log.Printf("error getting player %d: %v", id, err)
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": serverErrorMsg})
			}
			return
		}

		render.JSON(w, http.StatusOK, p)
	}
}

func compareHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query().Get("ids")

		players, err := ctrl.ComparePlayers(r.Context(), ids)
		if err != nil {
			if errors.Is(err, controller.ErrNoPlayerIDs) {
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": "No IDs provided"})
			} else {
				log.Printf("error comparing players (ids=%s): %v", ids, err)
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": serverErrorMsg})
			}
			return
		}

		render.JSON(w, http.StatusOK, players)
	}
}

func createPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload model.PlayerUpsert
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("error parsing request body: %v", err)})
			return
		}

		id, err := ctrl.CreatePlayer(r.Context(), &payload)
		if err != nil {
			if errors.Is(err, model.ErrInvalidPlayer) {
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			} else {
				log.Printf("error creating player: %v", err)
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": serverErrorMsg})
			}
			return
		}

		render.JSON(w, http.StatusCreated, map[string]any{"message": "Player created", "id": id})
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := playerIDParam(r)

		var payload model.PlayerUpsert
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("error parsing request body: %v", err)})
			return
		}

		if err := ctrl.UpdatePlayer(r.Context(), id, &payload); err != nil {
			switch {
			case errors.Is(err, model.ErrInvalidPlayer):
				render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			case errors.Is(err, db.ErrPlayerNotFound):
				render.JSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
			default:
				log.Printf("error updating player %d: %v", id, err)
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": serverErrorMsg})
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"message": "Player updated successfully"})
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := playerIDParam(r)

		if err := ctrl.DeletePlayer(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.JSON(w, http.StatusNotFound, map[string]string{"error": "Player not found"})
			} else {
				log.Printf("error deleting player %d: %v", id, err)
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": serverErrorMsg})
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"message": "Player deleted successfully", "id": id})
	}
}

// playerIDParam reads the playerID path parameter. The route pattern
// only matches digits, so the conversion cannot fail for routed
// requests.
func playerIDParam(r *http.Request) int32 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 32)
	return int32(id)
}

// filterFromQuery builds the structured search filter from the query
// string. Bad page/limit values fall back to the defaults.
func filterFromQuery(r *http.Request) model.SearchFilter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return model.SearchFilter{
		Name:     q.Get("name"),
		League:   q.Get("league"),
		Club:     q.Get("club"),
		Position: q.Get("position"),
		Page:     page,
		Limit:    limit,
	}
}
