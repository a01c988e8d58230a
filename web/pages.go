package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jtb/fifa_manager/controller"
	"github.com/jtb/fifa_manager/db"
	"github.com/jtb/fifa_manager/model"
	"github.com/unrolled/render"
)

func welcomePageHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "welcome", nil)
	}
}

func searchPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := filterFromQuery(r)

		results, total, err := ctrl.Search(r.Context(), f)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			return
		}

		data := map[string]any{
			"filter":  f,
			"results": results,
			"total":   total,
		}
		render.HTML(w, http.StatusOK, "playerSearch", data)
	}
}

func playerPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.GetPlayer(r.Context(), playerIDParam(r))
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			}
			return
		}

		render.HTML(w, http.StatusOK, "player", p)
	}
}

// The compare page is rendered empty; static/compare.js reads the
// selection from local storage and fetches /api/players/compare/data.
func comparePageHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusOK, "compare", nil)
	}
}

func adminPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := model.SearchFilter{
			Name:  r.URL.Query().Get("name"),
			Limit: 50,
		}

		results, total, err := ctrl.Search(r.Context(), f)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			return
		}

		data := map[string]any{
			"name":    f.Name,
			"results": results,
			"total":   total,
		}
		render.HTML(w, http.StatusOK, "admin", data)
	}
}

// playerFormPageHandler serves both the create form (no playerID in the
// path) and the edit form (existing player loaded into the fields).
func playerFormPageHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var player *model.Player
		if id := playerIDParam(r); id != 0 {
			var err error
			player, err = ctrl.GetPlayer(r.Context(), id)
			if err != nil {
				if errors.Is(err, db.ErrPlayerNotFound) {
					render.HTML(w, http.StatusNotFound, "404", "player not found")
				} else {
					render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
				}
				return
			}
		}

		countries, err := ctrl.ListCountries(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			return
		}
		clubs, err := ctrl.ListClubs(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			return
		}

		data := map[string]any{
			"player":    player,
			"countries": countries,
			"clubs":     clubs,
		}
		render.HTML(w, http.StatusOK, "playerForm", data)
	}
}

func createPlayerFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := upsertFromForm(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		id, err := ctrl.CreatePlayer(r.Context(), payload)
		if err != nil {
			if errors.Is(err, model.ErrInvalidPlayer) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/players/%d", id), http.StatusSeeOther)
	}
}

func updatePlayerFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := playerIDParam(r)

		payload, err := upsertFromForm(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if err := ctrl.UpdatePlayer(r.Context(), id, payload); err != nil {
			switch {
			case errors.Is(err, model.ErrInvalidPlayer):
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			case errors.Is(err, db.ErrPlayerNotFound):
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			default:
				render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/players/%d", id), http.StatusSeeOther)
	}
}

func deletePlayerFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := playerIDParam(r)

		if err := ctrl.DeletePlayer(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", serverErrorMsg)
			}
			return
		}

		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

// upsertFromForm converts the admin form fields into the same payload
// shape the JSON API accepts. Numeric fields left blank fall back to
// zero, mirroring the original form behavior.
func upsertFromForm(r *http.Request) (*model.PlayerUpsert, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("error parsing form: %w", err)
	}

	u := &model.PlayerUpsert{
		ShortName:         r.PostForm.Get("Short_name"),
		Position:          r.PostForm.Get("Player_position"),
		NationalityID:     formID(r, "Nationality_id"),
		ClubTeamID:        formID(r, "Club_team_id"),
		Overall:           formInt(r, "Overall"),
		Age:               formInt(r, "Age"),
		Height:            formFloat(r, "Height"),
		Weight:            formFloat(r, "Weight"),
		PreferredPosition: r.PostForm.Get("Preferred_Position"),
		WeakFoot:          formInt(r, "Weak_foot"),
		Pace:              formInt(r, "Pace"),
		Shooting:          formInt(r, "Shooting"),
		Passing:           formInt(r, "Passing"),
		Dribbling:         formInt(r, "Dribbling"),
		Defending:         formInt(r, "Defending"),
		Physic:            formInt(r, "Physic"),
	}

	if dob := r.PostForm.Get("DOB"); dob != "" {
		u.DOB = &dob
	}

	return u, nil
}

func formInt(r *http.Request, field string) int {
	v, _ := strconv.Atoi(r.PostForm.Get(field))
	return v
}

func formFloat(r *http.Request, field string) float64 {
	v, _ := strconv.ParseFloat(r.PostForm.Get(field), 64)
	return v
}

func formID(r *http.Request, field string) *int32 {
	v, err := strconv.ParseInt(r.PostForm.Get(field), 10, 32)
	if err != nil {
		return nil
	}
	id := int32(v)
	return &id
}
