package model

import (
	"errors"
	"fmt"
	"time"
)

// PlayerSummary is the minimal shape used by list views and search
// results. The joined names come from the country, club and league
// tables and may be null when the player has no club or nationality.
type PlayerSummary struct {
	ID          int32   `json:"player_id"`
	ShortName   string  `json:"short_name"`
	Position    string  `json:"player_position"`
	Overall     int     `json:"overall"`
	Nationality *string `json:"nationality_name"`
	ClubName    *string `json:"club_name"`
	LeagueName  *string `json:"league_name"`
}

// Player is the full denormalized record for a detail view: every
// player column plus the joined reference names and the one-to-one
// ratings and additional_info columns. A player without ratings or
// additional info has nil for those fields.
type Player struct {
	ID            int32   `json:"player_id"`
	ShortName     string  `json:"short_name"`
	Position      string  `json:"player_position"`
	NationalityID *int32  `json:"nationality_id"`
	ClubTeamID    *int32  `json:"club_team_id"`
	Overall       int     `json:"overall"`
	Nationality   *string `json:"nationality_name"`
	ClubName      *string `json:"club_name"`
	LeagueName    *string `json:"league_name"`

	Pace      *int `json:"pace"`
	Shooting  *int `json:"shooting"`
	Passing   *int `json:"passing"`
	Dribbling *int `json:"dribbling"`
	Defending *int `json:"defending"`
	Physic    *int `json:"physic"`

	Age               *int       `json:"age"`
	DOB               *time.Time `json:"dob"`
	Height            *float64   `json:"height"`
	Weight            *float64   `json:"weight"`
	Wages             *float64   `json:"wages"`
	ReleaseClause     *float64   `json:"release_clause"`
	PreferredPosition *string    `json:"preferred_position"`
	WeakFoot          *int       `json:"weak_foot"`

	Created time.Time  `json:"created"`
	Updated *time.Time `json:"updated"`
}

// ComparePlayer carries the fields rendered in the side-by-side
// comparison table.
type ComparePlayer struct {
	ID          int32   `json:"player_id"`
	ShortName   string  `json:"short_name"`
	Overall     int     `json:"overall"`
	Position    string  `json:"player_position"`
	Nationality *string `json:"nationality_name"`
	ClubName    *string `json:"club_name"`

	Pace      *int `json:"pace"`
	Shooting  *int `json:"shooting"`
	Passing   *int `json:"passing"`
	Dribbling *int `json:"dribbling"`
	Defending *int `json:"defending"`
	Physic    *int `json:"physic"`

	Age      *int     `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
	WeakFoot *int     `json:"weak_foot"`
}

// PlayerUpsert is the request payload for create and update. The field
// names follow the underlying column names as sent by the admin form.
type PlayerUpsert struct {
	ShortName         string   `json:"Short_name"`
	Position          string   `json:"Player_position"`
	NationalityID     *int32   `json:"Nationality_id"`
	ClubTeamID        *int32   `json:"Club_team_id"`
	Overall           int      `json:"Overall"`
	Age               int      `json:"Age"`
	DOB               *string  `json:"DOB,omitempty"`
	Height            float64  `json:"Height"`
	Weight            float64  `json:"Weight"`
	Wages             *float64 `json:"Wages,omitempty"`
	ReleaseClause     *float64 `json:"Release_clause,omitempty"`
	PreferredPosition string   `json:"Preferred_Position"`
	WeakFoot          int      `json:"Weak_foot"`
	Pace              int      `json:"Pace"`
	Shooting          int      `json:"Shooting"`
	Passing           int      `json:"Passing"`
	Dribbling         int      `json:"Dribbling"`
	Defending         int      `json:"Defending"`
	Physic            int      `json:"Physic"`
}

var ErrInvalidPlayer = errors.New("invalid player payload")

// Validate enforces the payload invariants before anything touches the
// store: a name and position are required, overall and every rating
// are in [0,99], and the weak foot star rating is in [1,5].
func (u *PlayerUpsert) Validate() error {
	if u.ShortName == "" {
		return fmt.Errorf("%w: Short_name is required", ErrInvalidPlayer)
	}
	if u.Position == "" {
		return fmt.Errorf("%w: Player_position is required", ErrInvalidPlayer)
	}
	if u.WeakFoot < 1 || u.WeakFoot > 5 {
		return fmt.Errorf("%w: Weak_foot must be between 1 and 5", ErrInvalidPlayer)
	}

	ratings := []struct {
		name  string
		value int
	}{
		{"Overall", u.Overall},
		{"Pace", u.Pace},
		{"Shooting", u.Shooting},
		{"Passing", u.Passing},
		{"Dribbling", u.Dribbling},
		{"Defending", u.Defending},
		{"Physic", u.Physic},
	}
	for _, r := range ratings {
		if r.value < 0 || r.value > 99 {
			return fmt.Errorf("%w: %s must be between 0 and 99", ErrInvalidPlayer, r.name)
		}
	}

	if u.DOB != nil && *u.DOB != "" {
		if _, err := time.Parse(time.DateOnly, *u.DOB); err != nil {
			return fmt.Errorf("%w: DOB must be formatted as YYYY-MM-DD", ErrInvalidPlayer)
		}
	}

	return nil
}

// BirthDate returns the parsed DOB, or nil when the payload did not
// include one. Validate must have been called first.
func (u *PlayerUpsert) BirthDate() *time.Time {
	if u.DOB == nil || *u.DOB == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, *u.DOB)
	if err != nil {
		return nil
	}
	return &t
}
