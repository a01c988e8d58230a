package controller

import (
	"context"

	"github.com/itbasis/go-clock"
	"github.com/jtb/fifa_manager/db"
	"github.com/jtb/fifa_manager/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Search returns a page of summaries plus the exact total match
	// count. The filter is normalized before use.
	Search(ctx context.Context, f model.SearchFilter) ([]model.PlayerSummary, int, error)
	GetPlayer(ctx context.Context, id int32) (*model.Player, error)
	// ComparePlayers takes the raw comma-separated id list from the
	// request. Tokens that don't parse as integers are skipped; ids
	// with no matching player are absent from the result. Returns
	// ErrNoPlayerIDs when no usable id remains.
	ComparePlayers(ctx context.Context, rawIDs string) ([]model.ComparePlayer, error)

	CreatePlayer(ctx context.Context, u *model.PlayerUpsert) (int32, error)
	UpdatePlayer(ctx context.Context, id int32, u *model.PlayerUpsert) error
	DeletePlayer(ctx context.Context, id int32) error

	ListCountries(ctx context.Context) ([]model.Country, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ListClubs(ctx context.Context) ([]model.Club, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}
