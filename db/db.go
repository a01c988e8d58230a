package db

import (
	"context"

	"github.com/jtb/fifa_manager/model"
)

type DB interface {
	// Search returns one page of player summaries matching the filter,
	// ordered by overall descending, along with the exact total number
	// of matching rows.
	Search(ctx context.Context, f model.SearchFilter) ([]model.PlayerSummary, int, error)
	GetPlayer(ctx context.Context, id int32) (*model.Player, error)
	// ComparePlayers returns one record per existing id. Ids with no
	// matching player are silently absent from the result.
	ComparePlayers(ctx context.Context, ids []int32) ([]model.ComparePlayer, error)

	// CreatePlayer inserts the player, additional_info and ratings rows
	// in one transaction and returns the store-generated id.
	CreatePlayer(ctx context.Context, u *model.PlayerUpsert) (int32, error)
	// UpdatePlayer updates the player row in place and upserts the
	// additional_info and ratings rows in one transaction. Returns
	// ErrPlayerNotFound when no player row matched the id.
	UpdatePlayer(ctx context.Context, id int32, u *model.PlayerUpsert) error
	// DeletePlayer removes the player row; the ratings and
	// additional_info rows go with it via cascade.
	DeletePlayer(ctx context.Context, id int32) error

	ListCountries(ctx context.Context) ([]model.Country, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ListClubs(ctx context.Context) ([]model.Club, error)
}
