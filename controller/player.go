package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jtb/fifa_manager/model"
	"github.com/samber/lo"
)

// ErrNoPlayerIDs is returned when a compare request carries no usable
// player ids.
var ErrNoPlayerIDs = errors.New("no player ids provided")

func (c *controller) Search(ctx context.Context, f model.SearchFilter) ([]model.PlayerSummary, int, error) {
	return c.db.Search(ctx, f.Normalize())
}

func (c *controller) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) ComparePlayers(ctx context.Context, rawIDs string) ([]model.ComparePlayer, error) {
	ids := parseIDList(rawIDs)
	if len(ids) == 0 {
		return nil, ErrNoPlayerIDs
	}
	return c.db.ComparePlayers(ctx, ids)
}

func (c *controller) CreatePlayer(ctx context.Context, u *model.PlayerUpsert) (int32, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}
	return c.db.CreatePlayer(ctx, u)
}

func (c *controller) UpdatePlayer(ctx context.Context, id int32, u *model.PlayerUpsert) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return c.db.UpdatePlayer(ctx, id, u)
}

func (c *controller) DeletePlayer(ctx context.Context, id int32) error {
	return c.db.DeletePlayer(ctx, id)
}

func (c *controller) ListCountries(ctx context.Context) ([]model.Country, error) {
	return c.db.ListCountries(ctx)
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) ListClubs(ctx context.Context) ([]model.Club, error) {
	return c.db.ListClubs(ctx)
}

// parseIDList turns a comma-separated id string into the ids it
// contains, in the order given, duplicates preserved. Blank or
// non-numeric tokens are dropped.
func parseIDList(raw string) []int32 {
	return lo.FilterMap(strings.Split(raw, ","), func(tok string, _ int) (int32, bool) {
		id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32)
		if err != nil {
			return 0, false
		}
		return int32(id), true
	})
}
