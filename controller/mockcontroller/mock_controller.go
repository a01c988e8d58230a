package mockcontroller

import (
	"context"

	"github.com/jtb/fifa_manager/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Search(ctx context.Context, f model.SearchFilter) ([]model.PlayerSummary, int, error) {
	args := c.Called(ctx, f)

	var r []model.PlayerSummary
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerSummary)
	}
	return r, args.Int(1), args.Error(2)
}

func (c *C) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) ComparePlayers(ctx context.Context, rawIDs string) ([]model.ComparePlayer, error) {
	args := c.Called(ctx, rawIDs)

	var r []model.ComparePlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ComparePlayer)
	}
	return r, args.Error(1)
}

func (c *C) CreatePlayer(ctx context.Context, u *model.PlayerUpsert) (int32, error) {
	args := c.Called(ctx, u)
	return args.Get(0).(int32), args.Error(1)
}

func (c *C) UpdatePlayer(ctx context.Context, id int32, u *model.PlayerUpsert) error {
	args := c.Called(ctx, id, u)
	return args.Error(0)
}

func (c *C) DeletePlayer(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) ListCountries(ctx context.Context) ([]model.Country, error) {
	args := c.Called(ctx)

	var r []model.Country
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Country)
	}
	return r, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (c *C) ListClubs(ctx context.Context) ([]model.Club, error) {
	args := c.Called(ctx)

	var r []model.Club
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Club)
	}
	return r, args.Error(1)
}
