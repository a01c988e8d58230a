package mockdb

import (
	"context"

	"github.com/jtb/fifa_manager/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) Search(ctx context.Context, f model.SearchFilter) ([]model.PlayerSummary, int, error) {
	args := db.Called(ctx, f)

	var r []model.PlayerSummary
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerSummary)
	}
	return r, args.Int(1), args.Error(2)
}

func (db *DB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ComparePlayers(ctx context.Context, ids []int32) ([]model.ComparePlayer, error) {
	args := db.Called(ctx, ids)

	var r []model.ComparePlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ComparePlayer)
	}
	return r, args.Error(1)
}

func (db *DB) CreatePlayer(ctx context.Context, u *model.PlayerUpsert) (int32, error) {
	args := db.Called(ctx, u)
	return args.Get(0).(int32), args.Error(1)
}

func (db *DB) UpdatePlayer(ctx context.Context, id int32, u *model.PlayerUpsert) error {
	args := db.Called(ctx, id, u)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListCountries(ctx context.Context) ([]model.Country, error) {
	args := db.Called(ctx)

	var r []model.Country
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Country)
	}
	return r, args.Error(1)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) ListClubs(ctx context.Context) ([]model.Club, error) {
	args := db.Called(ctx)

	var r []model.Club
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Club)
	}
	return r, args.Error(1)
}
