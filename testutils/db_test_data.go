package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jtb/fifa_manager/containers"
	"github.com/jtb/fifa_manager/db"
	"github.com/jtb/fifa_manager/model"
)

// Fixture payloads. The nationality and club ids reference the seed
// rows in schema/schema.sql.
var (
	LionelMessi = &model.PlayerUpsert{
		ShortName:     "L. Messi",
		Position:      "RW",
		NationalityID: ref(1), // Argentina
		ClubTeamID:    ref(7), // Inter Miami
		Overall:       90,
		Age:           38,
		Height:        170,
		Weight:        72,
		WeakFoot:      4,
		Pace:          80, Shooting: 87, Passing: 90,
		Dribbling: 94, Defending: 33, Physic: 64,
	}
	CristianoRonaldo = &model.PlayerUpsert{
		ShortName:     "Cristiano Ronaldo",
		Position:      "ST",
		NationalityID: ref(2), // Portugal
		ClubTeamID:    ref(2), // Real Madrid
		Overall:       86,
		Age:           40,
		Height:        187,
		Weight:        83,
		WeakFoot:      4,
		Pace:          81, Shooting: 92, Passing: 78,
		Dribbling: 85, Defending: 34, Physic: 75,
	}
	KylianMbappe = &model.PlayerUpsert{
		ShortName:     "K. Mbappé",
		Position:      "ST",
		NationalityID: ref(3), // France
		ClubTeamID:    ref(2), // Real Madrid
		Overall:       91,
		Age:           27,
		Height:        178,
		Weight:        75,
		WeakFoot:      4,
		Pace:          97, Shooting: 90, Passing: 80,
		Dribbling: 92, Defending: 36, Physic: 78,
	}
	ErlingHaaland = &model.PlayerUpsert{
		ShortName:     "E. Haaland",
		Position:      "ST",
		NationalityID: ref(4), // Norway
		ClubTeamID:    ref(3), // Manchester City
		Overall:       91,
		Age:           25,
		Height:        195,
		Weight:        88,
		WeakFoot:      3,
		Pace:          89, Shooting: 93, Passing: 66,
		Dribbling: 80, Defending: 45, Physic: 88,
	}
	KevinDeBruyne = &model.PlayerUpsert{
		ShortName:     "K. De Bruyne",
		Position:      "CM",
		NationalityID: ref(5), // Belgium
		ClubTeamID:    ref(3), // Manchester City
		Overall:       89,
		Age:           34,
		Height:        181,
		Weight:        70,
		WeakFoot:      5,
		Pace:          67, Shooting: 86, Passing: 93,
		Dribbling: 86, Defending: 64, Physic: 77,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
	// SeededIDs holds the ids of the fixture players in the order of
	// InsertTestPlayers: Messi, Ronaldo, Mbappé, Haaland, De Bruyne.
	SeededIDs []int32
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	ids, err := InsertTestPlayers(db)
	if err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
		SeededIDs: ids,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestPlayers(db db.DB) ([]int32, error) {
	players := []*model.PlayerUpsert{
		LionelMessi,
		CristianoRonaldo,
		KylianMbappe,
		ErlingHaaland,
		KevinDeBruyne,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ids := make([]int32, 0, len(players))
	for _, p := range players {
		id, err := db.CreatePlayer(ctx, p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func ref(id int32) *int32 {
	return &id
}
