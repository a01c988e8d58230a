package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/jtb/fifa_manager/containers"
	"github.com/jtb/fifa_manager/model"
)

// A test global db instance to use for all of the tests instead of setting up a new one each time.
var testDB DB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	clock := clock.New()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestPlayer_createAndGet(t *testing.T) {
	ctx := context.Background()

	u := testUpsert("Create Roundtrip", "ST", 88)
	dob := "1998-12-20"
	u.DOB = &dob
	wages := 250000.0
	u.Wages = &wages
	clause := 150000000.0
	u.ReleaseClause = &clause
	u.PreferredPosition = "ST"

	id, err := testDB.CreatePlayer(ctx, u)
	assertFatalf(t, err == nil, "error creating player: %v", err)
	assertFatalf(t, id > 0, "expected a positive id, got %d", id)

	res, err := testDB.GetPlayer(ctx, id)
	assertFatalf(t, err == nil, "error retrieving player: %v", err)

	assertEquals(t, "ID", id, res.ID)
	assertEquals(t, "ShortName", u.ShortName, res.ShortName)
	assertEquals(t, "Position", u.Position, res.Position)
	assertEquals(t, "Overall", u.Overall, res.Overall)
	assertInt32Ptr(t, "NationalityID", u.NationalityID, res.NationalityID)
	assertInt32Ptr(t, "ClubTeamID", u.ClubTeamID, res.ClubTeamID)
	assertStrPtr(t, "Nationality", "Argentina", res.Nationality)
	assertStrPtr(t, "ClubName", "Manchester City", res.ClubName)
	assertStrPtr(t, "LeagueName", "Premier League", res.LeagueName)

	assertIntPtr(t, "Pace", u.Pace, res.Pace)
	assertIntPtr(t, "Shooting", u.Shooting, res.Shooting)
	assertIntPtr(t, "Passing", u.Passing, res.Passing)
	assertIntPtr(t, "Dribbling", u.Dribbling, res.Dribbling)
	assertIntPtr(t, "Defending", u.Defending, res.Defending)
	assertIntPtr(t, "Physic", u.Physic, res.Physic)

	assertIntPtr(t, "Age", u.Age, res.Age)
	assertFatalf(t, res.DOB != nil, "expected a DOB")
	assertEquals(t, "DOB", dob, res.DOB.Format("2006-01-02"))
	assertFloatPtr(t, "Height", u.Height, res.Height)
	assertFloatPtr(t, "Weight", u.Weight, res.Weight)
	assertFloatPtr(t, "Wages", wages, res.Wages)
	assertFloatPtr(t, "ReleaseClause", clause, res.ReleaseClause)
	assertStrPtr(t, "PreferredPosition", "ST", res.PreferredPosition)
	assertIntPtr(t, "WeakFoot", u.WeakFoot, res.WeakFoot)

	// The store sets created on insert; updated stays unset until the
	// first update.
	if res.Created.IsZero() {
		t.Errorf("expected created time to not be zero")
	}
	if res.Updated != nil {
		t.Errorf("expected updated time to be nil, but was %v", res.Updated)
	}
}

func TestPlayer_getNotFound(t *testing.T) {
	ctx := context.Background()

	res, err := testDB.GetPlayer(ctx, 999999)
	assertFatalf(t, err != nil, "should have had an error getting an unknown player")
	assertEquals(t, "error type", true, errors.Is(err, ErrPlayerNotFound))
	if res != nil {
		t.Errorf("expected res to be nil, but was %v", res)
	}
}

func TestPlayer_search(t *testing.T) {
	ctx := context.Background()

	// A unique name prefix keeps these rows isolated from every other
	// test sharing the container.
	ids := make([]int32, 0, 3)
	for _, u := range []*model.PlayerUpsert{
		testUpsert("Srchfx Alpha", "ST", 90),
		testUpsert("Srchfx Beta", "CM", 70),
		testUpsert("Srchfx Gamma", "ST", 80),
	} {
		id, err := testDB.CreatePlayer(ctx, u)
		assertFatalf(t, err == nil, "error creating player: %v", err)
		ids = append(ids, id)
	}

	// Case-insensitive substring match on the name, ordered by overall
	// descending.
	results, total, err := testDB.Search(ctx, model.SearchFilter{Name: "srchfx"})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 3, total)
	assertEquals(t, "len(results)", 3, len(results))
	assertEquals(t, "results[0].ShortName", "Srchfx Alpha", results[0].ShortName)
	assertEquals(t, "results[1].ShortName", "Srchfx Gamma", results[1].ShortName)
	assertEquals(t, "results[2].ShortName", "Srchfx Beta", results[2].ShortName)
	assertStrPtr(t, "results[0].ClubName", "Manchester City", results[0].ClubName)
	assertStrPtr(t, "results[0].LeagueName", "Premier League", results[0].LeagueName)

	// Filters combine with AND.
	results, total, err = testDB.Search(ctx, model.SearchFilter{Name: "srchfx", Position: "st"})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 2, total)
	assertEquals(t, "len(results)", 2, len(results))

	// League filter matches through the club join.
	results, total, err = testDB.Search(ctx, model.SearchFilter{Name: "srchfx", League: "premier"})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 3, total)

	results, total, err = testDB.Search(ctx, model.SearchFilter{Name: "srchfx", League: "la liga"})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 0, total)
	assertEquals(t, "len(results)", 0, len(results))

	// Pagination: the page is bounded by the limit while the total
	// still reflects every match.
	results, total, err = testDB.Search(ctx, model.SearchFilter{Name: "srchfx", Limit: 2})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 3, total)
	assertEquals(t, "len(results)", 2, len(results))

	results, total, err = testDB.Search(ctx, model.SearchFilter{Name: "srchfx", Page: 2, Limit: 2})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 3, total)
	assertEquals(t, "len(results)", 1, len(results))
	assertEquals(t, "results[0].ShortName", "Srchfx Beta", results[0].ShortName)

	for _, id := range ids {
		if err := testDB.DeletePlayer(ctx, id); err != nil {
			t.Errorf("error cleaning up player %d: %v", id, err)
		}
	}
}

func TestPlayer_searchWithoutClub(t *testing.T) {
	ctx := context.Background()

	u := testUpsert("Clubless Fella", "GK", 65)
	u.ClubTeamID = nil
	id, err := testDB.CreatePlayer(ctx, u)
	assertFatalf(t, err == nil, "error creating player: %v", err)

	results, total, err := testDB.Search(ctx, model.SearchFilter{Name: "clubless"})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 1, total)
	assertFatalf(t, len(results) == 1, "expected 1 result, got %d", len(results))
	if results[0].ClubName != nil {
		t.Errorf("expected nil club name, got %v", *results[0].ClubName)
	}
	if results[0].LeagueName != nil {
		t.Errorf("expected nil league name, got %v", *results[0].LeagueName)
	}

	// A league filter can never match a clubless player.
	_, total, err = testDB.Search(ctx, model.SearchFilter{Name: "clubless", League: "premier"})
	assertFatalf(t, err == nil, "error searching players: %v", err)
	assertEquals(t, "total", 0, total)

	if err := testDB.DeletePlayer(ctx, id); err != nil {
		t.Errorf("error cleaning up player %d: %v", id, err)
	}
}

func TestPlayer_compare(t *testing.T) {
	ctx := context.Background()

	id1, err := testDB.CreatePlayer(ctx, testUpsert("Cmp One", "ST", 91))
	assertFatalf(t, err == nil, "error creating player: %v", err)
	id2, err := testDB.CreatePlayer(ctx, testUpsert("Cmp Two", "CB", 85))
	assertFatalf(t, err == nil, "error creating player: %v", err)

	// An id with no matching player is silently absent.
	results, err := testDB.ComparePlayers(ctx, []int32{id1, id2, 999999})
	assertFatalf(t, err == nil, "error comparing players: %v", err)
	assertEquals(t, "len(results)", 2, len(results))

	byID := make(map[int32]model.ComparePlayer, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}
	one, ok := byID[id1]
	assertFatalf(t, ok, "player %d missing from compare results", id1)
	assertEquals(t, "one.ShortName", "Cmp One", one.ShortName)
	assertEquals(t, "one.Overall", 91, one.Overall)
	assertIntPtr(t, "one.Pace", 80, one.Pace)
	assertIntPtr(t, "one.WeakFoot", 4, one.WeakFoot)
	assertStrPtr(t, "one.Nationality", "Argentina", one.Nationality)

	if _, ok := byID[id2]; !ok {
		t.Errorf("player %d missing from compare results", id2)
	}
}

func TestPlayer_update(t *testing.T) {
	ctx := context.Background()

	u := testUpsert("Upd Target", "CM", 75)
	id, err := testDB.CreatePlayer(ctx, u)
	assertFatalf(t, err == nil, "error creating player: %v", err)

	// Updating an id with no player must fail without leaving orphaned
	// dependent rows behind.
	err = testDB.UpdatePlayer(ctx, 999999, u)
	assertFatalf(t, err != nil, "should have had an error updating an unknown player")
	assertEquals(t, "error type", true, errors.Is(err, ErrPlayerNotFound))

	upd := testUpsert("Upd Target", "CAM", 82)
	upd.Passing = 92
	err = testDB.UpdatePlayer(ctx, id, upd)
	assertFatalf(t, err == nil, "error updating player: %v", err)

	res, err := testDB.GetPlayer(ctx, id)
	assertFatalf(t, err == nil, "error getting updated player: %v", err)
	assertEquals(t, "Position", "CAM", res.Position)
	assertEquals(t, "Overall", 82, res.Overall)
	assertIntPtr(t, "Passing", 92, res.Passing)
	if res.Updated == nil {
		t.Errorf("expected updated time to not be nil")
	}

	// Applying the same payload twice yields the same final state.
	err = testDB.UpdatePlayer(ctx, id, upd)
	assertFatalf(t, err == nil, "error updating player again: %v", err)

	res2, err := testDB.GetPlayer(ctx, id)
	assertFatalf(t, err == nil, "error getting player after second update: %v", err)
	assertEquals(t, "Position", res.Position, res2.Position)
	assertEquals(t, "Overall", res.Overall, res2.Overall)
	assertIntPtr(t, "Passing", 92, res2.Passing)
}

func TestPlayer_delete(t *testing.T) {
	ctx := context.Background()

	id, err := testDB.CreatePlayer(ctx, testUpsert("Del Target", "LB", 70))
	assertFatalf(t, err == nil, "error creating player: %v", err)

	err = testDB.DeletePlayer(ctx, id)
	assertFatalf(t, err == nil, "error deleting player: %v", err)

	// The player and its dependent rows are gone.
	_, err = testDB.GetPlayer(ctx, id)
	assertEquals(t, "get after delete", true, errors.Is(err, ErrPlayerNotFound))

	results, err := testDB.ComparePlayers(ctx, []int32{id})
	assertFatalf(t, err == nil, "error comparing deleted player: %v", err)
	assertEquals(t, "len(results)", 0, len(results))

	// Deleting again reports not found.
	err = testDB.DeletePlayer(ctx, id)
	assertEquals(t, "second delete", true, errors.Is(err, ErrPlayerNotFound))
}

func TestReferenceData_lists(t *testing.T) {
	ctx := context.Background()

	countries, err := testDB.ListCountries(ctx)
	assertFatalf(t, err == nil, "error listing countries: %v", err)
	assertEquals(t, "len(countries)", 7, len(countries))
	assertEquals(t, "countries[0].Name", "Argentina", countries[0].Name)

	leagues, err := testDB.ListLeagues(ctx)
	assertFatalf(t, err == nil, "error listing leagues: %v", err)
	assertEquals(t, "len(leagues)", 6, len(leagues))

	clubs, err := testDB.ListClubs(ctx)
	assertFatalf(t, err == nil, "error listing clubs: %v", err)
	assertEquals(t, "len(clubs)", 7, len(clubs))
	assertEquals(t, "clubs[0].Name", "Bayern Munich", clubs[0].Name)
	assertStrPtr(t, "clubs[0].LeagueName", "Bundesliga", clubs[0].LeagueName)
}

// testUpsert returns a valid payload pointing at the Argentina and
// Manchester City seed rows.
func testUpsert(name, position string, overall int) *model.PlayerUpsert {
	nat := int32(1)
	club := int32(3)
	return &model.PlayerUpsert{
		ShortName:     name,
		Position:      position,
		NationalityID: &nat,
		ClubTeamID:    &club,
		Overall:       overall,
		Age:           27,
		Height:        180,
		Weight:        75,
		WeakFoot:      4,
		Pace:          80,
		Shooting:      75,
		Passing:       70,
		Dribbling:     72,
		Defending:     60,
		Physic:        68,
	}
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}

func assertIntPtr(t *testing.T, field string, expected int, actual *int) {
	if actual == nil {
		t.Errorf("%s - expected: '%d', got: nil", field, expected)
		return
	}
	if expected != *actual {
		t.Errorf("%s - expected: '%d', got: '%d'", field, expected, *actual)
	}
}

func assertInt32Ptr(t *testing.T, field string, expected, actual *int32) {
	if (expected == nil) != (actual == nil) {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
		return
	}
	if expected != nil && *expected != *actual {
		t.Errorf("%s - expected: '%d', got: '%d'", field, *expected, *actual)
	}
}

func assertStrPtr(t *testing.T, field string, expected string, actual *string) {
	if actual == nil {
		t.Errorf("%s - expected: '%s', got: nil", field, expected)
		return
	}
	if expected != *actual {
		t.Errorf("%s - expected: '%s', got: '%s'", field, expected, *actual)
	}
}

func assertFloatPtr(t *testing.T, field string, expected float64, actual *float64) {
	if actual == nil {
		t.Errorf("%s - expected: '%f', got: nil", field, expected)
		return
	}
	if expected != *actual {
		t.Errorf("%s - expected: '%f', got: '%f'", field, expected, *actual)
	}
}
