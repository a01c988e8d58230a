package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jtb/fifa_manager/model"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// playerJoins is the join set shared by every read that needs the
// denormalized reference names. The count query uses the same joins and
// the same predicates as the data query so the total can never drift
// from the page contents.
const playerJoins = `FROM player p
	LEFT JOIN country c ON p.nationality_id = c.nationality_id
	LEFT JOIN club cl ON p.club_team_id = cl.club_team_id
	LEFT JOIN league l ON cl.league_id = l.league_id`

func (db *postgresDB) Search(ctx context.Context, f model.SearchFilter) ([]model.PlayerSummary, int, error) {
	f = f.Normalize()
	where, args := buildSearchWhere(f)

	query := `SELECT p.player_id, p.short_name, p.player_position, p.overall,
			c.nationality_name, cl.club_name, l.league_name
		` + playerJoins + where + `
		ORDER BY p.overall DESC
		LIMIT @limit OFFSET @offset`
	args["limit"] = f.Limit
	args["offset"] = f.Offset()

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("error running search query: %w", err)
	}
	defer rows.Close()

	results := make([]model.PlayerSummary, 0, f.Limit)
	for rows.Next() {
		var s model.PlayerSummary
		err := rows.Scan(&s.ID, &s.ShortName, &s.Position, &s.Overall,
			&s.Nationality, &s.ClubName, &s.LeagueName)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning search result: %w", err)
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) ` + playerJoins + where
	var total int
	if err := db.pool.QueryRow(ctx, countQuery, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting search results: %w", err)
	}

	return results, total, nil
}

func (db *postgresDB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	query := `SELECT p.player_id, p.short_name, p.player_position,
			p.nationality_id, p.club_team_id, p.overall,
			c.nationality_name, cl.club_name, l.league_name,
			r.pace, r.shooting, r.passing, r.dribbling, r.defending, r.physic,
			ai.age, ai.dob, ai.height, ai.weight, ai.wages,
			ai.release_clause, ai.preferred_position, ai.weak_foot,
			p.created, p.updated
		` + playerJoins + `
		LEFT JOIN ratings r ON p.player_id = r.player_id
		LEFT JOIN additional_info ai ON p.player_id = ai.player_id
		WHERE p.player_id = @id`

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)

	var result model.Player
	var dob pgtype.Date
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.ShortName,
		&result.Position,
		&result.NationalityID,
		&result.ClubTeamID,
		&result.Overall,
		&result.Nationality,
		&result.ClubName,
		&result.LeagueName,
		&result.Pace,
		&result.Shooting,
		&result.Passing,
		&result.Dribbling,
		&result.Defending,
		&result.Physic,
		&result.Age,
		&dob,
		&result.Height,
		&result.Weight,
		&result.Wages,
		&result.ReleaseClause,
		&result.PreferredPosition,
		&result.WeakFoot,
		&created,
		&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %d: %w", id, err)
	}

	if dob.Valid {
		result.DOB = &dob.Time
	}
	result.Created = created.Time
	if updated.Valid {
		result.Updated = &updated.Time
	}

	return &result, nil
}

func (db *postgresDB) ComparePlayers(ctx context.Context, ids []int32) ([]model.ComparePlayer, error) {
	query := `SELECT p.player_id, p.short_name, p.overall, p.player_position,
			c.nationality_name, cl.club_name,
			r.pace, r.shooting, r.passing, r.dribbling, r.defending, r.physic,
			ai.age, ai.height, ai.weight, ai.weak_foot
		FROM player p
		LEFT JOIN country c ON p.nationality_id = c.nationality_id
		LEFT JOIN club cl ON p.club_team_id = cl.club_team_id
		LEFT JOIN ratings r ON p.player_id = r.player_id
		LEFT JOIN additional_info ai ON p.player_id = ai.player_id
		WHERE p.player_id = ANY(@ids)`

	args := pgx.NamedArgs{
		"ids": ids,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running compare query: %w", err)
	}
	defer rows.Close()

	results := make([]model.ComparePlayer, 0, len(ids))
	for rows.Next() {
		var p model.ComparePlayer
		err := rows.Scan(&p.ID, &p.ShortName, &p.Overall, &p.Position,
			&p.Nationality, &p.ClubName,
			&p.Pace, &p.Shooting, &p.Passing, &p.Dribbling, &p.Defending, &p.Physic,
			&p.Age, &p.Height, &p.Weight, &p.WeakFoot)
		if err != nil {
			return nil, fmt.Errorf("error scanning compare result: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (db *postgresDB) CreatePlayer(ctx context.Context, u *model.PlayerUpsert) (int32, error) {
	const insertPlayer = `INSERT INTO player (
			short_name, player_position, nationality_id, club_team_id, overall, created
		) VALUES (
			@shortName, @position, @nationalityID, @clubTeamID, @overall, @created
		) RETURNING player_id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	args := namedArgsForPlayer(u)
	args["created"] = pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}

	var id int32
	if err := tx.QueryRow(ctx, insertPlayer, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting player: %w", err)
	}

	if err := db.insertDependentRows(ctx, tx, id, u, false); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing player create: %w", err)
	}
	return id, nil
}

func (db *postgresDB) UpdatePlayer(ctx context.Context, id int32, u *model.PlayerUpsert) error {
	const updatePlayer = `UPDATE player
		SET short_name=@shortName,
			player_position=@position,
			nationality_id=@nationalityID,
			club_team_id=@clubTeamID,
			overall=@overall,
			updated=@updated
		WHERE player_id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := namedArgsForPlayer(u)
	args["id"] = id
	args["updated"] = pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}

	tag, err := tx.Exec(ctx, updatePlayer, args)
	if err != nil {
		return fmt.Errorf("error updating player (%d): %w", id, err)
	}
	// Verify the player existed before upserting the dependent rows,
	// otherwise an update against a bad id would leave orphaned
	// ratings/additional_info rows behind.
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	if err := db.insertDependentRows(ctx, tx, id, u, true); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing player update: %w", err)
	}
	return nil
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id int32) error {
	const query = `DELETE FROM player WHERE player_id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting player (%d): %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing player delete: %w", err)
	}
	return nil
}

// insertDependentRows writes the additional_info and ratings rows for a
// player inside the caller's transaction. With upsert set the rows are
// inserted or updated on conflict, otherwise they are plain inserts.
func (db *postgresDB) insertDependentRows(ctx context.Context, tx pgx.Tx, id int32, u *model.PlayerUpsert, upsert bool) error {
	insertInfo := `INSERT INTO additional_info (
			player_id, age, dob, height, weight, wages, release_clause, preferred_position, weak_foot
		) VALUES (
			@id, @age, @dob, @height, @weight, @wages, @releaseClause, @preferredPosition, @weakFoot
		)`
	insertRatings := `INSERT INTO ratings (
			player_id, pace, shooting, passing, dribbling, defending, physic
		) VALUES (
			@id, @pace, @shooting, @passing, @dribbling, @defending, @physic
		)`

	if upsert {
		insertInfo += ` ON CONFLICT (player_id) DO UPDATE SET
			age=EXCLUDED.age, dob=EXCLUDED.dob, height=EXCLUDED.height,
			weight=EXCLUDED.weight, wages=EXCLUDED.wages,
			release_clause=EXCLUDED.release_clause,
			preferred_position=EXCLUDED.preferred_position,
			weak_foot=EXCLUDED.weak_foot`
		insertRatings += ` ON CONFLICT (player_id) DO UPDATE SET
			pace=EXCLUDED.pace, shooting=EXCLUDED.shooting,
			passing=EXCLUDED.passing, dribbling=EXCLUDED.dribbling,
			defending=EXCLUDED.defending, physic=EXCLUDED.physic`
	}

	infoArgs := pgx.NamedArgs{
		"id":     id,
		"age":    u.Age,
		"dob":    dateArg(u.BirthDate()),
		"height": u.Height,
		"weight": u.Weight,
		"wages":  u.Wages,
		"releaseClause": u.ReleaseClause,
		"preferredPosition": textArg(u.PreferredPosition),
		"weakFoot":          u.WeakFoot,
	}
	if _, err := tx.Exec(ctx, insertInfo, infoArgs); err != nil {
		return fmt.Errorf("error writing additional_info for player (%d): %w", id, err)
	}

	ratingsArgs := pgx.NamedArgs{
		"id":        id,
		"pace":      u.Pace,
		"shooting":  u.Shooting,
		"passing":   u.Passing,
		"dribbling": u.Dribbling,
		"defending": u.Defending,
		"physic":    u.Physic,
	}
	if _, err := tx.Exec(ctx, insertRatings, ratingsArgs); err != nil {
		return fmt.Errorf("error writing ratings for player (%d): %w", id, err)
	}

	return nil
}

func (db *postgresDB) ListCountries(ctx context.Context) ([]model.Country, error) {
	const query = `SELECT nationality_id, nationality_name FROM country ORDER BY nationality_name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing countries: %w", err)
	}
	defer rows.Close()

	results := make([]model.Country, 0, 64)
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT league_id, league_name, league_level FROM league ORDER BY league_name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 32)
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.ID, &l.Name, &l.Level); err != nil {
			return nil, err
		}
		results = append(results, l)
	}
	return results, rows.Err()
}

func (db *postgresDB) ListClubs(ctx context.Context) ([]model.Club, error) {
	const query = `SELECT cl.club_team_id, cl.club_name, cl.league_id, l.league_name
		FROM club cl
		LEFT JOIN league l ON cl.league_id = l.league_id
		ORDER BY cl.club_name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing clubs: %w", err)
	}
	defer rows.Close()

	results := make([]model.Club, 0, 64)
	for rows.Next() {
		var c model.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.LeagueID, &c.LeagueName); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

func namedArgsForPlayer(u *model.PlayerUpsert) pgx.NamedArgs {
	return pgx.NamedArgs{
		"shortName":     u.ShortName,
		"position":      u.Position,
		"nationalityID": u.NationalityID,
		"clubTeamID":    u.ClubTeamID,
		"overall":       u.Overall,
	}
}

func dateArg(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func textArg(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
