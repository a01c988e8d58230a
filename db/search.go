package db

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jtb/fifa_manager/model"
)

// searchColumns maps each filter field to the column it matches
// against. Every provided filter becomes one case-insensitive
// substring predicate; omitted filters contribute nothing.
type searchPredicate struct {
	arg    string
	column string
	value  func(model.SearchFilter) string
}

var searchPredicates = []searchPredicate{
	{"name", "p.short_name", func(f model.SearchFilter) string { return f.Name }},
	{"league", "l.league_name", func(f model.SearchFilter) string { return f.League }},
	{"club", "cl.club_name", func(f model.SearchFilter) string { return f.Club }},
	{"position", "p.player_position", func(f model.SearchFilter) string { return f.Position }},
}

// buildSearchWhere renders the WHERE clause and named args for a
// search filter. Both the data query and the count query are built from
// this one result.
func buildSearchWhere(f model.SearchFilter) (string, pgx.NamedArgs) {
	clauses := make([]string, 0, len(searchPredicates))
	args := pgx.NamedArgs{}

	for _, p := range searchPredicates {
		v := p.value(f)
		if v == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || @%s || '%%'", p.column, p.arg))
		args[p.arg] = v
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
