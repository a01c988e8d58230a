package model

// Country, League and Club are reference data. The service reads them
// to resolve names and to populate the admin form, but never writes
// them.

type Country struct {
	ID   int32  `json:"nationality_id"`
	Name string `json:"nationality_name"`
}

type League struct {
	ID    int32  `json:"league_id"`
	Name  string `json:"league_name"`
	Level *int   `json:"league_level"`
}

type Club struct {
	ID         int32   `json:"club_team_id"`
	Name       string  `json:"club_name"`
	LeagueID   *int32  `json:"league_id"`
	LeagueName *string `json:"league_name"`
}
