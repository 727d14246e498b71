package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

// Builder is the shared squirrel statement builder with PostgreSQL
// placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// tsquery is the text-search parser applied to sanitized user input.
// plainto_tsquery treats the whole string as plain words, so any operator
// characters that survived sanitization are still inert.
const tsquery = "plainto_tsquery('english', ?)"

// RankColumn returns the rank select expression for a ranked query over
// the given tsvector column. The alias is "rank" so scany maps it onto
// the entity Rank field.
func RankColumn(vector, query string) sq.Sqlizer {
	return sq.Expr("ts_rank("+vector+", "+tsquery+") AS rank", query)
}

// ZeroRankColumn is the rank expression for unranked listings.
func ZeroRankColumn() sq.Sqlizer {
	return sq.Expr("0::float4 AS rank")
}

// MatchClause returns the FTS match predicate against a tsvector column.
func MatchClause(vector, query string) sq.Sqlizer {
	return sq.Expr(vector+" @@ "+tsquery, query)
}

// TitleMatchClause returns a substring match on a title column, used by
// the title-only suggestion queries (backed by a trigram index).
func TitleMatchClause(column, query string) sq.Sqlizer {
	return sq.ILike{column: "%" + query + "%"}
}
