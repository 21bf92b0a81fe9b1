// Package repositories implements Postgres and Redis access for the service.
package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/gearted/gearted-backend/internal/logger"
)

// psql builds Postgres-flavoured statements.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
