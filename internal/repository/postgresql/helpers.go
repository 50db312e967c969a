package postgresql

import (
	"errors"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// isPgError reports whether err carries the given SQLSTATE.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

func toPgTime(t clock.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.SinceMidnight().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) clock.TimeOfDay {
	return clock.FromDuration(time.Duration(t.Microseconds) * time.Microsecond)
}
