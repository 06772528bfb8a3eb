package deps

import (
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/ingest"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	redisstore "github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/store/redis"
	sqlitestore "github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/store/sqlite"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Contests  *sqlitestore.Store // canonical contest store
	Bookmarks *redisstore.Store  // user bookmark associations
	Runner    *ingest.Runner     // manual ingestion trigger
}
