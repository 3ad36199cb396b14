package app

// Storage drivers selected by data.database.master.driver and data.redis.
import (
	_ "github.com/ncobase/taskboard/data/mysql"
	_ "github.com/ncobase/taskboard/data/postgres"
	_ "github.com/ncobase/taskboard/data/redis"
	_ "github.com/ncobase/taskboard/data/sqlite"
)
