package gathermigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Each registered migration derives a stable ID from its file name,
	// which requires caller discovery when IDs are not given explicitly.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
