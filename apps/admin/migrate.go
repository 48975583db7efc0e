package main

import (
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	appfs "github.com/spartanadvise/advisor/fs"
)

func (cli *commandLine) migrate(args []string) error {
	dialect := cli.conf.Database.Engine
	if dialect == "sqlite" {
		dialect = "sqlite3"
	}
	goose.SetBaseFS(appfs.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}

	switch args[0] {
	case "up":
		return goose.Up(cli.db.DB, "migrations")
	case "down":
		return goose.Down(cli.db.DB, "migrations")
	case "status":
		return goose.Status(cli.db.DB, "migrations")
	default:
		return errors.Errorf("unknown migrate command %q", args[0])
	}
}
