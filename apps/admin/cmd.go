package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/spartanadvise/advisor/core"
	"github.com/spartanadvise/advisor/core/ge"
	sqlxrepos "github.com/spartanadvise/advisor/storage/database/sqlx"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf *core.Config
	db   *sqlx.DB
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate up|down|status - run database migrations")
	fmt.Println("  loaddata - load the embedded reference data into the database")
	fmt.Println("  reconcile -major MAJOR [-classes \"ENGL 1A,MATH 30\"] [-credits \"AP Biology:4\"] - audit GE progress")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	reconcileCmd := flag.NewFlagSet("reconcile", flag.ExitOnError)
	reconcileMajor := reconcileCmd.String("major", "", "The student's declared major.")
	reconcileClasses := reconcileCmd.String("classes", "", "Comma-separated course codes already taken.")
	reconcileCredits := reconcileCmd.String("credits", "", "Comma-separated AP exam names, optionally with \":score\".")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "loaddata":
		return cli.loadData()
	case "reconcile":
		if err := reconcileCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *reconcileMajor == "" {
			reconcileCmd.Usage()
			return errHelp
		}
		return cli.reconcile(*reconcileMajor, splitArg(*reconcileClasses), splitArg(*reconcileCredits))
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) reconcile(major string, classes, credits []string) error {
	logger := core.NopLogger{}
	svc := ge.NewService(sqlxrepos.NewGERepository(cli.db), logger)
	res := svc.Reconcile(context.Background(), major, classes, credits)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func splitArg(s string) []string {
	if s == "" {
		return nil
	}
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
