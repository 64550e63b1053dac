package main

import (
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk/meta"
)

const (
	flagDescription = "description"
	flagDomain      = "domain"
	flagEmail       = "email"
	flagInsecure    = "insecure"
	flagLimit       = "limit"
	flagOffset      = "offset"
	flagOrg         = "org"
	flagOutput      = "output"
	flagPassword    = "password"
	flagPermission  = "permission"
	flagRole        = "role"
	flagYes         = "yes"
)

var (
	cliFlagOutput = &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage: "Return output in another format. Supported formats: table, " +
			"json, yaml",
		Value: "table",
	}
	cliFlagLimit = &cli.Int64Flag{
		Name:  flagLimit,
		Usage: "Return at most this many results",
	}
	cliFlagOffset = &cli.Int64Flag{
		Name:  flagOffset,
		Usage: "Skip this many results",
	}
	cliFlagYes = &cli.BoolFlag{
		Name:    flagYes,
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)

func listOptions(c *cli.Context) meta.ListOptions {
	return meta.ListOptions{
		Limit:  c.Int64(flagLimit),
		Offset: c.Int64(flagOffset),
	}
}
