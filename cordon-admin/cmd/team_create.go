package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
)

func teamCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("team create requires one argument-- a team name")
	}
	name := c.Args().Get(0)

	// Command-specific flags
	description := c.String(flagDescription)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	team, err := client.Teams().Create(
		c.Context,
		sdk.Team{
			Name:        name,
			Description: description,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created team %q with ID %q.\n", team.Name, team.ID)

	return nil
}
