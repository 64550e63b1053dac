package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func teamMemberAdd(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New(
			"team member add requires two arguments-- a team ID and a user ID",
		)
	}
	id := c.Args().Get(0)
	userID := c.Args().Get(1)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	if err := client.Teams().AddMember(c.Context, id, userID); err != nil {
		return err
	}

	fmt.Printf("Added user %q to team %q.\n", userID, id)

	return nil
}
