package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func teamMemberRemove(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New(
			"team member remove requires two arguments-- a team ID and a " +
				"user ID",
		)
	}
	id := c.Args().Get(0)
	userID := c.Args().Get(1)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	if err := client.Teams().RemoveMember(c.Context, id, userID); err != nil {
		return err
	}

	fmt.Printf("Removed user %q from team %q.\n", userID, id)

	return nil
}
