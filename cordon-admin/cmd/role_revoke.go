package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func roleRevoke(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New(
			"role revoke requires two arguments-- a role ID and a user ID",
		)
	}
	id := c.Args().Get(0)
	userID := c.Args().Get(1)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	if err := client.Roles().Revoke(c.Context, id, userID); err != nil {
		return err
	}

	fmt.Printf("Revoked role %q from user %q.\n", id, userID)

	return nil
}
