package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func invitationRevoke(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"invitation revoke requires one argument-- an invitation ID",
		)
	}
	id := c.Args().Get(0)

	proceed, err := confirmed(
		c,
		fmt.Sprintf("Revoke invitation %q?", id),
	)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	if err := client.Invitations().Revoke(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Invitation %q revoked.\n", id)

	return nil
}
