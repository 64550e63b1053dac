package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func invitationResend(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"invitation resend requires one argument-- an invitation ID",
		)
	}
	id := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	if err := client.Invitations().Resend(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Invitation %q resent.\n", id)

	return nil
}
