package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
)

func invitationCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"invitation create requires one argument-- an email address",
		)
	}
	email := c.Args().Get(0)

	// Command-specific flags
	roleIDs := c.StringSlice(flagRole)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	invitation, err := client.Invitations().Create(
		c.Context,
		sdk.Invitation{
			Email:   email,
			RoleIDs: roleIDs,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Invited %q. Invitation ID is %q.\n", email, invitation.ID)

	return nil
}
