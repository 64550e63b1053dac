package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
)

func roleCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("role create requires one argument-- a role name")
	}
	name := c.Args().Get(0)

	// Command-specific flags
	description := c.String(flagDescription)
	permissions := c.StringSlice(flagPermission)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	role, err := client.Roles().Create(
		c.Context,
		sdk.Role{
			Name:        name,
			Description: description,
			Permissions: permissions,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created role %q with ID %q.\n", role.Name, role.ID)

	return nil
}
