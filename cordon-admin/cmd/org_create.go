package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
)

func orgCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"org create requires one argument-- an organization name",
		)
	}
	name := c.Args().Get(0)

	// Command-specific flags
	domain := c.String(flagDomain)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	org, err := client.Organizations().Create(
		c.Context,
		sdk.Organization{
			Name:   name,
			Domain: domain,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("Created organization %q with ID %q.\n", org.Name, org.ID)

	return nil
}
