package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func orgDelete(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"org delete requires one argument-- an organization ID",
		)
	}
	id := c.Args().Get(0)

	proceed, err := confirmed(
		c,
		fmt.Sprintf(
			"Permanently delete organization %q and everything in it?",
			id,
		),
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

	if err := client.Organizations().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Organization %q deleted.\n", id)

	return nil
}
