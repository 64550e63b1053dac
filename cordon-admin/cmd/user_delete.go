package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func userDelete(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("user delete requires one argument-- a user ID")
	}
	id := c.Args().Get(0)

	proceed, err := confirmed(
		c,
		fmt.Sprintf("Permanently delete user %q?", id),
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

	if err := client.Users().Delete(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("User %q deleted.\n", id)

	return nil
}
