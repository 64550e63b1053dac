package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func apikeyRevoke(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("apikey revoke requires one argument-- a key ID")
	}
	id := c.Args().Get(0)

	proceed, err := confirmed(
		c,
		fmt.Sprintf("Permanently revoke API key %q?", id),
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

	if err := client.APIKeys().Revoke(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("API key %q revoked.\n", id)

	return nil
}
