package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func webhookPing(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("webhook ping requires one argument-- a webhook ID")
	}
	id := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	if err := client.Webhooks().Ping(c.Context, id); err != nil {
		return err
	}

	fmt.Printf("Test event sent to webhook %q.\n", id)

	return nil
}
