package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func webhookUpdate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 2 {
		return errors.New(
			"webhook update requires two arguments-- a webhook ID and a " +
				"path to a file containing a webhook definition",
		)
	}
	id := c.Args().Get(0)
	filename := c.Args().Get(1)

	webhookBytes, err := readWebhookFile(filename)
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	webhook, err := client.Webhooks().Update(c.Context, id, webhookBytes)
	if err != nil {
		return err
	}

	fmt.Printf("Webhook %q updated.\n", webhook.ID)

	return nil
}
