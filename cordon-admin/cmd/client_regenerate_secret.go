package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func clientRegenerateSecret(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"client regenerate-secret requires one argument-- a client ID",
		)
	}
	id := c.Args().Get(0)

	proceed, err := confirmed(
		c,
		fmt.Sprintf(
			"Regenerate the secret for client %q? The old secret stops "+
				"working immediately.",
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

	oauth2Client, err := client.OAuth2Clients().RegenerateSecret(c.Context, id)
	if err != nil {
		return err
	}

	fmt.Printf("\nClient %q now has secret:\n", oauth2Client.ID)
	fmt.Printf("\n\t%s\n", oauth2Client.Secret)
	fmt.Println(
		"\nStore this secret someplace secure NOW. It cannot be retrieved " +
			"later through any other means.",
	)

	return nil
}
