package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
)

func apikeyCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("apikey create requires one argument-- a key name")
	}
	name := c.Args().Get(0)

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	apiKey, err := client.APIKeys().Create(
		c.Context,
		sdk.APIKey{
			Name: name,
		},
	)
	if err != nil {
		return err
	}

	fmt.Printf("\nAPI key %q created with token:\n", apiKey.ID)
	fmt.Printf("\n\t%s\n", apiKey.Token)
	fmt.Println(
		"\nStore this token someplace secure NOW. It cannot be retrieved " +
			"later through any other means.",
	)

	return nil
}
