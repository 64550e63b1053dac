package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
)

func clientCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"client create requires one argument-- a path to a file " +
				"containing a client definition",
		)
	}
	filename := c.Args().Get(0)

	// Read and parse the file
	clientBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "error reading client file %s", filename)
	}

	oauth2Client := sdk.OAuth2Client{}
	if strings.HasSuffix(filename, ".yaml") ||
		strings.HasSuffix(filename, ".yml") {
		err = yaml.Unmarshal(clientBytes, &oauth2Client)
	} else {
		err = json.Unmarshal(clientBytes, &oauth2Client)
	}
	if err != nil {
		return errors.Wrapf(err, "error unmarshaling client file %s", filename)
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	created, err := client.OAuth2Clients().Create(c.Context, oauth2Client)
	if err != nil {
		return err
	}

	fmt.Printf("\nClient %q created with secret:\n", created.ID)
	fmt.Printf("\n\t%s\n", created.Secret)
	fmt.Println(
		"\nStore this secret someplace secure NOW. It cannot be retrieved " +
			"later through any other means.",
	)

	return nil
}
