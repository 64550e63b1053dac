package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func clientGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("client get requires one argument-- a client ID")
	}
	id := c.Args().Get(0)

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	oauth2Client, err := client.OAuth2Clients().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "REDIRECT URIS", "GRANT TYPES", "SCOPES")
		table.AddRow(
			oauth2Client.ID,
			oauth2Client.Name,
			strings.Join(oauth2Client.RedirectURIs, ","),
			strings.Join(oauth2Client.GrantTypes, ","),
			strings.Join(oauth2Client.Scopes, ","),
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(oauth2Client)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get client operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(oauth2Client, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get client operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
