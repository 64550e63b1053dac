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

func clientList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("client list requires no arguments")
	}

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	oauth2Clients, err := client.OAuth2Clients().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(oauth2Clients.Data) == 0 {
		fmt.Println("No clients found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "GRANT TYPES", "SCOPES")
		for _, oauth2Client := range oauth2Clients.Data {
			table.AddRow(
				oauth2Client.ID,
				oauth2Client.Name,
				strings.Join(oauth2Client.GrantTypes, ","),
				strings.Join(oauth2Client.Scopes, ","),
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(oauth2Clients)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list clients operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(oauth2Clients, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list clients operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
