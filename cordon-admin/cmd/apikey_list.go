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

func apikeyList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("apikey list requires no arguments")
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

	apiKeys, err := client.APIKeys().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(apiKeys.Data) == 0 {
		fmt.Println("No API keys found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "EXPIRES", "LAST USED")
		for _, apiKey := range apiKeys.Data {
			table.AddRow(
				apiKey.ID,
				apiKey.Name,
				apiKey.ExpiresAt,
				apiKey.LastUsed,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(apiKeys)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list API keys operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(apiKeys, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list API keys operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
