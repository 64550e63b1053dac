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

func orgGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("org get requires one argument-- an organization ID")
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

	org, err := client.Organizations().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DOMAIN", "CREATED")
		table.AddRow(
			org.ID,
			org.Name,
			org.Domain,
			org.Created,
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(org)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get organization operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(org, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get organization operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
