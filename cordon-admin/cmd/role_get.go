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

func roleGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("role get requires one argument-- a role ID")
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

	role, err := client.Roles().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DESCRIPTION", "PERMISSIONS")
		table.AddRow(
			role.ID,
			role.Name,
			role.Description,
			strings.Join(role.Permissions, ","),
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(role)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get role operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(role, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get role operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
