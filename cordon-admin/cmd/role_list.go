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

func roleList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("role list requires no arguments")
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

	roles, err := client.Roles().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(roles.Data) == 0 {
		fmt.Println("No roles found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DESCRIPTION", "PERMISSIONS")
		for _, role := range roles.Data {
			table.AddRow(
				role.ID,
				role.Name,
				role.Description,
				len(role.Permissions),
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(roles)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list roles operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(roles, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list roles operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
