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

func orgList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("org list requires no arguments")
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

	orgs, err := client.Organizations().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(orgs.Data) == 0 {
		fmt.Println("No organizations found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DOMAIN")
		for _, org := range orgs.Data {
			table.AddRow(
				org.ID,
				org.Name,
				org.Domain,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(orgs)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list organizations operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(orgs, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list organizations operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
