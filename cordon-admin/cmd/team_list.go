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

func teamList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("team list requires no arguments")
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

	teams, err := client.Teams().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(teams.Data) == 0 {
		fmt.Println("No teams found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DESCRIPTION", "MEMBERS")
		for _, team := range teams.Data {
			table.AddRow(
				team.ID,
				team.Name,
				team.Description,
				team.MemberCount,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(teams)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list teams operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(teams, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list teams operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
