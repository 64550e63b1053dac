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

func teamGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("team get requires one argument-- a team ID")
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

	team, err := client.Teams().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "NAME", "DESCRIPTION", "MEMBERS")
		table.AddRow(
			team.ID,
			team.Name,
			team.Description,
			team.MemberCount,
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(team)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get team operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(team, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get team operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
