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

func teamMembers(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("team members requires one argument-- a team ID")
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

	members, err := client.Teams().Members(c.Context, id, listOptions(c))
	if err != nil {
		return err
	}

	if len(members.Data) == 0 {
		fmt.Println("No members found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "EMAIL", "NAME")
		for _, member := range members.Data {
			table.AddRow(
				member.ID,
				member.Email,
				member.Name,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(members)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list team members operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(members, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list team members operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
