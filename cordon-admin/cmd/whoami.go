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

func whoami(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("whoami requires no arguments")
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

	principal, err := client.Sessions().Whoami(c.Context)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "EMAIL", "NAME", "ORG", "ROLES")
		table.AddRow(
			principal.UserID,
			principal.Email,
			principal.Name,
			principal.OrgID,
			strings.Join(principal.Roles, ","),
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(principal)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from whoami operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(principal, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from whoami operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
