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

func invitationList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("invitation list requires no arguments")
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

	invitations, err := client.Invitations().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(invitations.Data) == 0 {
		fmt.Println("No invitations found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "EMAIL", "STATUS", "EXPIRES")
		for _, invitation := range invitations.Data {
			table.AddRow(
				invitation.ID,
				invitation.Email,
				invitation.Status,
				invitation.ExpiresAt,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(invitations)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list invitations operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(invitations, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list invitations operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
