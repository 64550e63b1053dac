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

func webhookGet(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New("webhook get requires one argument-- a webhook ID")
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

	webhook, err := client.Webhooks().Get(c.Context, id)
	if err != nil {
		return err
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "URL", "EVENTS", "ACTIVE?")
		table.AddRow(
			webhook.ID,
			webhook.URL,
			strings.Join(webhook.Events, ","),
			webhook.Active,
		)
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(webhook)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get webhook operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(webhook, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get webhook operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
