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

func webhookList(c *cli.Context) error {
	// Args
	if c.Args().Len() != 0 {
		return errors.New("webhook list requires no arguments")
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

	webhooks, err := client.Webhooks().List(c.Context, listOptions(c))
	if err != nil {
		return err
	}

	if len(webhooks.Data) == 0 {
		fmt.Println("No webhooks found.")
		return nil
	}

	switch strings.ToLower(output) {
	case "table":
		table := uitable.New()
		table.AddRow("ID", "URL", "EVENTS", "ACTIVE?")
		for _, webhook := range webhooks.Data {
			table.AddRow(
				webhook.ID,
				webhook.URL,
				strings.Join(webhook.Events, ","),
				webhook.Active,
			)
		}
		fmt.Println(table)

	case "yaml":
		yamlBytes, err := yaml.Marshal(webhooks)
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list webhooks operation",
			)
		}
		fmt.Println(string(yamlBytes))

	case "json":
		prettyJSON, err := json.MarshalIndent(webhooks, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from list webhooks operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
