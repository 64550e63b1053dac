package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func webhookCreate(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"webhook create requires one argument-- a path to a file " +
				"containing a webhook definition",
		)
	}
	filename := c.Args().Get(0)

	webhookBytes, err := readWebhookFile(filename)
	if err != nil {
		return err
	}

	client, err := getClient(c)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	webhook, err := client.Webhooks().Create(c.Context, webhookBytes)
	if err != nil {
		return err
	}

	fmt.Printf("\nWebhook %q created with signing secret:\n", webhook.ID)
	fmt.Printf("\n\t%s\n", webhook.Secret)
	fmt.Println(
		"\nStore this secret someplace secure NOW. It cannot be retrieved " +
			"later through any other means.",
	)

	return nil
}

// readWebhookFile reads a webhook definition, converting YAML input to the
// JSON the SDK validates and sends.
func readWebhookFile(filename string) ([]byte, error) {
	webhookBytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading webhook file %s", filename)
	}
	if strings.HasSuffix(filename, ".yaml") ||
		strings.HasSuffix(filename, ".yml") {
		if webhookBytes, err = yaml.YAMLToJSON(webhookBytes); err != nil {
			return nil, errors.Wrapf(
				err,
				"error converting webhook file %s to JSON",
				filename,
			)
		}
	}
	return webhookBytes, nil
}
