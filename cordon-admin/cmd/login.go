package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func login(c *cli.Context) error {
	// Args
	if c.Args().Len() != 1 {
		return errors.New(
			"login requires one argument-- the address of the Cordon API " +
				"server",
		)
	}
	apiAddress := strings.TrimSuffix(c.Args().Get(0), "/")

	// Command-specific flags
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	reader := bufio.NewReader(os.Stdin)

	for {
		email = strings.TrimSpace(email)
		if email != "" {
			break
		}
		fmt.Print("Email? ")
		var err error
		if email, err = reader.ReadString('\n'); err != nil {
			return errors.Wrap(err, "error reading email from stdin")
		}
	}

	for {
		password = strings.TrimSpace(password)
		if password != "" {
			break
		}
		fmt.Print("Password? ")
		var err error
		if password, err = reader.ReadString('\n'); err != nil {
			return errors.Wrap(err, "error reading password from stdin")
		}
	}

	config := &config{
		APIAddress: apiAddress,
		OrgID:      c.String(flagOrg),
	}

	client, jar, err := newClient(c, config)
	if err != nil {
		return errors.Wrap(err, "error getting cordon client")
	}

	principal, err := client.Sessions().Login(c.Context, email, password)
	if err != nil {
		return err
	}

	// Harvest the session cookies the server just set so later invocations
	// can resume the session.
	apiURL, err := url.Parse(apiAddress)
	if err != nil {
		return errors.Wrapf(err, "error parsing API server address %q", apiAddress)
	}
	for _, cookie := range jar.Cookies(apiURL) {
		config.Cookies = append(
			config.Cookies,
			sessionCookie{
				Name:  cookie.Name,
				Value: cookie.Value,
			},
		)
	}
	if config.OrgID == "" {
		config.OrgID = principal.OrgID
	}

	if err := saveConfig(config); err != nil {
		return errors.Wrap(err, "error persisting configuration")
	}

	fmt.Printf("Login was successful. You are %q.\n", principal.Email)

	return nil
}
