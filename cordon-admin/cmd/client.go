package main

import (
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/sdk"
	"github.com/cordonhq/cordon/sdk/restmachinery"
)

func getClient(c *cli.Context) (sdk.Client, error) {
	config, err := getConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "error retrieving configuration")
	}
	client, _, err := newClient(c, config)
	return client, err
}

// newClient assembles an SDK client around a cookie jar the CLI controls, so
// session cookies captured at login can be restored on later invocations and
// harvested for persistence. The jar is returned alongside the client for
// exactly that purpose.
func newClient(
	c *cli.Context,
	config *config,
) (sdk.Client, *cookiejar.Jar, error) {
	apiURL, err := url.Parse(config.APIAddress)
	if err != nil {
		return nil, nil, errors.Wrapf(
			err,
			"error parsing API server address %q",
			config.APIAddress,
		)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error creating cookie jar")
	}
	if len(config.Cookies) > 0 {
		cookies := make([]*http.Cookie, len(config.Cookies))
		for i, sessionCookie := range config.Cookies {
			cookies[i] = &http.Cookie{
				Name:  sessionCookie.Name,
				Value: sessionCookie.Value,
			}
		}
		jar.SetCookies(apiURL, cookies)
	}

	tokenStorePath, err := getTokenStorePath()
	if err != nil {
		return nil, nil, err
	}

	orgID := c.String(flagOrg)
	if orgID == "" {
		orgID = config.OrgID
	}

	client := sdk.NewClient(
		config.APIAddress,
		sdk.ClientOptions{
			OrgID: orgID,
			Transport: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: c.Bool(flagInsecure), // nolint: gosec
					},
				},
				Jar: jar,
			},
			TokenStore: restmachinery.NewFileTokenStore(tokenStorePath),
		},
	)
	return client, jar, nil
}
