package restmachinery

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envconfigPrefix = "CORDON"

// nolint: lll
type environment struct {
	APIAddress string `envconfig:"API_ADDRESS" default:"https://localhost:8443"`
	OrgID      string `envconfig:"ORG_ID"`
}

// GetClientConfigFromEnvironment returns a ClientConfig whose API address and
// default organization scope are resolved from CORDON_* environment
// variables.
func GetClientConfigFromEnvironment() (ClientConfig, error) {
	e := environment{}
	if err := envconfig.Process(envconfigPrefix, &e); err != nil {
		return ClientConfig{}, errors.Wrap(
			err,
			"error processing environment variables",
		)
	}
	return ClientConfig{
		Address: e.APIAddress,
		OrgID:   e.OrgID,
	}, nil
}
