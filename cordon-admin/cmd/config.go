package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/cordonhq/cordon/pkg/file"
)

type config struct {
	APIAddress string `json:"apiAddress"`
	OrgID      string `json:"orgId,omitempty"`
	// Cookies holds the session cookies captured at login so the session
	// survives across CLI invocations.
	Cookies []sessionCookie `json:"cookies,omitempty"`
}

type sessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func getConfig() (*config, error) {
	cordonHome, err := getCordonHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding cordon home")
	}
	cordonConfigFile := path.Join(cordonHome, "config")
	if !file.Exists(cordonConfigFile) {
		return nil, errors.Errorf(
			"no cordon configuration was found at %s; please use "+
				"`cordon-admin login` to continue\n",
			cordonConfigFile,
		)
	}

	configBytes, err := ioutil.ReadFile(cordonConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading cordon config file at %s",
			cordonConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing cordon config file at %s",
			cordonConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	cordonHome, err := getCordonHome()
	if err != nil {
		return errors.Wrapf(err, "error finding cordon home")
	}
	if _, err := os.Stat(cordonHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of cordon home at %s",
				cordonHome,
			)
		}
		if err := os.MkdirAll(cordonHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating cordon home at %s",
				cordonHome,
			)
		}
	}
	cordonConfigFile := path.Join(cordonHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	// The config carries session cookies, so keep it private to the user.
	if err :=
		ioutil.WriteFile(cordonConfigFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", cordonConfigFile)
	}
	return nil
}

func deleteConfig() error {
	cordonHome, err := getCordonHome()
	if err != nil {
		return errors.Wrapf(err, "error finding cordon home")
	}
	cordonConfigFile := path.Join(cordonHome, "config")

	if err := os.Remove(cordonConfigFile); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}

	return nil
}

func getTokenStorePath() (string, error) {
	cordonHome, err := getCordonHome()
	if err != nil {
		return "", errors.Wrapf(err, "error finding cordon home")
	}
	return path.Join(cordonHome, "csrf-token"), nil
}

func getCordonHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".cordon"), nil
}
