package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// confirmed gates a destructive operation behind a y/N prompt, which --yes
// bypasses.
func confirmed(c *cli.Context, prompt string) (bool, error) {
	if c.Bool(flagYes) {
		return true, nil
	}
	fmt.Printf("%s (y/N) ", prompt)
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, errors.Wrap(err, "error reading confirmation from stdin")
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
