package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cordonhq/cordon/pkg/signals"
)

func main() {
	app := cli.NewApp()
	app.Name = "cordon-admin"
	app.Usage = "Administer a Cordon IAM installation"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
		&cli.StringFlag{
			Name:  flagOrg,
			Usage: "Scope all operations to the specified organization",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:  "apikey",
			Usage: "Manage API keys",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Create a new API key",
					ArgsUsage: "KEY_NAME",
					Action:    apikeyCreate,
				},
				{
					Name:  "list",
					Usage: "List API keys",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: apikeyList,
				},
				{
					Name:      "revoke",
					Usage:     "Permanently revoke an API key",
					ArgsUsage: "KEY_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: apikeyRevoke,
				},
			},
		},
		{
			Name:  "client",
			Usage: "Manage OAuth2 client registrations",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Register a new OAuth2 client",
					ArgsUsage: "FILE",
					Action:    clientCreate,
				},
				{
					Name:      "delete",
					Usage:     "Delete an OAuth2 client",
					ArgsUsage: "CLIENT_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: clientDelete,
				},
				{
					Name:      "get",
					Usage:     "Get an OAuth2 client",
					ArgsUsage: "CLIENT_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: clientGet,
				},
				{
					Name:  "list",
					Usage: "List OAuth2 clients",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: clientList,
				},
				{
					Name:      "regenerate-secret",
					Usage:     "Replace an OAuth2 client's secret",
					ArgsUsage: "CLIENT_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: clientRegenerateSecret,
				},
			},
		},
		{
			Name:  "invitation",
			Usage: "Manage invitations",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Invite a person to the organization",
					ArgsUsage: "EMAIL",
					Flags: []cli.Flag{
						&cli.StringSliceFlag{
							Name:    flagRole,
							Aliases: []string{"r"},
							Usage: "Grant the specified role on acceptance " +
								"(may be repeated)",
						},
					},
					Action: invitationCreate,
				},
				{
					Name:  "list",
					Usage: "List invitations",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: invitationList,
				},
				{
					Name:      "resend",
					Usage:     "Resend an invitation email",
					ArgsUsage: "INVITATION_ID",
					Action:    invitationResend,
				},
				{
					Name:      "revoke",
					Usage:     "Revoke a pending invitation",
					ArgsUsage: "INVITATION_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: invitationRevoke,
				},
			},
		},
		{
			Name:      "login",
			Usage:     "Log in to Cordon",
			ArgsUsage: "API_SERVER_ADDRESS",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    flagEmail,
					Aliases: []string{"e"},
					Usage:   "Specify the email address non-interactively",
				},
				&cli.StringFlag{
					Name:    flagPassword,
					Aliases: []string{"p"},
					Usage:   "Specify the password non-interactively",
				},
			},
			Action: login,
		},
		{
			Name:   "logout",
			Usage:  "Log out of Cordon",
			Action: logout,
		},
		{
			Name:  "org",
			Usage: "Manage organizations",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Create a new organization",
					ArgsUsage: "ORG_NAME",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagDomain,
							Aliases: []string{"d"},
							Usage:   "The organization's verified domain",
						},
					},
					Action: orgCreate,
				},
				{
					Name:      "delete",
					Usage:     "Delete an organization",
					ArgsUsage: "ORG_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: orgDelete,
				},
				{
					Name:      "get",
					Usage:     "Get an organization",
					ArgsUsage: "ORG_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: orgGet,
				},
				{
					Name:  "list",
					Usage: "List organizations",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: orgList,
				},
			},
		},
		{
			Name:  "role",
			Usage: "Manage roles",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Create a new role",
					ArgsUsage: "ROLE_NAME",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagDescription,
							Aliases: []string{"d"},
							Usage:   "A description of the role",
						},
						&cli.StringSliceFlag{
							Name:    flagPermission,
							Aliases: []string{"p"},
							Usage: "Include the specified permission (may " +
								"be repeated)",
						},
					},
					Action: roleCreate,
				},
				{
					Name:      "delete",
					Usage:     "Delete a role",
					ArgsUsage: "ROLE_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: roleDelete,
				},
				{
					Name:      "get",
					Usage:     "Get a role",
					ArgsUsage: "ROLE_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: roleGet,
				},
				{
					Name:      "grant",
					Usage:     "Grant a role to a user",
					ArgsUsage: "ROLE_ID USER_ID",
					Action:    roleGrant,
				},
				{
					Name:  "list",
					Usage: "List roles",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: roleList,
				},
				{
					Name:      "revoke",
					Usage:     "Revoke a role from a user",
					ArgsUsage: "ROLE_ID USER_ID",
					Action:    roleRevoke,
				},
			},
		},
		{
			Name:  "team",
			Usage: "Manage teams",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Create a new team",
					ArgsUsage: "TEAM_NAME",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:    flagDescription,
							Aliases: []string{"d"},
							Usage:   "A description of the team",
						},
					},
					Action: teamCreate,
				},
				{
					Name:      "delete",
					Usage:     "Delete a team",
					ArgsUsage: "TEAM_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: teamDelete,
				},
				{
					Name:      "get",
					Usage:     "Get a team",
					ArgsUsage: "TEAM_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: teamGet,
				},
				{
					Name:  "list",
					Usage: "List teams",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: teamList,
				},
				{
					Name:  "member",
					Usage: "Manage team membership",
					Subcommands: []*cli.Command{
						{
							Name:      "add",
							Usage:     "Add a user to a team",
							ArgsUsage: "TEAM_ID USER_ID",
							Action:    teamMemberAdd,
						},
						{
							Name:      "remove",
							Usage:     "Remove a user from a team",
							ArgsUsage: "TEAM_ID USER_ID",
							Action:    teamMemberRemove,
						},
					},
				},
				{
					Name:      "members",
					Usage:     "List the users on a team",
					ArgsUsage: "TEAM_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: teamMembers,
				},
			},
		},
		{
			Name:  "user",
			Usage: "Manage users",
			Subcommands: []*cli.Command{
				{
					Name:      "delete",
					Usage:     "Permanently delete a user",
					ArgsUsage: "USER_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: userDelete,
				},
				{
					Name:      "get",
					Usage:     "Get a user",
					ArgsUsage: "USER_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: userGet,
				},
				{
					Name:  "list",
					Usage: "List users",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: userList,
				},
				{
					Name:      "lock",
					Usage:     "Lock a user out of Cordon",
					ArgsUsage: "USER_ID",
					Action:    userLock,
				},
				{
					Name:      "unlock",
					Usage:     "Restore a user's access to Cordon",
					ArgsUsage: "USER_ID",
					Action:    userUnlock,
				},
			},
		},
		{
			Name:  "webhook",
			Usage: "Manage webhooks",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Register a new webhook",
					ArgsUsage: "FILE",
					Action:    webhookCreate,
				},
				{
					Name:      "delete",
					Usage:     "Delete a webhook",
					ArgsUsage: "WEBHOOK_ID",
					Flags: []cli.Flag{
						cliFlagYes,
					},
					Action: webhookDelete,
				},
				{
					Name:      "get",
					Usage:     "Get a webhook",
					ArgsUsage: "WEBHOOK_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: webhookGet,
				},
				{
					Name:  "list",
					Usage: "List webhooks",
					Flags: []cli.Flag{
						cliFlagOutput,
						cliFlagLimit,
						cliFlagOffset,
					},
					Action: webhookList,
				},
				{
					Name:      "ping",
					Usage:     "Send a test event to a webhook",
					ArgsUsage: "WEBHOOK_ID",
					Action:    webhookPing,
				},
				{
					Name:      "update",
					Usage:     "Update a webhook",
					ArgsUsage: "WEBHOOK_ID FILE",
					Action:    webhookUpdate,
				},
			},
		},
		{
			Name:  "whoami",
			Usage: "Show the principal behind the current session",
			Flags: []cli.Flag{
				cliFlagOutput,
			},
			Action: whoami,
		},
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
