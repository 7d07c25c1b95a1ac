package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMemberCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage library members",
	}
	cmd.AddCommand(newMemberAddCmd(a))
	cmd.AddCommand(newMemberListCmd(a))
	cmd.AddCommand(newMemberGetCmd(a))
	return cmd
}

func newMemberAddCmd(a *app) *cobra.Command {
	var name, id string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a member",
		Long: `Add registers a member with nothing borrowed.

Example:
  librarian member add --name Ann --id M1`,
		Args: cobra.NoArgs,
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			m, err := a.catalog.AddMember(name, id)
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), m)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added member: %s (%s)\n", m.Name, m.MemberID)
			return nil
		}),
	}
	cmd.Flags().StringVar(&name, "name", "", "member name (required)")
	cmd.Flags().StringVar(&id, "id", "", "member ID (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newMemberListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List members",
		Args:  cobra.NoArgs,
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			members := a.catalog.ListMembers()
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), members)
			}
			return printMembers(cmd.OutOrStdout(), members)
		}),
	}
}

func newMemberGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <member-id>",
		Short: "Show a member and what they have borrowed",
		Args:  cobra.ExactArgs(1),
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			m, err := a.catalog.FindMemberByID(args[0])
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), m)
			}
			return printMember(cmd.OutOrStdout(), m)
		}),
	}
}
