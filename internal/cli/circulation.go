package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBorrowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "borrow <member-id> <isbn>",
		Short: "Lend a book to a member",
		Long: `Borrow adds the book to the member's borrowed list and records a
transaction. A book may be lent to several members at once.`,
		Args: cobra.ExactArgs(2),
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			tx, err := a.catalog.Borrow(args[0], args[1])
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), tx)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Book borrowed: %s\n", tx.Book.Title)
			return nil
		}),
	}
}

func newReturnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "return <member-id> <isbn>",
		Short: "Take a book back from a member",
		Long: `Return removes one copy of the book from the member's borrowed list.
Returning a book the member does not hold succeeds and changes nothing.`,
		Args: cobra.ExactArgs(2),
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			returned, err := a.catalog.Return(args[0], args[1])
			if err != nil {
				return err
			}
			if returned {
				if err := a.save(); err != nil {
					return err
				}
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]bool{"returned": returned})
			}
			if returned {
				fmt.Fprintln(cmd.OutOrStdout(), "Book returned.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Member had not borrowed that book; nothing changed.")
			}
			return nil
		}),
	}
}

func newTransactionsCmd(a *app) *cobra.Command {
	var openOnly bool
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List the borrow ledger",
		Args:  cobra.NoArgs,
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			txs := a.catalog.ListTransactions()
			if openOnly {
				txs = a.catalog.OpenTransactions()
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), txs)
			}
			return printTransactions(cmd.OutOrStdout(), txs)
		}),
	}
	cmd.Flags().BoolVar(&openOnly, "open", false, "only transactions without a return date")
	return cmd
}
