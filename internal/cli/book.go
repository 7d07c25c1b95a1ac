package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBookCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Manage the book catalog",
	}
	cmd.AddCommand(newBookAddCmd(a))
	cmd.AddCommand(newBookListCmd(a))
	cmd.AddCommand(newBookGetCmd(a))
	cmd.AddCommand(newBookRemoveCmd(a))
	return cmd
}

func newBookAddCmd(a *app) *cobra.Command {
	var (
		title  string
		author string
		isbn   string
		year   int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Long: `Add appends a book to the catalog. A second book with an ISBN already in
the catalog is accepted; lookups return the first one added.

Example:
  librarian book add --title Dune --author "Frank Herbert" --isbn 111 --year 1965`,
		Args: cobra.NoArgs,
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			b, err := a.catalog.AddBook(title, author, isbn, year)
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added book: %s\n", b)
			return nil
		}),
	}
	cmd.Flags().StringVar(&title, "title", "", "book title (required)")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN (required)")
	cmd.Flags().IntVar(&year, "year", 0, "publication year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("isbn")
	return cmd
}

func newBookListCmd(a *app) *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books",
		Args:  cobra.NoArgs,
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			books := a.catalog.ListBooks()
			if sorted {
				books = a.catalog.SortedBooks()
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), books)
			}
			return printBooks(cmd.OutOrStdout(), books)
		}),
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order by title instead of insertion order")
	return cmd
}

func newBookGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <isbn>",
		Short: "Show the first book with an ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			b, err := a.catalog.FindBookByISBN(args[0])
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), b)
			}
			fmt.Fprintln(cmd.OutOrStdout(), b)
			return nil
		}),
	}
}

func newBookRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <isbn>",
		Short: "Remove the first book with an ISBN",
		Args:  cobra.ExactArgs(1),
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			b, err := a.catalog.RemoveBook(args[0])
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed book: %s\n", b)
			return nil
		}),
	}
}
