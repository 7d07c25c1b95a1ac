package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/mesh-intelligence/libris/pkg/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printBooks(w io.Writer, books []types.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "No books in the catalog.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ISBN\tTITLE\tAUTHOR\tYEAR")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ISBN, b.Title, b.Author, yearString(b.PublicationYear))
	}
	return tw.Flush()
}

func printMembers(w io.Writer, members []types.Member) error {
	if len(members) == 0 {
		_, err := fmt.Fprintln(w, "No members registered.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBORROWED")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", m.MemberID, m.Name, len(m.BorrowedBooks))
	}
	return tw.Flush()
}

func printMember(w io.Writer, m types.Member) error {
	fmt.Fprintf(w, "%s (%s)\n", m.Name, m.MemberID)
	if len(m.BorrowedBooks) == 0 {
		_, err := fmt.Fprintln(w, "  nothing borrowed")
		return err
	}
	for _, b := range m.BorrowedBooks {
		fmt.Fprintf(w, "  - %s\n", b)
	}
	return nil
}

func printTransactions(w io.Writer, txs []types.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, "No transactions recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tISBN\tTITLE\tBORROWED\tRETURNED")
	for _, tx := range txs {
		returned := "-"
		if tx.Returned() {
			returned = tx.ReturnDate.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", tx.MemberID, tx.Book.ISBN, tx.Book.Title, tx.BorrowDate, returned)
	}
	return tw.Flush()
}

func yearString(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}
