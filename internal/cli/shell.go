package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mesh-intelligence/libris/pkg/types"
)

const shellMenu = `
1. Add Book
2. Add Member
3. Borrow Book
4. Return Book
5. Display Books
6. Display Members
7. Save and Exit
Enter your choice: `

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive menu",
		Long: `Shell loads the library once, runs a numbered menu until "Save and Exit"
is chosen, then saves everything. Ending input without choosing it discards
the session's changes.`,
		Args: cobra.NoArgs,
		RunE: a.withCatalog(func(cmd *cobra.Command, args []string) error {
			s := &shell{
				app:     a,
				in:      bufio.NewScanner(a.stdin),
				out:     cmd.OutOrStdout(),
				prompts: isTerminal(a.stdin),
			}
			return s.run()
		}),
	}
}

// isTerminal reports whether r is an interactive terminal. Prompts are
// suppressed for piped input.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var (
	// errEndOfInput is returned by read when input ends.
	errEndOfInput = errors.New("end of input")

	// errReadInput wraps a failure of the input stream itself.
	errReadInput = errors.New("read input")
)

type shell struct {
	app     *app
	in      *bufio.Scanner
	out     io.Writer
	prompts bool
}

func (s *shell) run() error {
	for {
		if s.prompts {
			fmt.Fprint(s.out, shellMenu)
		}
		choice, err := s.read("")
		if err != nil {
			return s.stop(err)
		}

		switch choice {
		case "1":
			err = s.addBook()
		case "2":
			err = s.addMember()
		case "3":
			err = s.borrow()
		case "4":
			err = s.giveBack()
		case "5":
			err = printBooks(s.out, s.app.catalog.ListBooks())
		case "6":
			err = printMembers(s.out, s.app.catalog.ListMembers())
		case "7":
			return s.saveAndExit()
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
			continue
		}

		if errors.Is(err, errEndOfInput) || errors.Is(err, errReadInput) {
			return s.stop(err)
		}
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
}

// stop ends the session without saving. Running out of input is a normal
// end; a failing input stream is returned.
func (s *shell) stop(err error) error {
	fmt.Fprintln(s.app.stderr, "Input ended; changes from this session were not saved.")
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

// read prints prompt (on a terminal) and returns the next trimmed line.
func (s *shell) read(prompt string) (string, error) {
	if s.prompts && prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %w", errReadInput, err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readFields reads one line per prompt.
func (s *shell) readFields(prompts ...string) ([]string, error) {
	values := make([]string, len(prompts))
	for i, p := range prompts {
		v, err := s.read(p)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (s *shell) addBook() error {
	f, err := s.readFields("Enter title: ", "Enter author: ", "Enter ISBN: ", "Enter publication year: ")
	if err != nil {
		return err
	}
	year := 0
	if f[3] != "" {
		year, err = strconv.Atoi(f[3])
		if err != nil {
			return fmt.Errorf("%w: publication year %q is not a number", types.ErrInvalidData, f[3])
		}
	}
	if _, err := s.app.catalog.AddBook(f[0], f[1], f[2], year); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Book added successfully.")
	return nil
}

func (s *shell) addMember() error {
	f, err := s.readFields("Enter member name: ", "Enter member ID: ")
	if err != nil {
		return err
	}
	if _, err := s.app.catalog.AddMember(f[0], f[1]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Member added successfully.")
	return nil
}

func (s *shell) borrow() error {
	f, err := s.readFields("Enter member ID: ", "Enter book ISBN: ")
	if err != nil {
		return err
	}
	if _, err := s.app.catalog.Borrow(f[0], f[1]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Book borrowed successfully.")
	return nil
}

func (s *shell) giveBack() error {
	f, err := s.readFields("Enter member ID: ", "Enter book ISBN: ")
	if err != nil {
		return err
	}
	if _, err := s.app.catalog.Return(f[0], f[1]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Book returned successfully.")
	return nil
}

// saveAndExit saves even when the startup load failed: the session's
// in-memory state replaces the unreadable stores.
func (s *shell) saveAndExit() error {
	if s.app.loadErr != nil {
		fmt.Fprintln(s.app.stderr, "Warning: overwriting stores that failed to load")
	}
	if err := s.app.catalog.SaveAll(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintln(s.out, "Data saved. Exiting...")
	return nil
}
