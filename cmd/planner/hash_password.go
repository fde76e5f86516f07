package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aussiebroadwan/planner/pkg/cryptox"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// NewHashPasswordCmd creates the hash-password subcommand.
func NewHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Print the bcrypt hash of a password, for seeding accounts by hand.
Without an argument the password is read from stdin, without echo when stdin
is a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordInput(cmd, args)
			if err != nil {
				return oops.Code("INPUT_FAILED").With("operation", "read password").Wrap(err)
			}

			hash, err := cryptox.NewBcryptHasher(cost).Hash(password)
			if err != nil {
				return oops.Code("HASH_FAILED").With("operation", "hash password").Wrap(err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}

	cmd.Flags().IntVar(&cost, "cost", cryptox.DefaultBcryptCost, "bcrypt cost")

	return cmd
}

func passwordInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := readPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		if len(b) == 0 {
			return "", errors.New("empty password")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", err
		}
		return "", errors.New("empty password")
	}
	return line, nil
}
