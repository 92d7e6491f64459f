// Package gcd implements the gcd command.
package gcd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/euclid"
)

// NewCommand creates the gcd command.
//
// Flag parsing is disabled so negative operands such as -54 reach RunE as
// arguments instead of being rejected as unknown shorthand flags.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "gcd [a b]",
		GroupID: "tools",
		Short:   "Compute a greatest common divisor with Euclid's algorithm",
		Long: fmt.Sprintf(`Gcd prints the greatest common divisor of two integers.
Without arguments it uses %d and %d. Negative operands are accepted.`, euclid.DefaultA, euclid.DefaultB),
		Example: `  bookshelf gcd
  bookshelf gcd 1071 462
  bookshelf gcd -54 24`,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}

			args = operands(args)
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}

			a, b := euclid.DefaultA, euclid.DefaultB
			if len(args) == 2 {
				var err error
				if a, err = parseInt("a", args[0]); err != nil {
					return err
				}
				if b, err = parseInt("b", args[1]); err != nil {
					return err
				}
			}

			if euclid.Overflows(a, b) {
				return errors.NewValidationError("a", a, fmt.Sprintf("gcd of %d and %d does not fit in an int", a, b))
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "The GCD of %d and %d is %d\n", a, b, euclid.GCD(a, b))
			return err
		},
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// operands drops a leading "--" terminator.
func operands(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return 0, errors.WrapValidation(name, fmt.Errorf("%q is not an integer: %w", value, numErr.Err))
	}
	return n, err
}
