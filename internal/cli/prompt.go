package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoInput = errors.New("no trial count provided")

// promptTrials reads the number of trials, asking again until a
// non-negative whole number is entered.
func promptTrials(in io.Reader, out io.Writer) (int, error) {
	sc := bufio.NewScanner(in)

	fmt.Fprint(out, "Number of trials (n >= 0): ")
	for sc.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		switch {
		case err != nil:
			fmt.Fprint(out, "Invalid input. Enter a non-negative whole number: ")
		case n < 0:
			fmt.Fprint(out, "Number of trials cannot be negative. Try again: ")
		default:
			return n, nil
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	fmt.Fprintln(out)
	return 0, errNoInput
}
