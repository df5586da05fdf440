// Command altdemo flips the terminal into the alternate screen until enter
// is pressed, demonstrating guard-based restoration.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rwalden/termctl"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "altdemo: stdout is not a terminal")
		os.Exit(1)
	}

	out := termctl.Stdout()
	err := termctl.WithAlternate(out, false, func(_ *termctl.Screen) error {
		fmt.Println("alternate screen; press enter to restore")
		_, err := bufio.NewReader(os.Stdin).ReadString('\n')
		return err
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "altdemo:", err)
		os.Exit(1)
	}
	fmt.Println("main screen restored")
}
