package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// waitForKey blocks until a key is pressed. On a terminal a single key is
// enough; otherwise it reads one line or waits for EOF.
func waitForKey(in io.Reader, out io.Writer) {
	_, _ = fmt.Fprintln(out, "\nPress any key to exit...")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err == nil {
			defer func() { _ = term.Restore(int(f.Fd()), state) }()
			var b [1]byte
			_, _ = f.Read(b[:])
			return
		}
	}

	_, _ = bufio.NewReader(in).ReadString('\n')
}
