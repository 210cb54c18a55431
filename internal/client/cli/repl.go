package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Category(ctx context.Context, args []string) error
	Mode(ctx context.Context, args []string) error
	SwitchView(ctx context.Context, args []string) error
	ClearFilters(ctx context.Context) error
	Post(ctx context.Context) error
	Contact(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: (b)rowse, search <term>, category <name>, mode <name>, view all|free, clear, post, contact <n>, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the CampusKart CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Session gating happens here, on every iteration: until a login or
// registration succeeds, only register/login/help/exit are reachable; once a
// session ends the marketplace commands disappear again. Any errors returned
// by command handlers are ignored here; handlers report their own errors.
// This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ck> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "register":
			_ = a.Register(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first (type 'login' or 'register')")
			continue
		}

		switch cmd {
		case "browse", "b", "list", "l":
			_ = a.Browse(ctx)

		case "search":
			_ = a.Search(ctx, args)

		case "category":
			_ = a.Category(ctx, args)

		case "mode":
			_ = a.Mode(ctx, args)

		case "view":
			_ = a.SwitchView(ctx, args)

		case "clear":
			_ = a.ClearFilters(ctx)

		case "post", "add":
			_ = a.Post(ctx)

		case "contact":
			_ = a.Contact(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command: " + cmd + " (type 'help')")
		}
	}
}
