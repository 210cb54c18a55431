package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Browse(ctx context.Context) error { return f.record("browse") }
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search " + strings.Join(args, " "))
}
func (f *fakeExec) Category(ctx context.Context, args []string) error {
	return f.record("category " + strings.Join(args, " "))
}
func (f *fakeExec) Mode(ctx context.Context, args []string) error {
	return f.record("mode " + strings.Join(args, " "))
}
func (f *fakeExec) SwitchView(ctx context.Context, args []string) error {
	return f.record("view " + strings.Join(args, " "))
}
func (f *fakeExec) ClearFilters(ctx context.Context) error { return f.record("clear") }
func (f *fakeExec) Post(ctx context.Context) error         { return f.record("post") }
func (f *fakeExec) Contact(ctx context.Context, args []string) error {
	return f.record("contact " + strings.Join(args, " "))
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) []string {
	t.Helper()

	origPrint := printlnFn
	var printed []string
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
	return printed
}

func TestRunREPL_DispatchesCommandsInOrder(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec,
		"browse",
		"search calc ti-84",
		"category tech",
		"mode buy",
		"view free",
		"clear",
		"post",
		"contact 2",
		"logout",
		"exit",
	)

	want := []string{
		"browse",
		"search calc ti-84",
		"category tech",
		"mode buy",
		"view free",
		"clear",
		"post",
		"contact 2",
		"logout",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_GatesMarketplaceCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: false}
	printed := runScript(t, exec,
		"browse",
		"post",
		"login",
		"browse",
		"exit",
	)

	// pre-login browse/post never reached the handlers
	if len(exec.calls) != 2 || exec.calls[0] != "login" || exec.calls[1] != "browse" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}

	found := false
	for _, line := range printed {
		if strings.Contains(line, "log in first") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a log-in reminder, printed: %v", printed)
	}
}

func TestRunREPL_GateReappearsAfterLogout(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec,
		"browse",
		"logout",
		"browse",
		"exit",
	)

	if len(exec.calls) != 2 || exec.calls[0] != "browse" || exec.calls[1] != "logout" {
		t.Fatalf("browse after logout must be gated, calls: %v", exec.calls)
	}
}

func TestRunREPL_HelpReflectsSessionState(t *testing.T) {
	printedOut := runScript(t, &fakeExec{loggedIn: false}, "help", "exit")
	if !contains(printedOut, helpLoggedOut) {
		t.Fatalf("missing logged-out help, printed: %v", printedOut)
	}

	printedIn := runScript(t, &fakeExec{loggedIn: true}, "help", "exit")
	if !contains(printedIn, helpLoggedIn) {
		t.Fatalf("missing logged-in help, printed: %v", printedIn)
	}
}

func TestRunREPL_UnknownCommandAndBlankLines(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	printed := runScript(t, exec,
		"",
		"   ",
		"frobnicate",
		"exit",
	)

	if len(exec.calls) != 0 {
		t.Fatalf("no handlers should run: %v", exec.calls)
	}
	found := false
	for _, line := range printed {
		if strings.Contains(line, "Unknown command: frobnicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown-command message, printed: %v", printed)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, "browse") // no exit line, scanner hits EOF
	if len(exec.calls) != 1 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}
