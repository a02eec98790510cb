package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error  { return f.record("whoami", nil) }
func (f *fakeExec) Pending(ctx context.Context) error { return f.record("pending", nil) }
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Set(ctx context.Context, args []string) error {
	f.record("set", args)
	return errors.New("handler errors never stop the loop")
}
func (f *fakeExec) Compare(ctx context.Context, args []string) error {
	return f.record("compare", args)
}
func (f *fakeExec) Save(ctx context.Context, args []string) error {
	return f.record("save", args)
}
func (f *fakeExec) Result(ctx context.Context, args []string) error {
	return f.record("result", args)
}
func (f *fakeExec) History(ctx context.Context) error { return f.record("history", nil) }
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}
func (f *fakeExec) Report(ctx context.Context, args []string) error {
	return f.record("report", args)
}
func (f *fakeExec) Notifications(ctx context.Context) error { return f.record("notifications", nil) }
func (f *fakeExec) MyRequests(ctx context.Context) error    { return f.record("requests", nil) }

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i], _ = v.(string)
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_ReviewFlow(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"pending",
		"show 7",
		"set 7 70 approved",
		"compare 7 70",
		"save 7",
		"result 7",
		"report 7 evaluation",
		"history",
		"delete 7",
		"",
		"logout",
		"exit",
		"pending",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	assert.Equal(t, []string{
		"login", "pending", "show", "set", "compare", "save", "result", "report", "history", "delete", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"7", "70", "approved"}, exec.args["set"])
	assert.Equal(t, []string{"7", "evaluation"}, exec.args["report"])
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	printed := silence(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\nquit\n")))
	assert.Contains(t, *printed, helpAnonymous)

	*printed = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\n")))
	assert.Contains(t, *printed, helpLoggedIn)
}

func TestRunREPL_UnknownCommandAndEOF(t *testing.T) {
	printed := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("foobar\nnotifications\nrequests")))

	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Equal(t, []string{"notifications", "requests"}, exec.calls)
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	silence(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("login\n")))
	assert.Empty(t, exec.calls)
}
