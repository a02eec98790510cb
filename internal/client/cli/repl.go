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
	WhoAmI(ctx context.Context) error

	Pending(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Set(ctx context.Context, args []string) error
	Compare(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Result(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Report(ctx context.Context, args []string) error

	Notifications(ctx context.Context) error
	MyRequests(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpLoggedIn  = `Available commands:
  pending                          list pending transfer requests
  show <req>                       show items of a request
  set <req> <item> <status>        record a decision (pending|approved|rejected)
  compare <req> <item>             compare a course with its suggested match
  save <req>                       send changed decisions
  result <req>                     show the reviewed request
  history                          list completed requests
  delete <req>                     delete a completed request
  report <req> [evaluation]        download the PDF report
  notifications                    decided requests you have not seen
  requests                         your own requests
  whoami                           show the current identity
  logout, exit`
)

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on EOF, when ctx is done, or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. No handler terminates the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ct %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "pending":
			_ = a.Pending(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "set":
			_ = a.Set(ctx, args)
		case "compare":
			_ = a.Compare(ctx, args)
		case "save":
			_ = a.Save(ctx, args)
		case "result":
			_ = a.Result(ctx, args)
		case "history":
			_ = a.History(ctx)
		case "delete":
			_ = a.Delete(ctx, args)
		case "report":
			_ = a.Report(ctx, args)

		case "notifications":
			_ = a.Notifications(ctx)
		case "requests":
			_ = a.MyRequests(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
