package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn and printFn are test seams for user-facing output. In tests,
// replace them with stubs.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	page() Page
	checkSession()

	Masthead(ctx context.Context) error
	Articles(ctx context.Context) error
	Read(ctx context.Context, slug string) error
	Home(ctx context.Context) error

	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Confirm(ctx context.Context, token string) error
	Logout(ctx context.Context) error

	List(ctx context.Context) error
	New(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Title(ctx context.Context) error
	Content(ctx context.Context) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Search(ctx context.Context, q string) error
	Docs(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	RemoveDoc(ctx context.Context, arg string) error
	Download(ctx context.Context, arg, path string) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context) error
}

var help = map[Page]string{
	PageLanding:   "Available commands: articles, read <slug>, exit",
	PageAuth:      "Available commands: signin, signup, confirm <token>, home, exit",
	PageWorkspace: "Available commands: list, new, open <n>, show, edit, title, content, save, cancel, delete [n], search [q], docs, upload <path>, rmdoc <n>, download <n> [path], refresh, status, home, logout, exit",
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// runREPL starts a read–eval–print loop for the Plain Theory client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' according to the current page. Errors returned
// by handlers are printed and the loop continues. The loop exits on EOF or
// when the user types "exit" or "quit".
//
//	Landing:   help, masthead, articles, read <slug>, exit
//	Auth:      help, signin, signup, confirm <token>, home, exit
//	Workspace: help, list, new, open <n>, show, edit, title, content, save,
//	           cancel, delete [n], search [q], docs, upload <path>, rmdoc <n>,
//	           download <n> [path], refresh, status, home, logout, exit
//
// masthead is not listed by help.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		printFn(promptFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printlnFn(help[a.page()])
			continue
		}

		var cmdErr error
		known := true
		switch a.page() {
		case PageLanding:
			switch cmd {
			case "masthead":
				cmdErr = a.Masthead(ctx)
			case "articles":
				cmdErr = a.Articles(ctx)
			case "read":
				cmdErr = a.Read(ctx, arg(args, 0))
			default:
				known = false
			}

		case PageAuth:
			switch cmd {
			case "signin":
				cmdErr = a.SignIn(ctx)
			case "signup":
				cmdErr = a.SignUp(ctx)
			case "confirm":
				cmdErr = a.Confirm(ctx, arg(args, 0))
			case "home":
				cmdErr = a.Home(ctx)
			default:
				known = false
			}

		case PageWorkspace:
			switch cmd {
			case "list", "l":
				cmdErr = a.List(ctx)
			case "new":
				cmdErr = a.New(ctx)
			case "open":
				cmdErr = a.Open(ctx, arg(args, 0))
			case "show":
				cmdErr = a.Show(ctx)
			case "edit":
				cmdErr = a.Edit(ctx)
			case "title":
				cmdErr = a.Title(ctx)
			case "content":
				cmdErr = a.Content(ctx)
			case "save":
				cmdErr = a.Save(ctx)
			case "cancel":
				cmdErr = a.Cancel(ctx)
			case "delete":
				cmdErr = a.Delete(ctx, arg(args, 0))
			case "search":
				cmdErr = a.Search(ctx, strings.Join(args, " "))
			case "docs":
				cmdErr = a.Docs(ctx)
			case "upload":
				cmdErr = a.Upload(ctx, strings.Join(args, " "))
			case "rmdoc":
				cmdErr = a.RemoveDoc(ctx, arg(args, 0))
			case "download":
				cmdErr = a.Download(ctx, arg(args, 0), strings.Join(args[min(1, len(args)):], " "))
			case "refresh":
				cmdErr = a.Refresh(ctx)
			case "status":
				cmdErr = a.Status(ctx)
			case "home":
				cmdErr = a.Home(ctx)
			case "logout":
				cmdErr = a.Logout(ctx)
			default:
				known = false
			}
		}

		if !known {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if cmdErr != nil {
			printlnFn(errorStyle.Render(cmdErr.Error()))
		}
		a.checkSession()
	}
}
