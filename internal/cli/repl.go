package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for REPL output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL drives. App satisfies it; tests
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Questionnaire(ctx context.Context) error
	Resume(ctx context.Context, path string) error
	Recommend(ctx context.Context) error
	Show(ctx context.Context) error
	Report(ctx context.Context, dir string) error
	Save(ctx context.Context) error
	Clear(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help               show available commands
//	  - questionnaire | q  answer the questionnaire
//	  - resume <path>      analyse a resume (pdf, docx, txt)
//	  - recommend | r      show career suggestions
//	  - show               show the current answers
//	  - report [dir]       write a text report
//	  - save               archive the session
//	  - clear              discard answers and resume evidence
//	  - logout             log out
//	  - exit | quit        leave the program
//
// Handler errors are reported by the handlers themselves; the loop keeps
// running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printFn(fmt.Sprintf("career %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			printlnFn()
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
				printlnFn("Available commands: (q)uestionnaire, resume <path>, (r)ecommend, show, report [dir], save, clear, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "q", "questionnaire":
			_ = a.Questionnaire(ctx)

		case "resume":
			_ = a.Resume(ctx, strings.Join(args, " "))

		case "r", "recommend":
			_ = a.Recommend(ctx)

		case "show":
			_ = a.Show(ctx)

		case "report":
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			_ = a.Report(ctx, dir)

		case "save":
			_ = a.Save(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
