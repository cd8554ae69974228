package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ShowToken(ctx context.Context) error
	AddApplication(ctx context.Context) error
	ListApplications(ctx context.Context, args []string) error
	SetApplicationStatus(ctx context.Context) error
	DeleteApplication(ctx context.Context) error
}

// runREPL reads commands from scanner until EOF or exit/quit.
//
//	Signed out:  help, register, login, exit
//	Signed in:   help, add, list [status], status, delete, whoami, token, logout, exit
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jt %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: add, list [status], status, delete, whoami, token, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "token":
			err = a.ShowToken(ctx)
		case "add":
			err = a.AddApplication(ctx)
		case "list":
			err = a.ListApplications(ctx, parts[1:])
		case "status":
			err = a.SetApplicationStatus(ctx)
		case "delete":
			err = a.DeleteApplication(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
