// Command client is a small command-line front end for the user-directory
// server. It talks to the REST API through the adapter package.
//
// Usage:
//
//	client [-a address] register -full-name NAME -email EMAIL -password PASS [-bio BIO] -dob YYYY-MM-DD
//	client [-a address] login -email EMAIL -password PASS
//	client [-a address] list
//	client [-a address] get -id USER_ID
//	client [-a address] me -token TOKEN
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/apryandito/user-directory/internal/adapter"
	"github.com/apryandito/user-directory/internal/config"
	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-directory-client")

	address := flag.String("a", "localhost"+config.DefaultHTTPAddress, "server address")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "expected a command: register, login, list, get, me")
		os.Exit(2)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Server{
		HTTPAddress:    *address,
		RequestTimeout: config.DefaultRequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()
	command := flag.Arg(0)
	args := flag.Args()[1:]

	if err = runCommand(ctx, serverAdapter, command, args); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

func runCommand(ctx context.Context, serverAdapter adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		return runRegister(ctx, serverAdapter, args)
	case "login":
		return runLogin(ctx, serverAdapter, args)
	case "list":
		return runList(ctx, serverAdapter)
	case "get":
		return runGet(ctx, serverAdapter, args)
	case "me":
		return runMe(ctx, serverAdapter, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	fullName := fs.String("full-name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	bio := fs.String("bio", "", "short biography (optional)")
	dob := fs.String("dob", "", "date of birth, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err := serverAdapter.Register(ctx, models.RegisterRequest{
		FullName: *fullName,
		Email:    *email,
		Password: *password,
		Bio:      *bio,
		Dob:      *dob,
	})
	if err != nil {
		return err
	}

	fmt.Println("registered")
	return nil
}

func runLogin(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := serverAdapter.Login(ctx, models.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func runList(ctx context.Context, serverAdapter adapter.ServerAdapter) error {
	users, err := serverAdapter.ListUsers(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		printUser(user)
	}
	return nil
}

func runGet(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "numeric user ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := serverAdapter.GetUser(ctx, *id)
	if err != nil {
		return err
	}

	printUser(user)
	return nil
}

func runMe(ctx context.Context, serverAdapter adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("me", flag.ExitOnError)
	token := fs.String("token", "", "bearer token from a previous login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	serverAdapter.SetToken(*token)

	user, err := serverAdapter.Me(ctx)
	if err != nil {
		return err
	}

	printUser(user)
	return nil
}

func printUser(user models.PublicUser) {
	fmt.Printf("%s <%s> dob=%s", user.FullName, user.Email, user.Dob)
	if user.Bio != "" {
		fmt.Printf(" bio=%q", user.Bio)
	}
	fmt.Println()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
