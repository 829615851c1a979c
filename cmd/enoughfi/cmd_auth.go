package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "Log in with email and password." }
func (*loginCmd) Usage() string {
	return "login -email <email> -password <password>\n"
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "account email")
	f.StringVar(&c.password, "password", "", "account password")
}

func (c *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	state, err := a.session.Login(ctx, c.email, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Logged in as %s; next screen: %s\n", a.session.User().Name, state)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	name     string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "Create a new account." }
func (*registerCmd) Usage() string {
	return "register -name <name> -email <email> -password <password>\n"
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "your name")
	f.StringVar(&c.email, "email", "", "account email")
	f.StringVar(&c.password, "password", "", "account password")
}

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	state, err := a.session.Register(ctx, c.name, c.email, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Welcome %s; next screen: %s\n", a.session.User().Name, state)
	return subcommands.ExitSuccess
}

type demoCmd struct{}

func (*demoCmd) Name() string             { return "demo" }
func (*demoCmd) Synopsis() string         { return "Start a demo session." }
func (*demoCmd) Usage() string            { return "demo\n" }
func (*demoCmd) SetFlags(_ *flag.FlagSet) {}

func (c *demoCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	state, err := a.session.DemoLogin(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Demo session started; next screen: %s\n", state)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "Clear the stored session." }
func (*logoutCmd) Usage() string            { return "logout\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(err)
	}
	a.session.Logout()
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "error:", err)
	return subcommands.ExitFailure
}
