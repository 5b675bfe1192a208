// ABOUTME: Admin CLI for the portfolio API
// ABOUTME: Logs in with the admin password and edits every content section from a terminal

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"go-portfolio/internal/client"
	"go-portfolio/internal/editor"
	"go-portfolio/internal/session"
)

const banner = `
                  _    __       _ _            _   _
 _ __   ___  _ __| |_ / _| ___ | (_) ___   ___| |_| |
| '_ \ / _ \| '__| __| |_ / _ \| | |/ _ \ / __| __| |
| |_) | (_) | |  | |_|  _| (_) | | | (_) | (__| |_| |
| .__/ \___/|_|   \__|_|  \___/|_|_|\___/ \___|\__|_|
|_|
`

var errNotLoggedIn = errors.New("not logged in (run: portfolioctl login)")

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	dir, err := session.DefaultDir()
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	c, err := newCLI(cfg, session.NewFileTokenStore(dir), os.Stdin, os.Stdout, log)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.run(ctx, os.Args[1:]); err != nil {
		color.Red("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

type cli struct {
	out  io.Writer
	in   *bufio.Reader
	log  *slog.Logger
	sess *session.Store
	api  *client.API
}

func newCLI(cfg *Config, tokens session.TokenStore, in io.Reader, out io.Writer, log *slog.Logger) (*cli, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}

	anon, err := client.New(cfg.BaseURL, client.WithTimeout(timeout))
	if err != nil {
		return nil, err
	}
	sess := session.New(anon, tokens, log)

	authed, err := client.New(cfg.BaseURL, client.WithTimeout(timeout), client.WithTokenSource(sess))
	if err != nil {
		return nil, err
	}

	return &cli{
		out:  out,
		in:   bufio.NewReader(in),
		log:  log,
		sess: sess,
		api:  client.NewAPI(authed),
	}, nil
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage(c.out)
		return nil
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "login":
		return c.cmdLogin(ctx, args)
	case "logout":
		return c.cmdLogout()
	case "status":
		return c.cmdStatus(ctx)
	case "list":
		return c.cmdList(ctx, args)
	case "add":
		return c.cmdAdd(ctx, args)
	case "edit":
		return c.cmdEdit(ctx, args)
	case "delete":
		return c.cmdDelete(ctx, args)
	case "show":
		return c.cmdShow(ctx, args)
	case "set":
		return c.cmdSet(ctx, args)
	case "skills":
		return c.cmdSkills(ctx, args)
	case "upload":
		return c.cmdUpload(ctx, args)
	case "seed":
		return c.cmdSeed(ctx, args)
	case "help", "-h", "--help":
		printUsage(c.out)
		return nil
	default:
		printUsage(c.out)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printUsage(w io.Writer) {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Fprint(w, banner)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: portfolioctl <command> [args]")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  login [password]                   Log in as admin (prompts when omitted)")
	fmt.Fprintln(w, "  logout                             Forget the stored admin token")
	fmt.Fprintln(w, "  status                             Show API health and login state")
	fmt.Fprintln(w, "  list <resource>                    List a content section")
	fmt.Fprintln(w, "  add <resource> field=value...      Create an item")
	fmt.Fprintln(w, "  edit <resource> <id> field=value.. Update an item")
	fmt.Fprintln(w, "  delete <resource> <id>             Delete an item (asks first)")
	fmt.Fprintln(w, "  show about|contact                 Show a profile record")
	fmt.Fprintln(w, "  show experience <id>               Show one experience with its skills")
	fmt.Fprintln(w, "  set about|contact field=value...   Update a profile record")
	fmt.Fprintln(w, "  skills add <exp-id> field=value... Add a skill to an experience")
	fmt.Fprintln(w, "  skills edit <exp-id> <id> f=v...   Update an experience skill")
	fmt.Fprintln(w, "  skills delete <exp-id> <id>        Delete an experience skill")
	fmt.Fprintln(w, "  upload <file>                      Upload a file and print its URL")
	fmt.Fprintln(w, "  seed <file.yaml>                   Load content from a YAML file")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Resources:")
	fmt.Fprintln(w, "  social-links skills services certifications projects experience kpis")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Files:")
	fmt.Fprintln(w, "  Image fields accept @path to upload a local file, e.g. icon=@go.svg")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PORTFOLIO_API_URL    API base URL (default: http://localhost:5000)")
	fmt.Fprintln(w, "  XDG_CONFIG_HOME      Config dir root; reads portfolio/config.toml")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  portfolioctl login")
	fmt.Fprintln(w, "  portfolioctl add skills name=Go category=Backend icon=@go.svg")
	fmt.Fprintln(w, "  portfolioctl edit kpis 3 status='In Progress'")
	fmt.Fprintln(w, "  portfolioctl set contact email=me@example.com")
	fmt.Fprintln(w)
}

func (c *cli) editorOptions() editor.Options {
	red := color.New(color.FgRed)
	return editor.Options{
		Notifier: editor.NotifierFunc(func(message string) {
			red.Fprintf(c.out, "  %s\n", message)
		}),
		Confirmer: editor.ConfirmerFunc(c.confirm),
		Uploader:  c.api,
		Logger:    c.log,
	}
}

// confirm reads a y/N answer. Anything but y or yes declines.
func (c *cli) confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	answer, _ := c.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		fmt.Fprintln(c.out, "Cancelled.")
		return false
	}
}

func (c *cli) requireAdmin() error {
	if !c.sess.IsAdmin() {
		return errNotLoggedIn
	}
	return nil
}

func (c *cli) success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(c.out, format+"\n", args...)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
