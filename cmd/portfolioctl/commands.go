package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"go-portfolio/internal/editor"
)

func (c *cli) cmdLogin(ctx context.Context, args []string) error {
	var password string
	if len(args) > 0 {
		password = args[0]
	} else {
		fmt.Fprint(c.out, "Password: ")
		line, _ := c.in.ReadString('\n')
		password = strings.TrimRight(line, "\r\n")
	}

	if err := c.sess.Login(ctx, password); err != nil {
		return err
	}
	c.success("Logged in.")
	return nil
}

func (c *cli) cmdLogout() error {
	if err := c.sess.Logout(); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	c.success("Logged out.")
	return nil
}

func (c *cli) cmdStatus(ctx context.Context) error {
	cyan := color.New(color.FgCyan)
	fmt.Fprintln(c.out)
	cyan.Fprintln(c.out, "  Portfolio API")
	cyan.Fprintln(c.out, "  -------------")

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  URL\t%s\n", c.api.BaseURL())

	health, err := c.api.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "  Health\t%s\n", color.RedString("unreachable (%v)", err))
	} else {
		fmt.Fprintf(w, "  Health\t%s (v%s)\n", color.GreenString("%s", health["status"]), health["version"])
	}

	switch {
	case !c.sess.IsAdmin():
		fmt.Fprintf(w, "  Admin\t%s\n", "no")
	case c.api.Verify(ctx) != nil:
		fmt.Fprintf(w, "  Admin\t%s\n", color.YellowString("token rejected (run: portfolioctl login)"))
	default:
		fmt.Fprintf(w, "  Admin\t%s\n", color.GreenString("yes"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *cli) lookup(name string) (resource, error) {
	all := c.resources()
	r, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q (one of: %s)", name, strings.Join(resourceNames(all), ", "))
	}
	return r, nil
}

func (c *cli) cmdList(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: portfolioctl list <resource>")
	}
	r, err := c.lookup(args[0])
	if err != nil {
		return err
	}
	return r.list(ctx, c.out)
}

func (c *cli) cmdAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: portfolioctl add <resource> field=value...")
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	r, err := c.lookup(args[0])
	if err != nil {
		return err
	}
	fields, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	if err := r.add(ctx, fields); err != nil {
		return err
	}
	c.success("Created.")
	return nil
}

func (c *cli) cmdEdit(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: portfolioctl edit <resource> <id> field=value...")
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	r, err := c.lookup(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	fields, err := parseAssignments(args[2:])
	if err != nil {
		return err
	}
	if err := r.edit(ctx, id, fields); err != nil {
		return err
	}
	c.success("Saved.")
	return nil
}

func (c *cli) cmdDelete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: portfolioctl delete <resource> <id>")
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	r, err := c.lookup(args[0])
	if err != nil {
		return err
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	return r.remove(ctx, id)
}

func (c *cli) cmdShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: portfolioctl show about|contact|experience <id>")
	}
	if args[0] == "experience" {
		if len(args) != 2 {
			return errors.New("usage: portfolioctl show experience <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.showExperience(ctx, id)
	}

	rec, ok := c.records()[args[0]]
	if !ok {
		return fmt.Errorf("unknown record %q (one of: about, contact)", args[0])
	}
	return rec.show(ctx, c.out)
}

func (c *cli) showExperience(ctx context.Context, id int64) error {
	detail := editor.NewExperienceDetailFor(c.api, id, c.editorOptions())
	if err := detail.Load(ctx); err != nil {
		return err
	}
	exp := detail.Experience()

	cyan := color.New(color.FgCyan)
	fmt.Fprintln(c.out)
	cyan.Fprintf(c.out, "  %s at %s\n", exp.Role, exp.Company)
	fmt.Fprintf(c.out, "  %s to %s\n", exp.StartDate, until(exp.EndDate))
	if exp.Summary != "" {
		fmt.Fprintf(c.out, "  %s\n", exp.Summary)
	}
	fmt.Fprintln(c.out)
	return skillTable(detail).list(ctx, c.out)
}

func (c *cli) cmdSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: portfolioctl set about|contact field=value...")
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	rec, ok := c.records()[args[0]]
	if !ok {
		return fmt.Errorf("unknown record %q (one of: about, contact)", args[0])
	}
	fields, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	if err := rec.set(ctx, fields); err != nil {
		return err
	}
	c.success("Saved.")
	return nil
}

func (c *cli) cmdSkills(ctx context.Context, args []string) error {
	const usage = "usage: portfolioctl skills add|edit|delete <exp-id> ..."
	if len(args) < 2 {
		return errors.New(usage)
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	expID, err := parseID(args[1])
	if err != nil {
		return err
	}
	skills := skillTable(editor.NewExperienceDetailFor(c.api, expID, c.editorOptions()))

	switch args[0] {
	case "add":
		fields, err := parseAssignments(args[2:])
		if err != nil {
			return err
		}
		if err := skills.add(ctx, fields); err != nil {
			return err
		}
		c.success("Created.")
		return nil
	case "edit", "delete":
		if len(args) < 3 {
			return errors.New(usage)
		}
		id, err := parseID(args[2])
		if err != nil {
			return err
		}
		if args[0] == "delete" {
			return skills.remove(ctx, id)
		}
		fields, err := parseAssignments(args[3:])
		if err != nil {
			return err
		}
		if err := skills.edit(ctx, id, fields); err != nil {
			return err
		}
		c.success("Saved.")
		return nil
	default:
		return errors.New(usage)
	}
}

func (c *cli) cmdUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: portfolioctl upload <file>")
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := c.api.Upload(ctx, filepath.Base(args[0]), f)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, url)
	return nil
}

func (c *cli) cmdSeed(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: portfolioctl seed <file.yaml>")
	}
	if err := c.requireAdmin(); err != nil {
		return err
	}

	summary, err := c.seed(ctx, args[0])
	for _, s := range summary {
		fmt.Fprintf(c.out, "  %-18s %d\n", s.section, s.count)
	}
	if err != nil {
		return err
	}
	c.success("Seeded.")
	return nil
}
