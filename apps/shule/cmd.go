package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/trezcool/shule/client"
	"github.com/trezcool/shule/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	client *client.Client
	store  session.Store
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -username USERNAME         - login; the password is prompted next")
	fmt.Fprintln(cli.out, "  logout                           - clear the local session")
	fmt.Fprintln(cli.out, "  whoami                           - show the stored session")
	fmt.Fprintln(cli.out, "  home                             - show the launch route for the stored session")
	fmt.Fprintln(cli.out, "  attendance [-month YYYY-MM]      - show the attendance calendar")
	fmt.Fprintln(cli.out, "  fees                             - list fee invoices")
	fmt.Fprintln(cli.out, "  chats                            - list chat threads")
	fmt.Fprintln(cli.out, "  stories                          - list the story feed")
	fmt.Fprintln(cli.out, "  post-story -file PATH [-caption TEXT] - upload a story")
	fmt.Fprintln(cli.out, "  wipe                             - wipe all local state (recovery)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginUname := loginCmd.String("username", "", "The account's username. The password will be prompted next.")

	attendanceCmd := flag.NewFlagSet("attendance", flag.ExitOnError)
	attendanceMonth := attendanceCmd.String("month", time.Now().UTC().Format("2006-01"), "Month to show, as YYYY-MM.")

	postStoryCmd := flag.NewFlagSet("post-story", flag.ExitOnError)
	postStoryFile := postStoryCmd.String("file", "", "Path of the media file to upload.")
	postStoryCaption := postStoryCmd.String("caption", "", "Optional caption.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(ctx, *loginUname, string(pwd))
	case "logout":
		return cli.client.Logout(ctx)
	case "whoami":
		return cli.whoami()
	case "home":
		fmt.Fprintln(cli.out, cli.client.LaunchRoute())
		return nil
	case "attendance":
		if err := attendanceCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.attendance(ctx, *attendanceMonth)
	case "fees":
		return cli.fees(ctx)
	case "chats":
		return cli.chats(ctx)
	case "stories":
		return cli.stories(ctx)
	case "post-story":
		if err := postStoryCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *postStoryFile == "" {
			postStoryCmd.Usage()
			return errHelp
		}
		return cli.postStory(ctx, *postStoryFile, *postStoryCaption)
	case "wipe":
		return cli.store.Clear()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(ctx context.Context, uname, pwd string) error {
	sess, err := cli.client.Login(ctx, session.Credentials{Username: uname, Password: pwd})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Karibu %s! -> %s\n", sess.Profile.Name, sess.LaunchRoute())
	return nil
}

func (cli *commandLine) whoami() error {
	sess := cli.client.Session()
	if !sess.Complete() {
		fmt.Fprintln(cli.out, "not logged in")
		return nil
	}
	fmt.Fprintf(cli.out, "%s (%s)\n", sess.Profile.Name, sess.Role)
	return nil
}

func (cli *commandLine) attendance(ctx context.Context, month string) error {
	days, err := cli.client.Attendance(ctx, month)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	for _, day := range days {
		fmt.Fprintf(w, "%s\t%s\t%s\n", day.Date, day.Status, day.Remark.String)
	}
	return w.Flush()
}

func (cli *commandLine) fees(ctx context.Context) error {
	fees, err := cli.client.Fees(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	for _, fee := range fees {
		status := "due " + fee.DueDate
		if fee.Paid {
			status = "paid " + fee.PaidAt.String
		}
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", fee.Title, fee.Amount, status)
	}
	return w.Flush()
}

func (cli *commandLine) chats(ctx context.Context) error {
	threads, err := cli.client.Chats(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	for _, th := range threads {
		unread := ""
		if th.Unread > 0 {
			unread = fmt.Sprintf("(%d)", th.Unread)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", th.Name, th.LastMessage.String, unread)
	}
	return w.Flush()
}

func (cli *commandLine) stories(ctx context.Context) error {
	stories, err := cli.client.Stories(ctx)
	if err != nil {
		return err
	}
	for _, story := range stories {
		fmt.Fprintf(cli.out, "%s - %s (%s)\n", story.PostedBy, story.Caption, story.MediaURL)
	}
	return nil
}

func (cli *commandLine) postStory(ctx context.Context, path, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	story, err := cli.client.UploadStory(ctx, caption, path, file)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "posted story #%d\n", story.ID)
	return nil
}
