package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/uttrack/internal/links"
)

var linksCmd = &cobra.Command{
	Use:     "links",
	Aliases: []string{"link", "bookmarks"},
	Short:   "Manage personal bookmarks",
	Long: `Manage the personal bookmark list: course portals, e-learning pages,
exam registration and anything else worth keeping one command away.

Addresses without a scheme get https:// prepended.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLinksList(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var linksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLinksList(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var linksAddCmd = &cobra.Command{
	Use:   "add <url> [label...]",
	Short: "Add a bookmark",
	Long: `Add a bookmark. The label defaults to the address.

Examples:
  uttrack links add elearning.ut.ac.id "E-Learning"
  uttrack links add https://aksi.ut.ac.id`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLinksAdd(args[0], strings.Join(args[1:], " ")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var linksRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Remove a bookmark",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runLinksRemove(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

var linksWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the bookmark list whenever it changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runLinksWatch(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
	linksCmd.AddCommand(linksListCmd, linksAddCmd, linksRmCmd, linksWatchCmd)
}

func runLinksList() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	list, err := a.links.Load()
	if err != nil {
		return fmt.Errorf("error loading bookmarks: %w", err)
	}
	a.printLinks(list)
	return nil
}

func runLinksAdd(rawURL, label string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.writable(); err != nil {
		return err
	}
	l, err := a.links.Add(label, rawURL)
	if err != nil {
		return err
	}
	a.printf("Added bookmark %s: %s\n", l.ID, l.DisplayLabel())
	return nil
}

func runLinksRemove(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.writable(); err != nil {
		return err
	}
	removed, err := a.links.Remove(strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no bookmark with id %q", id)
	}
	a.printf("Removed bookmark %s\n", id)
	return nil
}

func runLinksWatch(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	list, err := a.links.Load()
	if err != nil {
		return fmt.Errorf("error loading bookmarks: %w", err)
	}
	a.printLinks(list)

	return a.kv.Watch(ctx, links.Key, func(data []byte) {
		fmt.Fprintln(stdout)
		a.printLinks(a.links.Decode(data))
	})
}

func (a *app) printLinks(list []links.Link) {
	if len(list) == 0 {
		fmt.Fprintln(stdout, "No bookmarks yet. Add one with `uttrack links add <url>`.")
		return
	}

	dim := lipgloss.NewStyle()
	label := lipgloss.NewStyle()
	if a.cfg.Color {
		dim = dim.Foreground(lipgloss.Color("8"))
		label = label.Bold(true)
	}
	for _, l := range list {
		fmt.Fprintf(stdout, "%s  %s\n    %s\n", dim.Render(l.ID), label.Render(l.DisplayLabel()), l.URL)
		if a.cfg.Verbose {
			fmt.Fprintf(stdout, "    %s\n", dim.Render("icon: "+links.FaviconURL(l.URL)))
		}
	}
}
