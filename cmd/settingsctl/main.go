// settingsctl inspects and edits per-group AFK settings directly in the
// Badger store. Run it while the main process is stopped, or rely on
// BypassLockGuard for read-only listing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"voice-lab/domain"
	"voice-lab/repositories"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	// SETTINGSCTL_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"SETTINGSCTL_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	dbPath := flag.String("db", cfg.BadgerFilepath, "Path to badger DB")
	list := flag.Bool("list", false, "List configured groups")
	group := flag.String("group", "", "Group id to edit")
	remove := flag.Bool("delete", false, "Delete the group's settings")
	enable := flag.Bool("enable", true, "Enable AFK tracking for the group")
	timeout := flag.Float64("timeout", 600, "Removal deadline in seconds")
	warning := flag.Float64("warning", 60, "Warning lead time in seconds, before the removal deadline")
	warnChannel := flag.String("warning-channel", "", "Channel id for warning messages")
	exempt := flag.String("exempt", "", "Comma-separated exempt role ids")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatalf("Error while opening Badger: %v", err)
	}
	defer db.Close()

	repo := repositories.NewSettingsRepository(db, logs.GetLoggerFromString("WARN"))

	switch {
	case *list:
		listGroups(repo, cfg.Colours)
	case *group != "" && *remove:
		if err := repo.DeleteGroupSettings(*group); err != nil {
			log.Fatalf("Delete failed: %v", err)
		}
		fmt.Printf("Deleted settings for %s\n", *group)
	case *group != "":
		settings := domain.GroupSettings{
			Enabled:          *enable,
			TimeoutSeconds:   *timeout,
			WarningSeconds:   *warning,
			WarningChannelID: *warnChannel,
			ExemptRoleIDs:    splitIDs(*exempt),
		}
		if err := repo.StoreGroupSettings(*group, settings); err != nil {
			log.Fatalf("Store failed: %v", err)
		}
		fmt.Printf("Stored settings for %s\n", *group)
	default:
		flag.Usage()
	}
}

func listGroups(repo repositories.SettingsRepository, colours bool) {
	configured, err := repo.ListGroupSettings()
	if err != nil {
		log.Fatalf("List failed: %v", err)
	}

	header := fmt.Sprintf("%d configured group(s)", len(configured))
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Group", "Enabled", "Timeout (s)", "Warning (s)", "Warning Channel", "Exempt Roles"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for groupID, s := range configured {
		table.Append([]string{
			groupID,
			fmt.Sprintf("%t", s.Enabled),
			fmt.Sprintf("%g", s.TimeoutSeconds),
			fmt.Sprintf("%g", s.WarningSeconds),
			s.WarningChannelID,
			strings.Join(s.ExemptRoleIDs, ","),
		})
	}
	table.Render()
}

func splitIDs(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
