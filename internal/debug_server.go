package internal

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/olekukonko/tablewriter"

	"voice-lab/afk"
	"voice-lab/domain"
)

type EntriesProvider func() []afk.EntryInfo
type SettingsProvider func() (map[string]domain.GroupSettings, error)
type StatsProvider func() map[string]any

// StartDebugServer exposes a plain-text /inspect endpoint with the currently
// tracked pairs, the configured groups, and runtime counters. Diagnostic
// only; it listens on all interfaces so it is reachable from the host when
// the process runs in a container.
func StartDebugServer(port int, entries EntriesProvider, settings SettingsProvider, stats StatsProvider) {
	mux := http.NewServeMux()

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if stats != nil {
			keys := make([]string, 0)
			values := stats()
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(w, "%s: %v\n", k, values[k])
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, "TRACKED PAIRS")
		tracked := tablewriter.NewWriter(w)
		tracked.SetHeader([]string{"Group", "Participant", "Channel"})
		tracked.SetAutoWrapText(false)
		tracked.SetBorder(false)
		for _, e := range entries() {
			tracked.Append([]string{e.GroupID, e.ParticipantID, e.ChannelID})
		}
		tracked.Render()
		fmt.Fprintln(w)

		fmt.Fprintln(w, "GROUP SETTINGS")
		configured, err := settings()
		if err != nil {
			fmt.Fprintf(w, "settings unavailable: %v\n", err)
			return
		}
		table := tablewriter.NewWriter(w)
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
				fmt.Sprintf("%d", len(s.ExemptRoleIDs)),
			})
		}
		table.Render()
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}
