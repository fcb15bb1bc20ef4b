package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirenlab/siren/internal/draftfile"
	"github.com/sirenlab/siren/internal/engine"
	"github.com/sirenlab/siren/internal/report"
	"github.com/sirenlab/siren/internal/timefmt"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a draft file locally without contacting the engine",
		RunE:  runCheck,
	}
	cmd.Flags().StringP("draft", "d", "", "path to draft file (.toml, .yaml, .json)")
	_ = cmd.MarkFlagRequired("draft")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	draftPath, _ := cmd.Flags().GetString("draft")
	doc, err := draftfile.Load(draftPath)
	if err != nil {
		return err
	}

	var issues []string

	for i, ev := range doc.TimelineEvents {
		if err := report.ValidateTimelineEvent(ev); err != nil {
			issues = append(issues, fmt.Sprintf("timeline_events[%d]: %v", i, err))
		}
		if ev.Timestamp != "" && timefmt.ToInterchange(ev.Timestamp) == "" {
			issues = append(issues, fmt.Sprintf("timeline_events[%d]: timestamp %q is not parseable", i, ev.Timestamp))
		}
	}
	for i, ioc := range doc.IOCs {
		if err := report.ValidateIOC(ioc); err != nil {
			issues = append(issues, fmt.Sprintf("iocs[%d]: %v", i, err))
		}
		if ioc.Type != "" && !ioc.Type.Valid() {
			issues = append(issues, fmt.Sprintf("iocs[%d]: unknown type %q", i, ioc.Type))
		}
	}
	for i, sys := range doc.AffectedSystems {
		if err := report.ValidateAffectedSystem(sys); err != nil {
			issues = append(issues, fmt.Sprintf("affected_systems[%d]: %v", i, err))
		}
	}
	for i, rec := range doc.Recommendations {
		if err := report.ValidateRecommendation(rec); err != nil {
			issues = append(issues, fmt.Sprintf("recommendations[%d]: %v", i, err))
		}
	}

	// Same title/analyst gate a generation run would apply.
	d := report.NewDraft()
	d.Load(*doc)
	if _, err := engine.BuildRequest(d); err != nil {
		issues = append(issues, err.Error())
	}

	if len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "[!] %s\n", issue)
		}
		return fmt.Errorf("draft has %d issue(s)", len(issues))
	}

	fmt.Fprintf(os.Stderr, "[*] draft is valid\n")
	return nil
}
