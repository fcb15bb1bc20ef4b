package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirenlab/siren/internal/draftfile"
	"github.com/sirenlab/siren/internal/engine"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Fetch the engine's sample incident and save it as a draft file",
		RunE:  runSample,
	}
	cmd.Flags().StringP("out", "o", "sample-incident.toml", "draft file to write (.toml, .yaml, .json)")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")

	client := engine.NewClient(cfg.Engine.Endpoint, time.Duration(cfg.Engine.Timeout)*time.Second)
	doc, err := client.Sample(cmd.Context())
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}

	if err := draftfile.Save(out, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "[*] wrote %s\n", out)
	return nil
}
