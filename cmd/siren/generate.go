package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirenlab/siren/internal/draftfile"
	"github.com/sirenlab/siren/internal/engine"
	"github.com/sirenlab/siren/internal/export"
	"github.com/sirenlab/siren/internal/notify"
	"github.com/sirenlab/siren/internal/preview"
	"github.com/sirenlab/siren/internal/session"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Submit a draft to the report engine and store the artifacts",
		RunE:  runGenerate,
	}
	cmd.Flags().StringP("draft", "d", "", "path to draft file (.toml, .yaml, .json)")
	cmd.Flags().StringP("out", "o", "", "output directory (overrides config)")
	cmd.Flags().Bool("preview", false, "serve the rendered report locally after generation")
	cmd.Flags().Bool("no-browser", false, "do not open the browser for the preview")
	_ = cmd.MarkFlagRequired("draft")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	draftPath, _ := cmd.Flags().GetString("draft")
	outDir, _ := cmd.Flags().GetString("out")
	withPreview, _ := cmd.Flags().GetBool("preview")
	noBrowser, _ := cmd.Flags().GetBool("no-browser")
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	doc, err := draftfile.Load(draftPath)
	if err != nil {
		return err
	}

	client := engine.NewClient(cfg.Engine.Endpoint, time.Duration(cfg.Engine.Timeout)*time.Second)
	sess := session.New(client, &notify.Writer{Out: os.Stderr})
	sess.LoadDocument(*doc)

	artifacts, err := sess.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	paths, err := export.Write(outDir, artifacts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(os.Stderr, "[*] wrote %s\n", p)
	}

	if !withPreview {
		return nil
	}

	srv, err := preview.New()
	if err != nil {
		return err
	}
	if err := srv.SetArtifacts(artifacts); err != nil {
		return err
	}
	addr, err := srv.Start(cfg.Output.Port)
	if err != nil {
		return err
	}
	defer srv.Stop()

	url := "http://" + addr
	fmt.Fprintf(os.Stderr, "[*] preview at %s (Ctrl+C to stop)\n", url)
	if cfg.Output.OpenBrowser && !noBrowser {
		preview.OpenBrowser(url)
	}

	<-cmd.Context().Done()
	return nil
}
