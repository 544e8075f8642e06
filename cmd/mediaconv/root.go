package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mediaconv/internal/deps"
	"mediaconv/internal/history"
	"mediaconv/internal/logging"
	"mediaconv/internal/menu"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "mediaconv",
		Short:         "Interactive batch media converter",
		Long:          "mediaconv scans a directory for media files and batch-converts them between formats through an interactive terminal menu. All transcoding is delegated to ffmpeg.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runInteractive(cmdCtx *commandContext) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	statuses := deps.CheckBinaries(deps.Requirements(cfg))
	for _, name := range deps.MissingRequired(statuses) {
		fmt.Fprintf(os.Stderr, "warning: %s is not available; conversions will fail until it is installed (see 'mediaconv check')\n", name)
		logger.Warn("required dependency missing", logging.String("dependency", name))
	}

	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: conversion history disabled: %v\n", err)
		logger.Warn("history unavailable", logging.Error(err))
		store = nil
	}
	defer func() { _ = store.Close() }()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := menu.NewSession(cfg, logger, os.Stdin, os.Stdout, store)
	return session.Run(sigCtx)
}
