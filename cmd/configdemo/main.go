// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// configdemo builds small INI and CFG files programmatically, saves them,
// reloads them, and prints the round-tripped contents.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yourbase/configfile/cfg"
	"github.com/yourbase/configfile/ini"
	"github.com/yourbase/configfile/linemodel"
	"github.com/yourbase/configfile/value"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "configdemo:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string
	root := &cobra.Command{
		Use:           "configdemo",
		Short:         "Demonstrate the configfile library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", ".", "directory to write demo files into")
	root.AddCommand(newIniCmd(&dir), newCfgCmd(&dir))
	return root
}

func newIniCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ini",
		Short: "Write and read back a flat demo.ini file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := filepath.Join(*dir, "demo.ini")

			w := ini.New(nil)
			w.Insert("app_name", value.String("ConfigParserDemo"))
			w.Insert("version", value.Float(1.0))
			w.Insert("debug_mode", value.Bool(true))
			w.Insert("max_connections", value.Int(100))
			w.Save(ctx, path)
			if code := w.Err(); code != linemodel.NoError {
				return fmt.Errorf("write %s: %v", path, code)
			}
			cmd.Printf("INI file created: %s\n", path)

			r := ini.Open(ctx, path, nil)
			if code := r.Err(); code != linemodel.NoError {
				return fmt.Errorf("read %s: %v", path, code)
			}
			for _, key := range r.Keys() {
				cmd.Printf("%s = %s\n", key, r.At(key))
			}
			return nil
		},
	}
}

func newCfgCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cfg",
		Short: "Write and read back a sectioned demo.cfg file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := filepath.Join(*dir, "demo.cfg")

			w := cfg.New(nil)
			w.AddSection("AppInfo")
			appInfo, err := w.Section("AppInfo")
			if err != nil {
				return err
			}
			appInfo.At("name").SetString("ConfigParserDemo")
			appInfo.At("version").SetFloat(1.0)
			w.AddSection("Settings")
			settings, err := w.Section("Settings")
			if err != nil {
				return err
			}
			settings.At("debug_mode").SetBool(true)
			settings.At("max_connections").SetInt(100)
			w.Save(ctx, path)
			if code := w.Err(); code != linemodel.NoError {
				return fmt.Errorf("write %s: %v", path, code)
			}
			cmd.Printf("CFG file created: %s\n", path)

			r := cfg.Open(ctx, path, nil)
			if code := r.Err(); code != linemodel.NoError {
				return fmt.Errorf("read %s: %v", path, code)
			}
			for _, name := range r.Sections() {
				sect, err := r.Section(name)
				if err != nil {
					return err
				}
				cmd.Printf("[%s]\n", name)
				for _, key := range sect.Keys() {
					cmd.Printf("%s = %s\n", key, sect.At(key))
				}
				cmd.Println()
			}
			return nil
		},
	}
}
