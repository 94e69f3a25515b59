/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package main

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	spfcbr "github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"github.com/nabbar/flowcore/flowlog"
)

// config is the root command's persistent flags, bound through viper so
// FLOWCOREDEMO_* environment variables and a config file both work.
type config struct {
	configFile string
	logLevel   string
	httpAddr   string
	eventLog   string
}

var cfg config

func defaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".flowcoredemo.yaml"
	}
	return filepath.Clean(home + string(filepath.Separator) + ".flowcoredemo.yaml")
}

func newRootCommand() *spfcbr.Command {
	root := &spfcbr.Command{
		Use:   "flowcoredemo",
		Short: "Run the flowcore engine's built-in demo graphs",
		Long:  "flowcoredemo drives the flowcore scheduler through its pipe, fanout, and fanin demo graphs, exercising the same process/port/connection primitives a real graph would use.",
	}

	root.PersistentFlags().StringVarP(&cfg.configFile, "config", "c", "", "config file (default "+defaultConfigPath()+")")
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&cfg.httpAddr, "http", "", "optional address to serve introspection on, e.g. :8080")
	root.PersistentFlags().StringVar(&cfg.eventLog, "event-log", "", "optional file to append a CBOR-encoded framework event trail to")

	_ = viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("http", root.PersistentFlags().Lookup("http"))
	_ = viper.BindPFlag("event-log", root.PersistentFlags().Lookup("event-log"))
	viper.SetEnvPrefix("flowcoredemo")
	viper.AutomaticEnv()

	spfcbr.OnInitialize(initConfig)

	root.AddCommand(newRunCommand())
	root.AddCommand(newVersionCommand())
	root.AddCommand(newMonitorCommand())

	return root
}

func initConfig() {
	if cfg.configFile != "" {
		viper.SetConfigFile(cfg.configFile)
	} else {
		viper.SetConfigFile(defaultConfigPath())
	}
	// A missing config file is not an error: every setting has a flag
	// default, so the file is an optional override.
	_ = viper.ReadInConfig()

	if lvl := viper.GetString("log-level"); lvl != "" {
		cfg.logLevel = lvl
	}
	if addr := viper.GetString("http"); addr != "" && cfg.httpAddr == "" {
		cfg.httpAddr = addr
	}
	if p := viper.GetString("event-log"); p != "" && cfg.eventLog == "" {
		cfg.eventLog = p
	}
}

// buildLogger parses cfg.logLevel into a flowlog.Logger and bridges
// jwalterweatherman (the library cobra/viper log through) onto it.
func buildLogger() *flowlog.Logger {
	lvl, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log := flowlog.New(lvl)
	log.SetSPF13Level(jww.NewNotepad(jww.LevelInfo, jww.LevelInfo, nil, nil, "", 0))
	return log
}
