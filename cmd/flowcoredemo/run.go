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
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	spfcbr "github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"

	"github.com/nabbar/flowcore/floweventlog"
	"github.com/nabbar/flowcore/flowhealth"
	"github.com/nabbar/flowcore/flowmetrics"
	"github.com/nabbar/flowcore/process"
)

func newRunCommand() *spfcbr.Command {
	cmd := &spfcbr.Command{
		Use:       "run [pipe|fanout|fanin]",
		Short:     "Run one of the built-in demo graphs to completion",
		Args:      spfcbr.ExactValidArgs(1),
		ValidArgs: []string{"pipe", "fanout", "fanin"},
		RunE: func(_ *spfcbr.Command, args []string) error {
			return runDemo(args[0])
		},
	}
	return cmd
}

func runDemo(graph string) error {
	log := buildLogger()
	reg := prometheus.NewRegistry()
	metrics := flowmetrics.New(reg)

	var stop func()
	if cfg.httpAddr != "" {
		stop = serveIntrospection(cfg.httpAddr, reg)
		defer stop()
	}

	sink, closeSink, err := buildEventSink(metrics)
	if err != nil {
		return err
	}
	defer closeSink()

	progress := mpb.New()
	sched, err := buildGraph(graph, log, metrics, sink, progress)
	if err != nil {
		return err
	}

	log.Info("demo graph starting", graph)
	err = sched.Wait()
	progress.Wait()
	if err != nil {
		log.Error("demo graph failed", err.Error())
		return err
	}
	log.Info("demo graph finished", graph)
	return nil
}

// buildEventSink returns what every demo process reports its events to:
// metrics alone, or metrics fanned out alongside a floweventlog.Recorder
// when --event-log names a file to append a CBOR trail to. The returned
// func closes that file, if one was opened; it is always safe to call.
func buildEventSink(metrics *flowmetrics.Registry) (process.EventSink, func(), error) {
	if cfg.eventLog == "" {
		return metrics, func() {}, nil
	}

	f, err := os.OpenFile(cfg.eventLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening event log: %w", err)
	}

	sink := process.MultiSink{metrics, floweventlog.New(f)}
	return sink, func() { _ = f.Close() }, nil
}

// serveIntrospection starts a gin server exposing /status (a flowhealth
// snapshot) and /metrics (the Prometheus registry) on addr, returning a
// func that shuts it down.
func serveIntrospection(addr string, reg *prometheus.Registry) func() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, flowhealth.Read())
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	srv := &http.Server{Addr: addr, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("introspection server error: %s\n", err.Error())
		}
	}()
	return func() { _ = srv.Close() }
}
