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
	"time"

	tea "github.com/charmbracelet/bubbletea"
	spfcbr "github.com/spf13/cobra"

	"github.com/nabbar/flowcore/flowhealth"
)

func newMonitorCommand() *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "monitor",
		Short: "Show a live terminal dashboard of host resource usage",
		RunE: func(_ *spfcbr.Command, _ []string) error {
			_, err := tea.NewProgram(newMonitorModel()).Run()
			return err
		},
	}
}

type tickMsg time.Time

type monitorModel struct {
	snap flowhealth.Snapshot
}

func newMonitorModel() monitorModel {
	return monitorModel{snap: flowhealth.Read()}
}

func (m monitorModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.snap = flowhealth.Read()
		return m, tick()
	}
	return m, nil
}

func (m monitorModel) View() string {
	return fmt.Sprintf(
		"flowcore host monitor (q to quit)\n\ncpu:    %.1f%%\nmemory: %.1f%% (%d/%d MiB)\n",
		m.snap.CPUPercent, m.snap.MemoryPercent, m.snap.MemoryUsedMiB, m.snap.MemoryTotalMiB,
	)
}
