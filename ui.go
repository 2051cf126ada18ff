package main

import (
	"fmt"

	ui "github.com/gizak/termui"

	"github.com/avahowell/randstr/strgen"
)

// histCounts draws `samples` characters from the pool and counts how
// often each pool index was selected.
func histCounts(pool []rune, samples int) ([]int, error) {
	index := make(map[rune]int, len(pool))
	for i, c := range pool {
		index[c] = i
	}

	counts := make([]int, len(pool))
	const chunk = 1 << 16
	for remaining := samples; remaining > 0; {
		n := chunk
		if remaining < n {
			n = remaining
		}
		s, err := strgen.Generate(pool, n)
		if err != nil {
			return nil, err
		}
		for _, c := range s {
			counts[index[c]]++
		}
		remaining -= n
	}
	return counts, nil
}

// runHist displays a bar chart of draw counts per pool character. The
// chart makes the bounded bias of the byte-to-index mapping visible:
// when 256 does not divide evenly across the pool, the first and last
// bars sit slightly below the others.
func runHist(pool []rune, samples int) error {
	if len(pool) == 0 {
		return fmt.Errorf("pool is empty, nothing to sample")
	}

	counts, err := histCounts(pool, samples)
	if err != nil {
		return err
	}

	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	labels := make([]string, len(pool))
	for i, c := range pool {
		labels[i] = string(c)
	}

	bc := ui.NewBarChart()
	bc.BorderLabel = fmt.Sprintf("draws per pool character (%v samples)", samples)
	bc.Data = counts
	bc.DataLabels = labels
	bc.BarWidth = 3
	bc.BarGap = 1
	bc.BarColor = ui.ColorYellow
	bc.Height = ui.TermHeight() - 2

	// truncate pools wider than the terminal
	maxBars := ui.TermWidth() / (bc.BarWidth + bc.BarGap)
	if maxBars > 0 && maxBars < len(counts) {
		bc.Data = counts[:maxBars]
		bc.DataLabels = labels[:maxBars]
		bc.BorderLabel += fmt.Sprintf(" (first %v of %v characters)", maxBars, len(pool))
	}

	quitButton := ui.NewPar("[ q ](fg-black,bg-white) Quit")
	quitButton.Height = 1
	quitButton.Border = false

	ui.Body.AddRows(
		ui.NewRow(ui.NewCol(12, 0, bc)),
		ui.NewRow(ui.NewCol(12, 0, quitButton)),
	)

	ui.Handle("/sys/kbd/q", func(ui.Event) {
		ui.StopLoop()
	})
	ui.Handle("/sys/kbd/C-c", func(ui.Event) {
		ui.StopLoop()
	})
	ui.Handle("/sys/wnd/resize", func(ui.Event) {
		if ui.TermWidth() > 20 {
			ui.Body.Width = ui.TermWidth()
		}
		if ui.TermHeight() > 8 {
			bc.Height = ui.TermHeight() - 2
		}
		ui.Body.Align()
		ui.Clear()
		ui.Render(ui.Body)
	})

	ui.Body.Align()
	ui.Clear()
	ui.Render(ui.Body)
	ui.Loop()

	return nil
}
