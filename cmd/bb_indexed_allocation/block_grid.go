package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/buildbarn/bb-indexed-allocation/pkg/allocator"
)

const (
	// gridCellWidth is the number of characters used to print a
	// single block in the text grid.
	gridCellWidth = 12
)

// fileNameFromIndexLabel extracts the name of a file from the label
// attached to its index block.
func fileNameFromIndexLabel(label string) string {
	return strings.TrimSuffix(label, " (Index)")
}

// abbreviate truncates a string to at most length characters. File
// names are user provided, so truncation happens at rune boundaries.
func abbreviate(s string, length int) string {
	if utf8.RuneCountInString(s) > length {
		return string([]rune(s)[:length-3]) + "..."
	}
	return s
}

// writeBlockGrid prints the state of every block as a grid. Free
// blocks show their identifier. Allocated blocks show their label,
// surrounded by brackets for index blocks.
func writeBlockGrid(w io.Writer, states []allocator.BlockState, columns int) error {
	var line strings.Builder
	for i, state := range states {
		var cell string
		switch state.Kind {
		case allocator.BlockKindFree:
			cell = strconv.Itoa(int(state.ID))
		case allocator.BlockKindIndex:
			cell = "[" + abbreviate(fileNameFromIndexLabel(state.Label), gridCellWidth-3) + "]"
		default:
			cell = abbreviate(state.Label, gridCellWidth-1)
		}
		fmt.Fprintf(&line, "%-*s", gridCellWidth, cell)
		if (i+1)%columns == 0 || i == len(states)-1 {
			if _, err := io.WriteString(w, strings.TrimRight(line.String(), " ")+"\n"); err != nil {
				return err
			}
			line.Reset()
		}
	}
	return nil
}

// writeCatalog prints the index and data blocks of every file.
func writeCatalog(w io.Writer, a allocator.Allocator) error {
	for _, name := range a.ListFiles() {
		record, ok := a.Lookup(name)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "File Name: %s\nIndex Block: %d\nData Blocks: %v\n", name, record.IndexBlock, record.DataBlocks); err != nil {
			return err
		}
	}
	return nil
}
