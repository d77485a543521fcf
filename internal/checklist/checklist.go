package checklist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	pending = "- [ ] "
	done    = "- [x] "
)

// Item is one checkbox line of an exported spec.
type Item struct {
	Text string // full text including any continuation lines
	Line int    // 1-based line number where the item starts
	Done bool
}

// Parse reads markdown and extracts every checkbox item, pending or done.
// Indented lines directly after an item continue its text.
func Parse(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	lineNum := 0

	var current *Item
	flush := func() {
		if current != nil {
			items = append(items, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if text, ok := cutCheckbox(line); ok {
			flush()
			current = &Item{
				Text: text,
				Line: lineNum,
				Done: !strings.HasPrefix(line, pending),
			}
			continue
		}

		if current != nil && len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			current.Text += "\n" + strings.TrimLeft(line, " \t")
			continue
		}

		flush()
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func cutCheckbox(line string) (string, bool) {
	for _, prefix := range []string{pending, done, "- [X] "} {
		if text, ok := strings.CutPrefix(line, prefix); ok {
			return text, true
		}
	}
	return "", false
}

// Progress counts finished and total items.
func Progress(items []Item) (finished, total int) {
	for _, it := range items {
		if it.Done {
			finished++
		}
	}
	return finished, len(items)
}

// MarkDoneContent returns content with the pending item starting at
// lineNumber checked off. Every other line is preserved.
func MarkDoneContent(r io.Reader, lineNumber int) ([]byte, error) {
	if lineNumber < 1 {
		return nil, fmt.Errorf("invalid line number: %d (must be >= 1)", lineNumber)
	}

	var result bytes.Buffer
	scanner := bufio.NewScanner(r)
	currentLine := 0

	for scanner.Scan() {
		currentLine++
		line := scanner.Text()

		if currentLine == lineNumber {
			text, ok := strings.CutPrefix(line, pending)
			if !ok {
				return nil, fmt.Errorf("line %d is not a pending item (expected '- [ ]')", lineNumber)
			}
			line = done + text
		}

		result.WriteString(line)
		result.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if currentLine == 0 {
		return nil, fmt.Errorf("file is empty")
	}
	if lineNumber > currentLine {
		return nil, fmt.Errorf("line number %d exceeds file length (%d lines)", lineNumber, currentLine)
	}

	return result.Bytes(), nil
}

// MarkDone checks off the n-th item (1-based) of the file at path.
func MarkDone(path string, n int) (Item, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Item{}, fmt.Errorf("failed to read file: %w", err)
	}

	items, err := Parse(bytes.NewReader(content))
	if err != nil {
		return Item{}, err
	}
	if n < 1 || n > len(items) {
		return Item{}, fmt.Errorf("item %d out of range (1-%d)", n, len(items))
	}
	item := items[n-1]
	if item.Done {
		return item, nil
	}

	updated, err := MarkDoneContent(bytes.NewReader(content), item.Line)
	if err != nil {
		return Item{}, err
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		return Item{}, fmt.Errorf("failed to write file: %w", err)
	}

	item.Done = true
	return item, nil
}
