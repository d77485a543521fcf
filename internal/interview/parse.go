package interview

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jywlabs/specgen/internal/catalog"
)

// ClearToken clears the stored answer when entered on its own.
const ClearToken = "-"

// ParseAnswer converts raw input into a value for q. Selects accept an
// option number or the option text; multiselects accept a comma list of
// either. ClearToken yields the unset value.
func ParseAnswer(q catalog.Question, raw string) (catalog.Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == ClearToken {
		return catalog.Value{}, nil
	}

	switch q.Type {
	case catalog.TypeSelect:
		opt, err := matchOption(q.Options, raw)
		if err != nil {
			return catalog.Value{}, err
		}
		return catalog.Text(opt), nil

	case catalog.TypeMultiselect:
		var items []string
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			opt, err := matchOption(q.Options, part)
			if err != nil {
				return catalog.Value{}, err
			}
			if !slices.Contains(items, opt) {
				items = append(items, opt)
			}
		}
		return catalog.List(items...), nil

	case catalog.TypeBoolean:
		switch strings.ToLower(raw) {
		case "y", "yes", "true":
			return catalog.Bool(true), nil
		case "n", "no", "false":
			return catalog.Bool(false), nil
		}
		return catalog.Value{}, fmt.Errorf("answer y or n")

	default:
		return catalog.Text(raw), nil
	}
}

func matchOption(options []string, raw string) (string, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choose a number between 1 and %d", len(options))
		}
		return options[n-1], nil
	}
	for _, opt := range options {
		if strings.EqualFold(opt, raw) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unknown option %q", raw)
}
