// Package ui provides a secure fzf launcher abstraction. Items are
// piped to fzf via stdin as plain text, never through shell-interpreted
// preview strings.
package ui

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Select presents items via fzf and returns the chosen index.
func Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return -1, fmt.Errorf("fzf not found in PATH: %w", err)
	}

	// Number the items so the index survives fuzzy reordering.
	var input strings.Builder
	for i, item := range items {
		fmt.Fprintf(&input, "%d\t%s\n", i, item)
	}

	cmd := exec.Command(fzfPath,
		"--prompt", prompt+" > ",
		"--height", "40%",
		"--reverse",
		"--with-nth", "2..",
		"--delimiter", "\t",
		"--no-multi",
		"--cycle",
	)
	cmd.Stdin = strings.NewReader(input.String())
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 130 {
			return -1, fmt.Errorf("selection cancelled")
		}
		return -1, fmt.Errorf("fzf failed: %w", err)
	}

	fields := strings.SplitN(strings.TrimSpace(stdout.String()), "\t", 2)
	idx, err := strconv.Atoi(fields[0])
	if err != nil || idx < 0 || idx >= len(items) {
		return -1, fmt.Errorf("unexpected fzf output %q", stdout.String())
	}

	return idx, nil
}

// Input prompts for free-text input via fzf's --print-query.
func Input(prompt string) (string, error) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return "", fmt.Errorf("fzf not found in PATH: %w", err)
	}

	cmd := exec.Command(fzfPath,
		"--prompt", prompt+" > ",
		"--height", "10%",
		"--reverse",
		"--print-query",
		"--no-info",
	)
	cmd.Stdin = strings.NewReader("")
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	// fzf exits nonzero for --print-query with no match; that is the
	// normal path here.
	_ = cmd.Run()

	query := strings.TrimSpace(strings.SplitN(stdout.String(), "\n", 2)[0])
	if query == "" {
		return "", fmt.Errorf("no input provided")
	}

	return query, nil
}
