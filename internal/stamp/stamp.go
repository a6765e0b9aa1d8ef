// Package stamp formats the provenance comment placed at the top of every
// generated artifact.
package stamp

import (
	"strings"
)

// Version identifiers published in headers and in the version symbol.
const (
	VersionName   = "matprop-generator"
	VersionNumber = "1.0.0"
)

// Header is the provenance of one artifact.
type Header struct {
	// File is the artifact path relative to the output directory.
	File string
	// Brief is a one-line summary.
	Brief       string
	Author      string
	Date        string
	Description string
}

// Format renders h as a doxygen-style block comment followed by a blank line.
func Format(h Header) string {
	var sb strings.Builder

	sb.WriteString("/*!\n")
	sb.WriteString(" * \\file   " + h.File + "\n")
	sb.WriteString(" * \\brief  " + h.Brief + "\n")
	sb.WriteString(" *         File generated by " + VersionName + " version " + VersionNumber + "\n")

	if h.Author != "" {
		sb.WriteString(" * \\author " + h.Author + "\n")
	}

	if h.Date != "" {
		sb.WriteString(" * \\date   " + h.Date + "\n")
	}

	if h.Description != "" {
		for _, line := range strings.Split(strings.TrimRight(h.Description, "\n"), "\n") {
			sb.WriteString(strings.TrimRight(" * "+closeSafe(line), " ") + "\n")
		}
	}

	sb.WriteString(" */\n\n")

	return sb.String()
}

// closeSafe keeps free text from terminating the comment early.
func closeSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}
