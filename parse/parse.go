// Package parse turns kid3-cli's text output into values. The parsers are
// lenient: lines that match none of the expected shapes are skipped, since
// kid3-cli may print incidental lines between the ones of interest.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sonnes/kid3/core"
)

// ErrUnparseable is returned when output lacks the shape a parser requires.
var ErrUnparseable = errors.New("unparseable kid3-cli output")

// fileInfoRE matches "File: <label> <rate> Hz <channels> <duration>".
var fileInfoRE = regexp.MustCompile(`File:\s(.*)\s([0-9]{2,}\sHz)\s(.*)\s([0-9:]{4,})`)

// tagHeaderRE matches "Tag <n>: <description>".
var tagHeaderRE = regexp.MustCompile(`Tag\s([0-9]+):\s(.*)`)

// frameRE matches an indented "<name>  <value>" line. The name may contain
// single spaces; two or more spaces separate it from the value.
var frameRE = regexp.MustCompile(`^ {2}(\S+(?:\s\S+)*) {2,}(.+)`)

// listingRE matches an "ls" line: the selected, modified, tag 1 and tag 2
// flags, then a space and the file name.
var listingRE = regexp.MustCompile(`^[> ]?[* ][1\- ][2\- ][3\-]? (.*)`)

// tagNumbersRE finds the first whitespace-led run of digits and commas.
var tagNumbersRE = regexp.MustCompile(`\s([0-9,\s]+)`)

// lines splits s on newlines, drops a trailing carriage return from each line
// and discards empty lines.
func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// section is the part of a tag listing the parser is in.
type section int

const (
	sectionNone section = iota
	sectionFile
	sectionTag
)

// TagFrameOutput parses the output of "get all". Header lines (not indented
// by two spaces) start the "File" section or a tag section; indented lines
// are frames and are only recorded inside a tag section. A repeated frame
// name overwrites the earlier value.
func TagFrameOutput(s string) core.TagOutput {
	out := core.TagOutput{
		Tags:   make(map[string]core.Frames),
		Labels: make(map[string]string),
	}

	state := sectionNone
	var slot string

	for _, line := range lines(s) {
		if !strings.HasPrefix(line, "  ") {
			if m := fileInfoRE.FindStringSubmatch(line); m != nil {
				state = sectionFile
				out.File = core.FileInfo{
					Tag:       m[1],
					Frequency: m[2],
					Channels:  m[3],
					Duration:  m[4],
				}
				continue
			}
			if m := tagHeaderRE.FindStringSubmatch(line); m != nil {
				state = sectionTag
				slot = m[1]
				out.Tags[slot] = make(core.Frames)
				out.Labels[slot] = m[2]
			}
			continue
		}

		if state != sectionTag {
			continue
		}
		if m := frameRE.FindStringSubmatch(line); m != nil {
			out.Tags[slot][m[1]] = m[2]
		}
	}

	return out
}

// DirectoryList parses the output of "ls" into file names, in listing order.
func DirectoryList(s string) []string {
	var out []string
	for _, line := range lines(s) {
		if m := listingRE.FindStringSubmatch(line); m != nil {
			out = append(out, m[1])
		}
	}
	return out
}

// TagNumbers extracts the comma-separated tag numbers printed by "tag", e.g.
// "Tag: 1, 2" yields [1 2].
func TagNumbers(s string) ([]int, error) {
	m := tagNumbersRE.FindString(s)
	if m == "" {
		return nil, fmt.Errorf("%w: no tag numbers in %q", ErrUnparseable, s)
	}

	parts := strings.Split(strings.TrimSpace(m), ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: tag number %q", ErrUnparseable, p)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
