// Package core defines the values shared by the command builder, the output
// parsers and the renderers: tag selectors, frame maps and the parsed form of
// kid3-cli's tag listing.
package core

import "strconv"

// TagNumber selects which tag of a file a command operates on.
type TagNumber int

const (
	// TagDefault leaves the choice to kid3-cli and is rendered as TagBoth.
	TagDefault TagNumber = 0
	Tag1       TagNumber = 1
	Tag2       TagNumber = 2
	// TagBoth reads from tag 2 if available, else tag 1; writes go to tag 2.
	TagBoth TagNumber = 12
)

// String renders the selector the way kid3-cli expects it on the command line.
func (n TagNumber) String() string {
	if n == TagDefault {
		return strconv.Itoa(int(TagBoth))
	}
	return strconv.Itoa(int(n))
}

// Frames maps a frame name (e.g. "Title") to its value.
type Frames map[string]string

// FileInfo holds the technical details from the "File:" header line.
type FileInfo struct {
	Tag       string `json:"tag,omitempty"`       // format label, e.g. "MPEG 1 Layer 3 192 kbps"
	Frequency string `json:"frequency,omitempty"` // sample rate as printed, e.g. "44100 Hz"
	Channels  string `json:"channels,omitempty"`  // e.g. "Joint Stereo"
	Duration  string `json:"duration,omitempty"`  // e.g. "3:45"
}

// TagOutput is the parsed result of a "get" listing.
type TagOutput struct {
	File FileInfo `json:"file"`
	// Tags is keyed by tag slot ("1", "2").
	Tags map[string]Frames `json:"tags"`
	// Labels holds the description printed after "Tag <n>:", e.g. "ID3v2.3.0".
	Labels map[string]string `json:"labels,omitempty"`
}

// Preferred returns the frames of tag 2 if the output has a tag 2 section,
// otherwise the frames of tag 1. It returns nil when neither is present.
func (o TagOutput) Preferred() Frames {
	if f, ok := o.Tags["2"]; ok {
		return f
	}
	return o.Tags["1"]
}

// TagReport pairs a file with the frames read from it.
type TagReport struct {
	Path   string `json:"path"`
	Frames Frames `json:"frames"`
}
