package builder

import (
	"fmt"
	"strings"

	"github.com/sonnes/kid3/core"
)

// RenameMode selects what RenameDir does with the formatted directory names.
type RenameMode string

const (
	RenameCreate RenameMode = "create"
	RenameRename RenameMode = "rename"
	RenameDryRun RenameMode = "dryrun"
)

// PlayCommand controls audio playback once it has been started.
type PlayCommand string

const (
	PlayStart    PlayCommand = ""
	PlayPause    PlayCommand = "pause"
	PlayStop     PlayCommand = "stop"
	PlayPrevious PlayCommand = "previous"
	PlayNext     PlayCommand = "next"
)

// quote wraps an argument in single quotes, escaping backslashes and single
// quotes so kid3-cli's argument splitter keeps it as one token.
func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

// Help displays help about command, or about all commands if command is empty.
func (b *Builder) Help(command string) *Builder {
	if command == "" {
		return b.add("help")
	}
	return b.add("help " + command)
}

// Timeout overrides the per-command timeout: "default", "off" or a number of
// milliseconds. An empty value resets to "default".
func (b *Builder) Timeout(value string) *Builder {
	if value == "" {
		value = "default"
	}
	return b.add("timeout " + quote(value))
}

// Exit leaves the shell. force is required if there are unsaved modifications.
func (b *Builder) Exit(force bool) *Builder {
	if force {
		return b.add("exit force")
	}
	return b.add("exit")
}

// Cd changes the current directory. One trailing path separator is removed.
// An empty directory changes to the home directory.
func (b *Builder) Cd(directory string) *Builder {
	if n := len(directory); n > 1 && (directory[n-1] == '/' || directory[n-1] == '\\') {
		directory = directory[:n-1]
	}
	if directory == "" {
		return b.add("cd")
	}
	return b.add("cd " + quote(directory))
}

// Pwd prints the current working directory.
func (b *Builder) Pwd() *Builder {
	return b.add("pwd")
}

// Ls lists the current directory. Each name is preceded by four status
// characters: '>' selected, '*' modified, '1' has tag 1, '2' has tag 2.
func (b *Builder) Ls() *Builder {
	return b.add("ls")
}

// Save writes the pending changes.
func (b *Builder) Save() *Builder {
	return b.add("save")
}

// Select changes the file selection. pattern is "all", "none", "first",
// "previous", "next" or a file name, which may contain wildcards.
func (b *Builder) Select(pattern string) *Builder {
	return b.add("select " + quote(pattern))
}

// SelectTag sets the default tag numbers used by later commands.
func (b *Builder) SelectTag(n core.TagNumber) *Builder {
	return b.add("tag " + n.String())
}

// TagInfo displays the current default tag numbers.
func (b *Builder) TagInfo() *Builder {
	return b.add("tag")
}

// Get reads the value of a frame, or lists all frames when column is empty or
// "all".
func (b *Builder) Get(column string, tag core.TagNumber) *Builder {
	if column == "" {
		column = "all"
	}
	return b.add(fmt.Sprintf("get %s %s", quote(column), tag))
}

// GetPicture saves the contents of the picture frame to path.
func (b *Builder) GetPicture(path string) *Builder {
	return b.add("get picture:" + quote(path))
}

// GetLyrics saves the synchronized lyrics to an LRC file at path.
func (b *Builder) GetLyrics(path string) *Builder {
	return b.add("get SYLT:" + quote(path))
}

// Set sets the value of a frame.
func (b *Builder) Set(name, value string, tag core.TagNumber) *Builder {
	return b.add(fmt.Sprintf("set %s %s %s", quote(name), quote(value), tag))
}

// SetPicture sets the picture frame from the image at path. An empty
// description defaults to "Cover".
func (b *Builder) SetPicture(path, description string) *Builder {
	if description == "" {
		description = "Cover"
	}
	return b.add(fmt.Sprintf("set picture:%s %s", quote(path), quote(description)))
}

// SetLyrics sets synchronized lyrics from the LRC file at path.
func (b *Builder) SetLyrics(path, description string) *Builder {
	return b.add(fmt.Sprintf("set SYLT:%s %s", quote(path), quote(description)))
}

// Revert discards the modifications of the selected files (all files if none
// is selected).
func (b *Builder) Revert() *Builder {
	return b.add("revert")
}

// Import reads tags from file ("clipboard" for the clipboard, "tags" for
// other tags) in the named import format, e.g. "CSV unquoted".
func (b *Builder) Import(file, format string, tag core.TagNumber) *Builder {
	return b.add(fmt.Sprintf("import %s %s %s", quote(file), quote(format), tag))
}

// AutoImport runs a batch import with the given profile, "All" if empty.
func (b *Builder) AutoImport(profile string, tag core.TagNumber) *Builder {
	if profile == "" {
		profile = "All"
	}
	return b.add(fmt.Sprintf("autoimport %s %s", quote(profile), tag))
}

// AlbumArt downloads a picture from url and sets it as album artwork. With all
// set, it is applied to every file in the directory.
func (b *Builder) AlbumArt(url string, all bool) *Builder {
	if all {
		return b.add("albumart " + quote(url) + " all")
	}
	return b.add("albumart " + quote(url))
}

// Export writes tags to file ("clipboard" for the clipboard) in the named
// export format.
func (b *Builder) Export(file, format string, tag core.TagNumber) *Builder {
	return b.add(fmt.Sprintf("export %s %s %s", quote(file), quote(format), tag))
}

// Playlist creates a playlist in the configured format.
func (b *Builder) Playlist() *Builder {
	return b.add("playlist")
}

// FilenameFormat applies the configured file name format.
func (b *Builder) FilenameFormat() *Builder {
	return b.add("filenameformat")
}

// TagFormat applies the configured tag format.
func (b *Builder) TagFormat() *Builder {
	return b.add("tagformat")
}

// TextEncoding applies the configured text encoding.
func (b *Builder) TextEncoding() *Builder {
	return b.add("textencoding")
}

// RenameDir renames or creates directories from tag values, e.g.
// "%{artist} - %{album}".
func (b *Builder) RenameDir(format string, m RenameMode, tag core.TagNumber) *Builder {
	if m == "" {
		m = RenameRename
	}
	return b.add(fmt.Sprintf("renamedir %s %s %s", quote(format), m, tag))
}

// NumberTracks numbers the selected tracks starting at start (1 if zero).
func (b *Builder) NumberTracks(start int, tag core.TagNumber) *Builder {
	if start == 0 {
		start = 1
	}
	return b.add(fmt.Sprintf("numbertracks %d %s", start, tag))
}

// Filter hides files not matching expr, which is either a filter expression
// or the name of a predefined filter such as "Filename Tag Mismatch".
func (b *Builder) Filter(expr string) *Builder {
	return b.add(`filter "` + escapeDouble(expr) + `"`)
}

// To24 converts ID3v2.3 tags to ID3v2.4.
func (b *Builder) To24() *Builder {
	return b.add("to24")
}

// To23 converts ID3v2.4 tags to ID3v2.3.
func (b *Builder) To23() *Builder {
	return b.add("to23")
}

// FromTag renames the selected files from tag values, e.g. "%{track} - %{title}".
func (b *Builder) FromTag(format string, tag core.TagNumber) *Builder {
	return b.add(fmt.Sprintf("fromtag %s %s", quote(format), tag))
}

// ToTag sets tag frames from the file names.
func (b *Builder) ToTag(format string, tag core.TagNumber) *Builder {
	return b.add(fmt.Sprintf("totag %s %s", quote(format), tag))
}

// SyncTo copies the frames of the other tag into tag.
func (b *Builder) SyncTo(tag core.TagNumber) *Builder {
	return b.add("syncto " + tag.String())
}

// Copy copies the frames of the selected file to the internal copy buffer.
func (b *Builder) Copy(tag core.TagNumber) *Builder {
	return b.add("copy " + tag.String())
}

// Paste sets frames of the selected files from the copy buffer.
func (b *Builder) Paste(tag core.TagNumber) *Builder {
	return b.add("paste " + tag.String())
}

// Remove deletes a tag.
func (b *Builder) Remove(tag core.TagNumber) *Builder {
	return b.add("remove " + tag.String())
}

// Play starts playback, or controls it once started.
func (b *Builder) Play(c PlayCommand) *Builder {
	if c == PlayStart {
		return b.add("play")
	}
	return b.add("play " + string(c))
}
