package builder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sonnes/kid3/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records the last invocation and returns canned output.
type fakeExecutor struct {
	mu    sync.Mutex
	name  string
	args  []string
	calls int
	out   string
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = name
	f.args = args
	f.calls++
	return f.out, f.err
}

func TestNewDefaults(t *testing.T) {
	b := New(Config{})
	assert.Equal(t, "kid3-cli", b.Binary())
	assert.IsType(t, &ExecExecutor{}, b.executor)

	b = New(Config{Binary: "/opt/kid3/kid3-cli"})
	assert.Equal(t, "/opt/kid3/kid3-cli", b.Binary())
}

func TestWithoutCommands(t *testing.T) {
	fx := &fakeExecutor{}
	b := New(Config{Executor: fx})

	_, err := b.Build("")
	assert.ErrorIs(t, err, ErrNoCommands)

	_, err = b.Args("song.mp3")
	assert.ErrorIs(t, err, ErrNoCommands)

	_, err = b.RunSync(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoCommands)

	called := false
	err = b.Run(context.Background(), "", func(string, error) { called = true })
	assert.ErrorIs(t, err, ErrNoCommands)
	assert.False(t, called)

	assert.Zero(t, fx.calls, "no process should be spawned")
}

func TestBuild(t *testing.T) {
	t.Run("single bare command", func(t *testing.T) {
		line, err := New(Config{}).Pwd().Build("")
		require.NoError(t, err)
		assert.Equal(t, "-c pwd", line)
	})

	t.Run("with filename", func(t *testing.T) {
		line, err := New(Config{}).Pwd().Build("Song.mp3")
		require.NoError(t, err)
		assert.Equal(t, `-c pwd "Song.mp3"`, line)
	})

	t.Run("quoted commands", func(t *testing.T) {
		line, err := New(Config{}).
			Set("title", "X", core.TagDefault).
			Save().
			Build("song.mp3")
		require.NoError(t, err)
		assert.Equal(t, `-c "set 'title' 'X' 12" -c save "song.mp3"`, line)
	})

	t.Run("escapes double quotes", func(t *testing.T) {
		line, err := New(Config{}).Filter(`%{title} contains "live"`).Build(`a "b".mp3`)
		require.NoError(t, err)
		assert.Equal(t, `-c "filter \"%{title} contains \\\"live\\\"\"" "a \"b\".mp3"`, line)
	})
}

func TestString(t *testing.T) {
	s, err := New(Config{Binary: "kid3"}).Ls().String("")
	require.NoError(t, err)
	assert.Equal(t, "kid3 -c ls", s)

	_, err = New(Config{}).String("")
	assert.ErrorIs(t, err, ErrNoCommands)
}

func TestArgs(t *testing.T) {
	b := New(Config{}).Cd("/music/").Select("a.mp3").Copy(core.Tag2)

	args, err := b.Args("")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-c", "cd '/music'",
		"-c", "select 'a.mp3'",
		"-c", "copy 2",
	}, args)

	args, err = b.Args("b.mp3")
	require.NoError(t, err)
	assert.Equal(t, "b.mp3", args[len(args)-1])

	// Building does not consume the commands.
	assert.Len(t, b.Commands(), 3)
}

func TestCommandsReturnsCopy(t *testing.T) {
	b := New(Config{}).Ls()
	cmds := b.Commands()
	cmds[0] = "changed"
	assert.Equal(t, []string{"ls"}, b.Commands())
}

func TestCd(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{"home", "", "cd"},
		{"plain", "/music", "cd '/music'"},
		{"trailing slash", "/music/", "cd '/music'"},
		{"trailing backslash", `C:\Music\`, `cd 'C:\\Music'`},
		{"only one separator stripped", "/music//", "cd '/music/'"},
		{"root kept", "/", "cd '/'"},
		{"single quote escaped", "/music/Guns N' Roses", `cd '/music/Guns N\' Roses'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, New(Config{}).Cd(tt.dir).Commands())
		})
	}
}

func TestCommandFragments(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder) *Builder
		want  string
	}{
		{"help all", func(b *Builder) *Builder { return b.Help("") }, "help"},
		{"help one", func(b *Builder) *Builder { return b.Help("get") }, "help get"},
		{"timeout default", func(b *Builder) *Builder { return b.Timeout("") }, "timeout 'default'"},
		{"timeout ms", func(b *Builder) *Builder { return b.Timeout("5000") }, "timeout '5000'"},
		{"exit", func(b *Builder) *Builder { return b.Exit(false) }, "exit"},
		{"exit force", func(b *Builder) *Builder { return b.Exit(true) }, "exit force"},
		{"pwd", func(b *Builder) *Builder { return b.Pwd() }, "pwd"},
		{"ls", func(b *Builder) *Builder { return b.Ls() }, "ls"},
		{"save", func(b *Builder) *Builder { return b.Save() }, "save"},
		{"select", func(b *Builder) *Builder { return b.Select("*.mp3") }, "select '*.mp3'"},
		{"select tag", func(b *Builder) *Builder { return b.SelectTag(core.Tag1) }, "tag 1"},
		{"select tag default", func(b *Builder) *Builder { return b.SelectTag(core.TagDefault) }, "tag 12"},
		{"tag info", func(b *Builder) *Builder { return b.TagInfo() }, "tag"},
		{"get all", func(b *Builder) *Builder { return b.Get("", core.TagDefault) }, "get 'all' 12"},
		{"get column", func(b *Builder) *Builder { return b.Get("title", core.Tag2) }, "get 'title' 2"},
		{"get picture", func(b *Builder) *Builder { return b.GetPicture("/tmp/cover.jpg") }, "get picture:'/tmp/cover.jpg'"},
		{"get lyrics", func(b *Builder) *Builder { return b.GetLyrics("song.lrc") }, "get SYLT:'song.lrc'"},
		{"set", func(b *Builder) *Builder { return b.Set("artist", "Someone", core.TagDefault) }, "set 'artist' 'Someone' 12"},
		{"set empty value", func(b *Builder) *Builder { return b.Set("comment", "", core.Tag1) }, "set 'comment' '' 1"},
		{"set picture", func(b *Builder) *Builder { return b.SetPicture("cover.jpg", "") }, "set picture:'cover.jpg' 'Cover'"},
		{"set lyrics", func(b *Builder) *Builder { return b.SetLyrics("song.lrc", "") }, "set SYLT:'song.lrc' ''"},
		{"revert", func(b *Builder) *Builder { return b.Revert() }, "revert"},
		{"import", func(b *Builder) *Builder { return b.Import("tags.csv", "CSV unquoted", core.TagDefault) }, "import 'tags.csv' 'CSV unquoted' 12"},
		{"autoimport default", func(b *Builder) *Builder { return b.AutoImport("", core.TagDefault) }, "autoimport 'All' 12"},
		{"albumart", func(b *Builder) *Builder { return b.AlbumArt("http://x/a.jpg", false) }, "albumart 'http://x/a.jpg'"},
		{"albumart all", func(b *Builder) *Builder { return b.AlbumArt("http://x/a.jpg", true) }, "albumart 'http://x/a.jpg' all"},
		{"export", func(b *Builder) *Builder { return b.Export("clipboard", "CSV unquoted", core.Tag2) }, "export 'clipboard' 'CSV unquoted' 2"},
		{"playlist", func(b *Builder) *Builder { return b.Playlist() }, "playlist"},
		{"filenameformat", func(b *Builder) *Builder { return b.FilenameFormat() }, "filenameformat"},
		{"tagformat", func(b *Builder) *Builder { return b.TagFormat() }, "tagformat"},
		{"textencoding", func(b *Builder) *Builder { return b.TextEncoding() }, "textencoding"},
		{"renamedir", func(b *Builder) *Builder { return b.RenameDir("%{artist} - %{album}", RenameDryRun, core.TagDefault) }, "renamedir '%{artist} - %{album}' dryrun 12"},
		{"renamedir default mode", func(b *Builder) *Builder { return b.RenameDir("%{album}", "", core.Tag2) }, "renamedir '%{album}' rename 2"},
		{"numbertracks", func(b *Builder) *Builder { return b.NumberTracks(0, core.TagDefault) }, "numbertracks 1 12"},
		{"numbertracks start", func(b *Builder) *Builder { return b.NumberTracks(5, core.Tag1) }, "numbertracks 5 1"},
		{"filter", func(b *Builder) *Builder { return b.Filter("Filename Tag Mismatch") }, `filter "Filename Tag Mismatch"`},
		{"to24", func(b *Builder) *Builder { return b.To24() }, "to24"},
		{"to23", func(b *Builder) *Builder { return b.To23() }, "to23"},
		{"fromtag", func(b *Builder) *Builder { return b.FromTag("%{track} - %{title}", core.Tag1) }, "fromtag '%{track} - %{title}' 1"},
		{"totag", func(b *Builder) *Builder { return b.ToTag("%{artist}/%{title}", core.TagDefault) }, "totag '%{artist}/%{title}' 12"},
		{"syncto", func(b *Builder) *Builder { return b.SyncTo(core.Tag2) }, "syncto 2"},
		{"copy", func(b *Builder) *Builder { return b.Copy(core.TagDefault) }, "copy 12"},
		{"paste", func(b *Builder) *Builder { return b.Paste(core.Tag1) }, "paste 1"},
		{"remove", func(b *Builder) *Builder { return b.Remove(core.Tag1) }, "remove 1"},
		{"play", func(b *Builder) *Builder { return b.Play(PlayStart) }, "play"},
		{"play stop", func(b *Builder) *Builder { return b.Play(PlayStop) }, "play stop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(Config{})
			assert.Same(t, b, tt.build(b), "commands should return the same builder")
			assert.Equal(t, []string{tt.want}, b.Commands())
		})
	}
}

func TestRunSync(t *testing.T) {
	fx := &fakeExecutor{out: "/home/user\n"}
	b := New(Config{Binary: "kid3", Executor: fx})

	out, err := b.Pwd().RunSync(context.Background(), "song.mp3")
	require.NoError(t, err)
	assert.Equal(t, "/home/user\n", out)
	assert.Equal(t, "kid3", fx.name)
	assert.Equal(t, []string{"-c", "pwd", "song.mp3"}, fx.args)
	assert.Equal(t, 1, fx.calls)
}

func TestRunSyncPropagatesError(t *testing.T) {
	want := errors.New("exit status 1")
	fx := &fakeExecutor{err: want}

	_, err := New(Config{Executor: fx}).Save().RunSync(context.Background(), "missing.mp3")
	assert.Same(t, want, err)
}

func TestRun(t *testing.T) {
	fx := &fakeExecutor{out: "  12 song.mp3\n"}
	b := New(Config{Executor: fx}).Ls()

	type result struct {
		out string
		err error
	}
	ch := make(chan result, 1)
	require.NoError(t, b.Run(context.Background(), "", func(out string, err error) {
		ch <- result{out, err}
	}))

	select {
	case r := <-ch:
		require.NoError(t, r.err)
		assert.Equal(t, "  12 song.mp3\n", r.out)
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not called")
	}
}

func TestRunPropagatesError(t *testing.T) {
	want := errors.New("boom")
	fx := &fakeExecutor{err: want}

	ch := make(chan error, 1)
	require.NoError(t, New(Config{Executor: fx}).Ls().Run(context.Background(), "", func(_ string, err error) {
		ch <- err
	}))

	select {
	case err := <-ch:
		assert.Same(t, want, err)
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not called")
	}
}
