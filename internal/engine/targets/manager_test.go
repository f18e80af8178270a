package targets_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sieve/internal/adapters/fs"
	"go.trai.ch/sieve/internal/adapters/git"
	"go.trai.ch/sieve/internal/adapters/telemetry"
	"go.trai.ch/sieve/internal/core/domain"
	"go.trai.ch/sieve/internal/core/ports"
	"go.trai.ch/sieve/internal/core/ports/mocks"
	"go.trai.ch/sieve/internal/engine/targets"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte("x\n"), 0o600))
	}
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

// newFSManager builds a Manager over the real filesystem rooted at the current directory.
func newFSManager(t *testing.T, opts targets.Options, vcs ports.VersionControl) *targets.Manager {
	t.Helper()
	factory := targets.NewFactory(
		fs.NewResolver(),
		fs.NewWalker(),
		fs.NewInspector(),
		quietLogger(t),
		telemetry.NewNoOp(),
	)
	return factory.Manager(opts, vcs)
}

func sameSet(a, b domain.FileSet) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestManager_ExpandsDirectoryByLanguage(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFiles(t, ".", "src/a.py", "src/b.pyi", "src/c.txt")

	mgr := newFSManager(t, targets.Options{Targets: []string{"src"}}, nil)

	files, err := mgr.GetFiles(context.Background(), "python", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "a.py"), filepath.Join("src", "b.pyi")}, files)
}

func TestManager_ExplicitFileBypassesGlobalFilters(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFiles(t, ".", "main.go", "pkg/util.go")

	mgr := newFSManager(t, targets.Options{
		Targets:  []string{"main.go", "pkg"},
		Excludes: []string{"*.go"},
	}, nil)

	files, err := mgr.GetFiles(context.Background(), "go", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, files)
}

func TestManager_ExplicitFileIgnoresLanguage(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFiles(t, ".", "script.txt")

	mgr := newFSManager(t, targets.Options{Targets: []string{"script.txt"}}, nil)

	files, err := mgr.GetFiles(context.Background(), "python", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"script.txt"}, files)
}

func TestManager_UnsupportedLanguageBeforeFilesystemAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any collaborator call fails the test.
	mgr := targets.New(
		targets.Options{Targets: []string{"src"}},
		mocks.NewMockTargetResolver(ctrl),
		mocks.NewMockFileLister(ctrl),
		mocks.NewMockFileLister(ctrl),
		mocks.NewMockPathInspector(ctrl),
		mocks.NewMockLogger(ctrl),
		mocks.NewMockTelemetry(ctrl),
	)

	_, err := mgr.FilteredFiles(context.Background(), "ruby")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestManager_GitOnlyOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.py")

	mgr := newFSManager(t, targets.Options{
		Targets:          []string{dir},
		VisibleToGitOnly: true,
	}, git.NewRepository(quietLogger(t)))

	_, err := mgr.FilteredFiles(context.Background(), "python")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotVersionControlled)
}

func TestManager_GitOnlyOutsideRepositoryWithCLI(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	writeFiles(t, dir, "a.py")

	mgr := newFSManager(t, targets.Options{
		Targets:          []string{dir},
		VisibleToGitOnly: true,
	}, git.NewCLI(quietLogger(t), time.Minute))

	_, err := mgr.FilteredFiles(context.Background(), "python")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotVersionControlled)
}

func TestManager_GitOnlyWithCLI(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	dir := t.TempDir()
	writeFiles(t, dir, "tracked.py", "untracked.py", "ignored/skip.py", "we\"ird.py")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("ignored/\n"), 0o600))
	for _, args := range [][]string{{"init", "-q"}, {"add", "tracked.py", "we\"ird.py", ".gitignore"}} {
		cmd := exec.CommandContext(context.Background(), "git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	mgr := newFSManager(t, targets.Options{
		Targets:          []string{dir},
		VisibleToGitOnly: true,
	}, git.NewCLI(quietLogger(t), time.Minute))

	files, err := mgr.GetFiles(context.Background(), "python", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "tracked.py"),
		filepath.Join(dir, "untracked.py"),
		filepath.Join(dir, "we\"ird.py"),
	}, files)
}

func TestManager_ExcludeMatchesAncestorDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFiles(t, ".", "project/tests/foo.py", "project/src/bar.py")

	mgr := newFSManager(t, targets.Options{
		Targets:  []string{"project"},
		Excludes: []string{"tests"},
	}, nil)

	files, err := mgr.GetFiles(context.Background(), "python", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("project", "src", "bar.py")}, files)
}

func TestManager_DropsMissingTargets(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFiles(t, ".", "src/a.go")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("dropping missing target", "path", "missing").Times(1)
	log.EXPECT().Debug("dropping missing target", "path", "gone.go").Times(1)

	mgr := targets.NewFactory(fs.NewResolver(), fs.NewWalker(), fs.NewInspector(), log, telemetry.NewNoOp()).
		Manager(targets.Options{Targets: []string{"missing", "src", "gone.go"}}, nil)

	files, err := mgr.GetFiles(context.Background(), "golang", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "a.go")}, files)
}

// mockedManager wires a Manager whose single target "src" is a directory.
func mockedManager(t *testing.T, ctrl *gomock.Controller, opts targets.Options, lister ports.FileLister) *targets.Manager {
	t.Helper()
	opts.Targets = []string{"src"}

	resolver := mocks.NewMockTargetResolver(ctrl)
	resolver.EXPECT().ResolveTargets([]string{"src"}).Return(domain.NewFileSet("src")).AnyTimes()

	inspector := mocks.NewMockPathInspector(ctrl)
	inspector.EXPECT().Kind("src").Return(domain.PathDir, nil).AnyTimes()

	return targets.New(opts, resolver, lister, nil, inspector, quietLogger(t), telemetry.NewNoOp())
}

func TestManager_CachesPerLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "py").Return(domain.NewFileSet("src/a.py"), nil).Times(1)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "pyi").Return(domain.NewFileSet("src/a.pyi"), nil).Times(1)

	mgr := mockedManager(t, ctrl, targets.Options{}, lister)

	first, err := mgr.FilteredFiles(context.Background(), "python")
	require.NoError(t, err)

	// Aliases share the cache entry of their canonical language.
	second, err := mgr.FilteredFiles(context.Background(), "py")
	require.NoError(t, err)
	third, err := mgr.FilteredFiles(context.Background(), "python3")
	require.NoError(t, err)

	assert.Equal(t, domain.NewFileSet("src/a.py", "src/a.pyi"), first)
	assert.True(t, sameSet(first, second))
	assert.True(t, sameSet(first, third))
}

func TestManager_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockFileLister(ctrl)
	gomock.InOrder(
		lister.EXPECT().ListFiles(gomock.Any(), "src", "java").
			Return(nil, zerr.Wrap(domain.ErrVersionControlUnavailable, "timed out")),
		lister.EXPECT().ListFiles(gomock.Any(), "src", "java").
			Return(domain.NewFileSet("src/A.java"), nil),
	)

	mgr := mockedManager(t, ctrl, targets.Options{}, lister)

	_, err := mgr.FilteredFiles(context.Background(), "java")
	require.ErrorIs(t, err, domain.ErrVersionControlUnavailable)

	files, err := mgr.FilteredFiles(context.Background(), "java")
	require.NoError(t, err)
	assert.Equal(t, domain.NewFileSet("src/A.java"), files)
}

func TestManager_ConcurrentCallsShareOneComputation(t *testing.T) {
	ctrl := gomock.NewController(t)
	release := make(chan struct{})
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "c").
		DoAndReturn(func(_ context.Context, _, _ string) (domain.FileSet, error) {
			<-release
			return domain.NewFileSet("src/main.c"), nil
		}).Times(1)

	mgr := mockedManager(t, ctrl, targets.Options{}, lister)

	const callers = 8
	results := make([]domain.FileSet, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := mgr.FilteredFiles(context.Background(), "c")
			assert.NoError(t, err)
			results[i] = set
		}()
	}

	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, set := range results {
		assert.True(t, sameSet(results[0], set))
	}
}

func TestManager_CanceledCallerDoesNotFailSharedResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	started := make(chan struct{})
	release := make(chan struct{})
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "java").
		DoAndReturn(func(ctx context.Context, _, _ string) (domain.FileSet, error) {
			close(started)
			<-release
			return domain.NewFileSet("src/A.java"), ctx.Err()
		}).Times(1)

	mgr := mockedManager(t, ctrl, targets.Options{}, lister)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := mgr.FilteredFiles(ctx, "java")
		firstErr <- err
	}()
	<-started

	second := make(chan domain.FileSet, 1)
	go func() {
		set, err := mgr.FilteredFiles(context.Background(), "java")
		assert.NoError(t, err)
		second <- set
	}()

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, domain.NewFileSet("src/A.java"), <-second)
}

func TestManager_GetFilesReturnsCallerOwnedSlice(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "go").Return(domain.NewFileSet("src/a.go", "src/b.go"), nil).Times(1)

	mgr := mockedManager(t, ctrl, targets.Options{}, lister)

	files, err := mgr.GetFiles(context.Background(), "go", nil, nil)
	require.NoError(t, err)
	files[0] = "tampered.go"
	_ = append(files[:1], "extra.go")

	again, err := mgr.GetFiles(context.Background(), "go", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.go", "src/b.go"}, again)
}

func TestManager_GlobalThenLocalFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "js").Return(domain.NewFileSet(
		"src/app.js",
		"src/vendor/lib.js",
		"src/test/app_test.js",
		"src/util.js",
	), nil).Times(1)

	mgr := mockedManager(t, ctrl, targets.Options{Excludes: []string{"vendor"}}, lister)

	all, err := mgr.GetFiles(context.Background(), "js", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.js", "src/test/app_test.js", "src/util.js"}, all)

	local, err := mgr.GetFiles(context.Background(), "javascript", []string{"src/*.js"}, []string{"util.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"src/app.js"}, local)

	// Local filters never touch the cached set.
	again, err := mgr.GetFiles(context.Background(), "js", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestManager_GlobalIncludes(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "go").Return(domain.NewFileSet(
		"src/cmd/main.go",
		"src/internal/x.go",
	), nil)

	mgr := mockedManager(t, ctrl, targets.Options{Includes: []string{"internal"}}, lister)

	files, err := mgr.GetFiles(context.Background(), "go", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/internal/x.go"}, files)
}

func TestManager_GitOnlyUsesVersionControlLister(t *testing.T) {
	ctrl := gomock.NewController(t)
	plain := mocks.NewMockFileLister(ctrl)
	vcs := mocks.NewMockFileLister(ctrl)
	vcs.EXPECT().ListFiles(gomock.Any(), "src", "go").Return(domain.NewFileSet("src/tracked.go"), nil)

	resolver := mocks.NewMockTargetResolver(ctrl)
	resolver.EXPECT().ResolveTargets([]string{"src"}).Return(domain.NewFileSet("src"))
	inspector := mocks.NewMockPathInspector(ctrl)
	inspector.EXPECT().Kind("src").Return(domain.PathDir, nil)

	mgr := targets.New(
		targets.Options{Targets: []string{"src"}, VisibleToGitOnly: true},
		resolver, plain, vcs, inspector, quietLogger(t), telemetry.NewNoOp(),
	)

	files, err := mgr.GetFiles(context.Background(), "go", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/tracked.go"}, files)
}

func TestManager_StatFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockTargetResolver(ctrl)
	resolver.EXPECT().ResolveTargets([]string{"locked"}).Return(domain.NewFileSet("locked"))
	inspector := mocks.NewMockPathInspector(ctrl)
	inspector.EXPECT().Kind("locked").Return(domain.PathMissing, zerr.Wrap(domain.ErrPathStatFailed, "permission denied"))

	mgr := targets.New(
		targets.Options{Targets: []string{"locked"}},
		resolver, mocks.NewMockFileLister(ctrl), nil, inspector, quietLogger(t), telemetry.NewNoOp(),
	)

	_, err := mgr.FilteredFiles(context.Background(), "c")
	require.ErrorIs(t, err, domain.ErrPathStatFailed)
}

func TestManager_RecordsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := mocks.NewMockFileLister(ctrl)
	lister.EXPECT().ListFiles(gomock.Any(), "src", "java").Return(domain.NewFileSet("src/A.java"), nil)

	resolver := mocks.NewMockTargetResolver(ctrl)
	resolver.EXPECT().ResolveTargets([]string{"src"}).Return(domain.NewFileSet("src"))
	inspector := mocks.NewMockPathInspector(ctrl)
	inspector.EXPECT().Kind("src").Return(domain.PathDir, nil)

	first := mocks.NewMockVertex(ctrl)
	first.EXPECT().Log(domain.LogLevelInfo, "1 files (1 expanded, 0 explicit)")
	first.EXPECT().Stdout().Return(&discard{})
	first.EXPECT().Complete(nil)

	second := mocks.NewMockVertex(ctrl)
	second.EXPECT().Cached()
	second.EXPECT().Complete(nil)

	tel := mocks.NewMockTelemetry(ctrl)
	gomock.InOrder(
		tel.EXPECT().Record(gomock.Any(), "resolve java").DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Vertex) { return ctx, first }),
		tel.EXPECT().Record(gomock.Any(), "resolve java").DoAndReturn(
			func(ctx context.Context, _ string) (context.Context, ports.Vertex) { return ctx, second }),
	)

	mgr := targets.New(
		targets.Options{Targets: []string{"src"}},
		resolver, lister, nil, inspector, quietLogger(t), tel,
	)

	_, err := mgr.FilteredFiles(context.Background(), "java")
	require.NoError(t, err)
	_, err = mgr.FilteredFiles(context.Background(), "java")
	require.NoError(t, err)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
