package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifeadvance/internal/config"
	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/errors"
	"github.com/julianstephens/lifeadvance/internal/models"
	"github.com/julianstephens/lifeadvance/internal/storage"
	"github.com/julianstephens/lifeadvance/internal/storage/sqlite"
)

var testNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

func newTestContext(t *testing.T, store storage.Provider) (*Context, *bytes.Buffer) {
	t.Helper()
	seq := 0
	out := &bytes.Buffer{}
	return &Context{
		Store:    store,
		Config:   config.Default(),
		Location: time.UTC,
		Now:      func() time.Time { return testNow },
		Out:      out,
		NewID: func() string {
			seq++
			return fmt.Sprintf("id%02d-aaaaaaaa", seq)
		},
	}, out
}

func setupMemory(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	return newTestContext(t, storage.NewMemoryStore())
}

func setupSQLite(t *testing.T) (*Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "lifeadvance.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return newTestContext(t, store)
}

func TestResolveID(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz"}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "exact", ref: "xyz", want: "xyz"},
		{name: "unique prefix", ref: "abc", want: "abc123"},
		{name: "ambiguous", ref: "ab", wantErr: errors.ErrInvalidInput},
		{name: "missing", ref: "qq", wantErr: errors.ErrNotFound},
		{name: "empty", ref: "  ", wantErr: errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveID("goal", ids, tt.ref)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoalCommands(t *testing.T) {
	ctx, out := setupMemory(t)

	require.NoError(t, (&GoalAddCmd{Title: "Run a 5k", Priority: "HIGH"}).Run(ctx))
	require.NoError(t, (&GoalAddCmd{Title: "Read more", Description: "two books", Priority: "low"}).Run(ctx))
	assert.Contains(t, out.String(), "Added goal: Run a 5k")

	require.NoError(t, (&GoalToggleCmd{ID: "id01"}).Run(ctx))
	assert.Contains(t, out.String(), "Completed: Run a 5k")

	out.Reset()
	require.NoError(t, (&GoalListCmd{Pending: true}).Run(ctx))
	assert.NotContains(t, out.String(), "Run a 5k")
	assert.Contains(t, out.String(), "Read more")
	assert.Contains(t, out.String(), "1 completed, 1 pending (50%)")

	title := "Read three books"
	require.NoError(t, (&GoalEditCmd{ID: "id02", Title: &title}).Run(ctx))
	goal, ok := ctx.tracker.Goals.Get("id02-aaaaaaaa")
	require.True(t, ok)
	assert.Equal(t, "Read three books", goal.Title)
	assert.Equal(t, "two books", goal.Description)

	require.NoError(t, (&GoalDeleteCmd{ID: "id01"}).Run(ctx))
	assert.Len(t, ctx.tracker.Goals.All(), 1)
}

func TestGoalCommandErrors(t *testing.T) {
	ctx, _ := setupMemory(t)

	err := (&GoalAddCmd{Title: "x", Priority: "urgent"}).Run(ctx)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	err = (&GoalAddCmd{Title: "  ", Priority: "low"}).Run(ctx)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	err = (&GoalToggleCmd{ID: "nope"}).Run(ctx)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestHabitCommands(t *testing.T) {
	ctx, out := setupMemory(t)

	require.NoError(t, (&HabitAddCmd{Name: "Meditate", Frequency: "daily", Target: 5}).Run(ctx))
	require.NoError(t, (&HabitToggleCmd{ID: "id01"}).Run(ctx))
	assert.Contains(t, out.String(), "Meditate done today (1 day streak)")

	out.Reset()
	require.NoError(t, (&HabitShowCmd{ID: "id01"}).Run(ctx))
	assert.Contains(t, out.String(), "Current streak:    1")
	assert.Contains(t, out.String(), "Total completions: 1")
	assert.Contains(t, out.String(), "(last 30 days)")

	require.NoError(t, (&HabitToggleCmd{ID: "id01"}).Run(ctx))
	assert.Contains(t, out.String(), "Unmarked Meditate for today")

	out.Reset()
	require.NoError(t, (&HabitListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "0 of 1 done today")

	err := (&HabitAddCmd{Name: "Bad", Frequency: "daily", Target: 9}).Run(ctx)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestArticleCommands(t *testing.T) {
	ctx, out := setupMemory(t)

	require.NoError(t, (&ArticleListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "0 read, 6 unread")

	first := ctx.tracker.Articles.All()[0]
	require.NoError(t, (&ArticleReadCmd{ID: first.ID[:8]}).Run(ctx))
	assert.Contains(t, out.String(), "Marked as read: "+first.Title)

	out.Reset()
	require.NoError(t, (&ArticleListCmd{Category: "mindfulness"}).Run(ctx))
	assert.Contains(t, out.String(), "0 read, 1 unread")

	out.Reset()
	require.NoError(t, (&ArticleAddCmd{Title: "Deep Work", Category: "productivity", Content: "Focus.", ReadingTime: 8}).Run(ctx))
	require.NoError(t, (&ArticleShowCmd{ID: "id01"}).Run(ctx))
	assert.Contains(t, out.String(), "Focus.")

	err := (&ArticleListCmd{Category: "cooking"}).Run(ctx)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestHobbyCommands(t *testing.T) {
	ctx, out := setupMemory(t)

	require.NoError(t, (&HobbyAddCmd{Name: "Guitar", Duration: 30, Level: "beginner", Date: "2024-06-01"}).Run(ctx))
	require.NoError(t, (&HobbyAddCmd{Name: "Guitar", Duration: 45, Level: "intermediate", Achievements: []string{"first song"}}).Run(ctx))
	require.NoError(t, (&HobbyAddCmd{Name: "Chess", Duration: 90, Level: "beginner"}).Run(ctx))
	assert.Contains(t, out.String(), "Logged 1h30m of Chess")

	out.Reset()
	require.NoError(t, (&HobbyNamesCmd{}).Run(ctx))
	assert.Equal(t, "Chess\nGuitar\n", out.String())

	out.Reset()
	require.NoError(t, (&HobbySummaryCmd{Name: "Guitar"}).Run(ctx))
	assert.Contains(t, out.String(), "Sessions:      2")
	assert.Contains(t, out.String(), "Total time:    1h15m")
	assert.Contains(t, out.String(), "Current level: intermediate")
	assert.Contains(t, out.String(), "Last session:  2024-06-10")

	out.Reset()
	require.NoError(t, (&HobbyListCmd{Hobby: "Guitar"}).Run(ctx))
	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[1], "2024-06-10")
	assert.Contains(t, out.String(), "2024-06-01")
	assert.NotContains(t, out.String(), "Chess")

	assert.Error(t, (&HobbySummaryCmd{Name: "Piano"}).Run(ctx))
	assert.Error(t, (&HobbyAddCmd{Name: "Guitar", Duration: 10, Level: "beginner", Date: "June 1"}).Run(ctx))
}

func TestHobbyAddParsesAchievementsVerbatim(t *testing.T) {
	var root struct {
		Hobby HobbyCmd `cmd:""`
	}
	parser, err := kong.New(&root)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"hobby", "add", "Guitar", "-d", "30",
		"-a", "Learned C, G and D chords", "-a", "First song"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Learned C, G and D chords", "First song"}, root.Hobby.Add.Achievements)

	ctx, _ := setupMemory(t)
	require.NoError(t, root.Hobby.Add.Run(ctx))
	entries := ctx.tracker.Hobbies.All()
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Learned C, G and D chords", "First song"}, entries[0].Achievements)
}

func TestFormatDateDefaultsToUTC(t *testing.T) {
	ctx, _ := setupMemory(t)
	ctx.Location = nil

	late := time.Date(2024, 6, 10, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, "2024-06-11", ctx.formatDate(late))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "2h", formatMinutes(120))
	assert.Equal(t, "1h5m", formatMinutes(65))
}

func TestStatsCommand(t *testing.T) {
	ctx, out := setupMemory(t)
	require.NoError(t, (&GoalAddCmd{Title: "g", Priority: "low"}).Run(ctx))
	require.NoError(t, (&HabitAddCmd{Name: "h", Frequency: "daily", Target: 7}).Run(ctx))
	require.NoError(t, (&HabitToggleCmd{ID: "id02"}).Run(ctx))
	require.NoError(t, (&HobbyAddCmd{Name: "Chess", Duration: 60, Level: "beginner"}).Run(ctx))

	out.Reset()
	require.NoError(t, (&StatsCmd{}).Run(ctx))
	s := out.String()
	assert.Contains(t, s, "2024-06-10")
	assert.Contains(t, s, "0 completed, 1 pending (0%)")
	assert.Contains(t, s, "1 of 1 done today, best streak 1")
	assert.Contains(t, s, "0 read, 6 unread")
	assert.Contains(t, s, "1 sessions across 1 hobbies, 1h total")
}

func TestInitShowsWelcomeOnce(t *testing.T) {
	ctx, out := setupMemory(t)

	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Welcome to LifeAdvance")
	assert.True(t, ctx.tracker.HasCompletedOnboarding())

	out.Reset()
	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.NotContains(t, out.String(), "Welcome")
}

func TestInitWritesConfigOnce(t *testing.T) {
	ctx, out := setupSQLite(t)
	ctx.ConfigPath = filepath.Join(t.TempDir(), "lifeadvance", "config.toml")
	ctx.Config.DataPath = ctx.Store.GetConfigPath()
	ctx.Config.Debug = true

	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Wrote config to: "+ctx.ConfigPath)

	saved, err := config.Load(ctx.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, ctx.Store.GetConfigPath(), saved.DataPath)
	assert.Equal(t, constants.BackendSQLite, saved.Backend)
	assert.False(t, saved.Debug)

	saved.CompletionWindowDays = 7
	require.NoError(t, config.Save(ctx.ConfigPath, saved))
	out.Reset()
	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.NotContains(t, out.String(), "Wrote config")

	reloaded, err := config.Load(ctx.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.CompletionWindowDays)
}

func TestInitSkipsConfigForMemoryBackend(t *testing.T) {
	ctx, _ := setupMemory(t)
	ctx.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	ctx.Config.Backend = constants.BackendMemory

	require.NoError(t, (&InitCmd{}).Run(ctx))
	exists, err := config.Exists(ctx.ConfigPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestResetCommand(t *testing.T) {
	ctx, out := setupMemory(t)
	require.NoError(t, (&GoalAddCmd{Title: "g", Priority: "low"}).Run(ctx))

	ctx.In = strings.NewReader("n\n")
	require.NoError(t, (&ResetCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Reset cancelled.")
	assert.Len(t, ctx.tracker.Goals.All(), 1)

	ctx.In = strings.NewReader("yes\n")
	require.NoError(t, (&ResetCmd{}).Run(ctx))
	assert.Empty(t, ctx.tracker.Goals.All())

	require.NoError(t, ctx.tracker.CompleteOnboarding())
	require.NoError(t, (&ResetCmd{Onboarding: true}).Run(ctx))
	assert.False(t, ctx.tracker.HasCompletedOnboarding())
}

func TestCommandsRequireInit(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db"))
	ctx, _ := newTestContext(t, store)

	err := (&GoalListCmd{}).Run(ctx)
	assert.True(t, errors.Is(err, errors.ErrNotInitialized))
}

func TestBackupCommands(t *testing.T) {
	ctx, out := setupSQLite(t)
	require.NoError(t, (&GoalAddCmd{Title: "keep", Priority: "low"}).Run(ctx))

	require.NoError(t, (&BackupCreateCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Backup created: lifeadvance-")

	out.Reset()
	require.NoError(t, (&BackupListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "1 total, keeping most recent 14")

	ctx.Config.Backend = constants.BackendMemory
	assert.Error(t, (&BackupCreateCmd{}).Run(ctx))
}

func TestDoctorCommand(t *testing.T) {
	ctx, out := setupSQLite(t)
	require.NoError(t, (&GoalAddCmd{Title: "ok", Priority: "medium"}).Run(ctx))

	require.NoError(t, (&DoctorCmd{}).Run(ctx))
	s := out.String()
	assert.Contains(t, s, "Schema version: OK")
	assert.Contains(t, s, "Collections readable: OK")
	assert.Contains(t, s, "Backups present: WARNING")
	assert.Contains(t, s, "All diagnostics passed!")

	require.NoError(t, ctx.Store.Set(constants.KeyHabits, []byte(`[{"id":"h","name":"","frequency":"daily","target_days_per_week":3}]`)))
	out.Reset()
	assert.ErrorIs(t, (&DoctorCmd{}).Run(ctx), errChecksFailed)
	assert.Contains(t, out.String(), "Collections readable: FAIL")
}

func TestDebugDump(t *testing.T) {
	ctx, out := setupMemory(t)
	require.NoError(t, (&HobbyAddCmd{Name: "Chess", Duration: 20, Level: "expert"}).Run(ctx))

	out.Reset()
	require.NoError(t, (&DebugDumpCmd{Key: constants.KeyHobbyEntries}).Run(ctx))
	assert.Contains(t, out.String(), `"hobby_name": "Chess"`)

	assert.True(t, errors.Is((&DebugDumpCmd{Key: "tasks"}).Run(ctx), errors.ErrInvalidInput))
	assert.Error(t, (&DebugDumpCmd{Key: constants.KeyGoals}).Run(ctx))
}

func TestSeedArticleIDsStableAcrossRuns(t *testing.T) {
	a, _ := setupMemory(t)
	b, _ := setupMemory(t)
	ta, err := a.Tracker()
	require.NoError(t, err)
	tb, err := b.Tracker()
	require.NoError(t, err)

	assert.Equal(t, ta.Articles.All()[0].ID, tb.Articles.All()[0].ID)
	assert.Equal(t, models.SeedArticleID(ta.Articles.All()[0].Title), ta.Articles.All()[0].ID)
}
