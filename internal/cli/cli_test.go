package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/manifesto/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
	"go.uber.org/zap/zaptest"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(&RootOptions{log: zaptest.NewLogger(t)})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--driver", "sqlite", "--sqlite-path", dbPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func openStore(t *testing.T, dbPath string) *sqlstore.Store {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), "sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, path := range [][]string{
		{"migrate"}, {"seed"}, {"audit"},
		{"debate", "archive"}, {"poll", "close"}, {"petition", "complete"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	down := func() bool {
		sub, _, _ := cmd.Find([]string{"migrate"})
		return sub.Flags().Lookup("down") != nil
	}()
	assert.True(t, down)
}

func TestMigrate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")

	out, err := run(t, db, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "applied 000001_init\napplied 000002_post_media\napplied 000003_government\n", out)

	out, err = run(t, db, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "schema is up to date\n", out)

	for _, version := range []string{"000003_government", "000002_post_media", "000001_init"} {
		out, err = run(t, db, "migrate", "--down")
		require.NoError(t, err)
		assert.Equal(t, "rolled back "+version+"\n", out)
	}

	out, err = run(t, db, "migrate", "--down")
	require.NoError(t, err)
	assert.Equal(t, "nothing to roll back\n", out)
}

func TestSeed(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "ledger.db")
	_, err := run(t, db, "migrate")
	require.NoError(t, err)

	ana := uuid.New()
	seed := filepath.Join(dir, "users.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`
users:
  - id: `+ana.String()+`
    name: Ana Souza
    email: ana@example.org
    avatar_url: https://example.org/ana.png
  - name: Bruno Lima
    email: Bruno@Example.org
`), 0o600))

	out, err := run(t, db, "seed", seed)
	require.NoError(t, err)
	assert.Equal(t, "imported 2 users\n", out)

	user, err := services.NewUserService(openStore(t, db)).GetByID(context.Background(), ana)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, "https://example.org/ana.png", user.AvatarURL)

	require.NoError(t, os.WriteFile(seed, []byte("users:\n  - id: nope\n    name: X\n    email: x@example.org\n"), 0o600))
	_, err = run(t, db, "seed", seed)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSeedGovernment(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "ledger.db")
	_, err := run(t, db, "migrate")
	require.NoError(t, err)

	department, leader := uuid.New(), uuid.New()
	seed := filepath.Join(dir, "gov.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`
departments:
  - id: `+department.String()+`
    name: Transport
    type: national
    leader_ids: [`+leader.String()+`]
    issues:
      - title: Late trains
        severity: high
        reported_at: 2025-02-01T08:00:00Z
leaders:
  - id: `+leader.String()+`
    name: Bruno Lima
    position: Minister
    party: Blue
    department_ids: [`+department.String()+`]
    promises:
      - title: Rebuild the northern line
        status: pending
        created_at: 2025-01-01T00:00:00Z
projects:
  - title: Northern railway
    stage: in_progress
    department_id: `+department.String()+`
    start_date: 2025-01-15T00:00:00Z
    location:
      latitude: -25.7
      longitude: 28.2
      address: Station Rd
    milestones:
      - title: Survey
        completed: true
parliament:
  - title: Transit bill
    type: bill
    status: tabled
    session_date: 2025-03-01T09:00:00Z
    voting_records:
      - leader_id: `+leader.String()+`
        vote: for
`), 0o600))

	out, err := run(t, db, "seed", seed)
	require.NoError(t, err)
	assert.Equal(t, "imported 0 users\nimported 1 departments, 1 leaders, 1 projects, 1 parliament items\n", out)

	gov := services.NewGovernmentService(openStore(t, db))
	detail, err := gov.GetLeader(context.Background(), leader)
	require.NoError(t, err)
	assert.Equal(t, "Bruno Lima", detail.Name)
	require.Len(t, detail.Departments, 1)
	require.Len(t, detail.Departments[0].Issues, 1)
	assert.Equal(t, domain.SeverityHigh, detail.Departments[0].Issues[0].Severity)
	require.Len(t, detail.Promises, 1)
	assert.Equal(t, domain.PromisePending, detail.Promises[0].Status)

	projects, err := gov.ListProjects(context.Background(), ports.ProjectFilter{DepartmentID: &department})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].Location)
	assert.Equal(t, "Station Rd", projects[0].Location.Address)
	require.Len(t, projects[0].Milestones, 1)
	assert.True(t, projects[0].Milestones[0].Completed)

	require.NoError(t, os.WriteFile(seed, []byte("projects:\n  - title: Bridge\n    stage: dreaming\n    department_id: "+department.String()+"\n"), 0o600))
	_, err = run(t, db, "seed", seed)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, os.WriteFile(seed, []byte("leaders:\n  - id: nope\n    name: X\n"), 0o600))
	_, err = run(t, db, "seed", seed)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAuditAndModeration(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")
	_, err := run(t, db, "migrate")
	require.NoError(t, err)

	ctx := context.Background()
	store := openStore(t, db)
	composer := services.NewComposerService(store)

	debate, err := composer.CreateDebate(ctx, ports.CreateDebateInput{AuthorID: uuid.New(), Title: "Night buses", Topic: "Transit"})
	require.NoError(t, err)
	poll, err := composer.CreatePoll(ctx, ports.CreatePollInput{AuthorID: uuid.New(), Title: "Route", Options: []string{"A", "B"}})
	require.NoError(t, err)
	petition, err := composer.CreatePetition(ctx, ports.CreatePetitionInput{
		AuthorID:       uuid.New(),
		Title:          "Bus shelters",
		Goal:           100,
		TargetDeadline: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	_, err = services.NewPollService(store, nil).Vote(ctx, ports.VoteInput{PollID: poll.EntityID, UserID: uuid.New(), OptionIDs: []string{"option-0"}})
	require.NoError(t, err)

	out, err := run(t, db, "audit")
	require.NoError(t, err)
	assert.Equal(t, "no drift\n", out)

	_, err = store.DB().Exec(`UPDATE polls SET total_votes = 5 WHERE id = ?`, poll.EntityID.String())
	require.NoError(t, err)

	out, err = run(t, db, "audit")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "poll "+poll.EntityID.String())
	assert.Contains(t, out, "stored: ballots=5 option-0=1 option-1=0")
	assert.Contains(t, out, "ledger: ballots=1 option-0=1 option-1=0")

	out, err = run(t, db, "debate", "archive", debate.EntityID.String())
	require.NoError(t, err)
	assert.Equal(t, "archived "+debate.EntityID.String()+"\n", out)

	out, err = run(t, db, "poll", "close", poll.EntityID.String())
	require.NoError(t, err)
	assert.Equal(t, "closed "+poll.EntityID.String()+"\n", out)

	out, err = run(t, db, "petition", "complete", petition.EntityID.String())
	require.NoError(t, err)
	assert.Equal(t, "completed "+petition.EntityID.String()+"\n", out)

	repos := store.Repositories()
	d, err := repos.Debates.GetByID(ctx, debate.EntityID)
	require.NoError(t, err)
	assert.True(t, d.IsArchived)
	p, err := repos.Polls.GetByID(ctx, poll.EntityID)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	pe, err := repos.Petitions.GetByID(ctx, petition.EntityID)
	require.NoError(t, err)
	assert.Equal(t, domain.PetitionCompleted, pe.Status)

	_, err = run(t, db, "poll", "close", "not-a-uuid")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, db, "debate", "archive", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDebateNotFound)
}
