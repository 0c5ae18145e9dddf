package ci_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-ryb/internal/ci"
)

const workflowPath = "../../.github/workflows/ci.yml"

func TestLoadRepositoryWorkflow(t *testing.T) {
	t.Parallel()

	workflow, err := ci.Load(workflowPath)
	require.NoError(t, err)
	require.NoError(t, workflow.Validate())

	assert.Equal(t, "ci", workflow.Name)

	require.NotNil(t, workflow.On.Push)
	assert.Equal(t, []string{"master"}, workflow.On.Push.Branches)

	require.NotNil(t, workflow.On.PullRequest)
	assert.Equal(t, []string{"opened", "synchronize"}, workflow.On.PullRequest.Types)
}

func TestRepositoryWorkflowSteps(t *testing.T) {
	t.Parallel()

	workflow, err := ci.Load(workflowPath)
	require.NoError(t, err)

	job, ok := workflow.Jobs["checks"]
	require.True(t, ok)
	assert.Equal(t, "ubuntu-latest", job.RunsOn)
	require.Len(t, job.Steps, 8)

	// checkout and toolchain setup come first
	assert.Contains(t, job.Steps[0].Uses, "actions/checkout")
	assert.Contains(t, job.Steps[1].Uses, "actions/setup-go")
	assert.Equal(t, "stable", job.Steps[1].With["go-version"])

	// then format, lint, vet, build, test and docs, in that order
	assert.Contains(t, job.Steps[2].Run, "gofmt")
	assert.Contains(t, job.Steps[3].Uses, "golangci-lint")
	assert.Contains(t, job.Steps[4].Run, "go vet")
	assert.Contains(t, job.Steps[5].Run, "go build")
	assert.Contains(t, job.Steps[6].Run, "go test")
	assert.Contains(t, job.Steps[7].Run, "go doc")
}

func TestJobCommands(t *testing.T) {
	t.Parallel()

	job := ci.Job{Steps: []ci.Step{
		{Uses: "actions/checkout@v4"},
		{Name: "build", Run: "go build ./..."},
		{Name: "test", Run: "go test ./..."},
	}}

	assert.Equal(t, []string{"go build ./...", "go test ./..."}, job.Commands())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	validJob := ci.Job{
		RunsOn: "ubuntu-latest",
		Steps:  []ci.Step{{Run: "go test ./..."}},
	}

	tests := []struct {
		name     string
		workflow ci.Workflow
		expected error
	}{
		{
			name:     "no trigger",
			workflow: ci.Workflow{Jobs: map[string]ci.Job{"checks": validJob}},
			expected: ci.ErrNoTrigger,
		},
		{
			name:     "no jobs",
			workflow: ci.Workflow{On: ci.Triggers{Push: &ci.PushTrigger{}}},
			expected: ci.ErrNoJobs,
		},
		{
			name: "no runner",
			workflow: ci.Workflow{
				On:   ci.Triggers{Push: &ci.PushTrigger{}},
				Jobs: map[string]ci.Job{"checks": {Steps: validJob.Steps}},
			},
			expected: ci.ErrNoRunner,
		},
		{
			name: "no steps",
			workflow: ci.Workflow{
				On:   ci.Triggers{Push: &ci.PushTrigger{}},
				Jobs: map[string]ci.Job{"checks": {RunsOn: "ubuntu-latest"}},
			},
			expected: ci.ErrNoSteps,
		},
		{
			name: "step with both uses and run",
			workflow: ci.Workflow{
				On: ci.Triggers{Push: &ci.PushTrigger{}},
				Jobs: map[string]ci.Job{"checks": {
					RunsOn: "ubuntu-latest",
					Steps:  []ci.Step{{Uses: "actions/checkout@v4", Run: "go test ./..."}},
				}},
			},
			expected: ci.ErrStepCommand,
		},
		{
			name: "step with neither uses nor run",
			workflow: ci.Workflow{
				On: ci.Triggers{Push: &ci.PushTrigger{}},
				Jobs: map[string]ci.Job{"checks": {
					RunsOn: "ubuntu-latest",
					Steps:  []ci.Step{{Name: "noop"}},
				}},
			},
			expected: ci.ErrStepCommand,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tc.workflow.Validate(), tc.expected)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ci.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: [\n"), 0o600))

	_, err := ci.Load(path)
	assert.Error(t, err)
}
