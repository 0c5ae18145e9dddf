// Package ci models the repository's continuous integration workflow so its
// shape can be checked in tests: the triggers it declares and that every step
// references an invocable command.
package ci

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoTrigger   = errors.New("workflow needs at least one trigger")
	ErrNoJobs      = errors.New("workflow needs at least one job")
	ErrNoRunner    = errors.New("job needs a runner")
	ErrNoSteps     = errors.New("job needs at least one step")
	ErrStepCommand = errors.New("step needs exactly one of uses or run")
)

// Workflow is a continuous integration workflow definition.
type Workflow struct {
	Name string         `yaml:"name"`
	On   Triggers       `yaml:"on"`
	Jobs map[string]Job `yaml:"jobs"`
}

// Triggers lists the events that start the workflow.
type Triggers struct {
	Push        *PushTrigger        `yaml:"push,omitempty"`
	PullRequest *PullRequestTrigger `yaml:"pull_request,omitempty"`
}

// PushTrigger restricts push events to the given branches.
type PushTrigger struct {
	Branches []string `yaml:"branches,omitempty"`
}

// PullRequestTrigger restricts pull request events to the given activity
// types.
type PullRequestTrigger struct {
	Types []string `yaml:"types,omitempty"`
}

// Job is a named sequence of steps running on a single runner.
type Job struct {
	Name   string `yaml:"name,omitempty"`
	RunsOn string `yaml:"runs-on"`
	Steps  []Step `yaml:"steps"`
}

// Step either invokes a published action (uses) or a shell command (run),
// never both.
type Step struct {
	Name string            `yaml:"name,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty"`
	With map[string]string `yaml:"with,omitempty"`
}

// Load reads and parses a workflow definition from disk.
func Load(path string) (*Workflow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read workflow %s", path)
	}

	var workflow Workflow

	err = yaml.Unmarshal(raw, &workflow)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse workflow %s", path)
	}

	return &workflow, nil
}

// Validate checks the workflow is well formed: it has at least one trigger,
// at least one job, every job has a runner and steps, and every step invokes
// exactly one command.
func (w *Workflow) Validate() error {
	if w.On.Push == nil && w.On.PullRequest == nil {
		return ErrNoTrigger
	}

	if len(w.Jobs) == 0 {
		return ErrNoJobs
	}

	for jobName, job := range w.Jobs {
		if job.RunsOn == "" {
			return errors.Wrapf(ErrNoRunner, "job %s", jobName)
		}

		if len(job.Steps) == 0 {
			return errors.Wrapf(ErrNoSteps, "job %s", jobName)
		}

		for i, step := range job.Steps {
			if (step.Uses == "") == (step.Run == "") {
				return errors.Wrapf(ErrStepCommand, "job %s step %d", jobName, i)
			}
		}
	}

	return nil
}

// Commands returns the shell commands of every run step of the job, in order.
func (j Job) Commands() []string {
	var commands []string

	for _, step := range j.Steps {
		if step.Run != "" {
			commands = append(commands, step.Run)
		}
	}

	return commands
}
