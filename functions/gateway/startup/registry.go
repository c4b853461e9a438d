package startup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// StartupTask represents a startup task function
type StartupTask struct {
	Name string
	Task func(ctx context.Context) error
}

// Registry holds startup tasks in the order they were registered
type Registry struct {
	tasks []StartupTask
}

// Register adds a startup task to the registry
func (r *Registry) Register(name string, task func(ctx context.Context) error) {
	r.tasks = append(r.tasks, StartupTask{
		Name: name,
		Task: task,
	})
}

// RunAll executes every registered task and stops at the first failure
func (r *Registry) RunAll(ctx context.Context) error {
	log.Info().Int("count", len(r.tasks)).Msg("running startup tasks")

	for _, task := range r.tasks {
		log.Info().Str("task", task.Name).Msg("running startup task")

		if err := task.Task(ctx); err != nil {
			return fmt.Errorf("startup task '%s' failed: %w", task.Name, err)
		}

		log.Info().Str("task", task.Name).Msg("startup task completed")
	}

	log.Info().Msg("all startup tasks completed")
	return nil
}
