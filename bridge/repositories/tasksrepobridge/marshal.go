package tasksrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// MarshalToBridge converts a core task to its API form.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
		StatusLabel: task.Status.Label(),
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateTaskInput) tasksrepo.CreateTask {
	return tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input
func MarshalUpdateToRepository(input UpdateTaskInput) (tasksrepo.UpdateTask, error) {
	update := tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
	}
	if input.Status != nil {
		status, err := tasksrepo.ParseStatus(*input.Status)
		if err != nil {
			return tasksrepo.UpdateTask{}, err
		}
		update.Status = &status
	}
	return update, nil
}

// MarshalStats converts repository counts to the API form.
func MarshalStats(c tasksrepo.Counts) Stats {
	return Stats{
		Total:      c.Total,
		ToDo:       c.ToDo,
		InProgress: c.InProgress,
		Done:       c.Done,
	}
}
