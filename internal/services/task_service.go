package services

import (
	"strings"
	"time"

	"github.com/fieldopshq/fieldops/internal/models"
)

type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(companyID uint, taskID uint) (models.Task, error)
	UpdateStatus(companyID uint, taskID uint, status string) error
}

type TaskJobRepository interface {
	FindByID(companyID uint, jobID uint) (models.Job, error)
}

type TaskService struct {
	tasks TaskRepository
	jobs  TaskJobRepository
}

func NewTaskService(tasks TaskRepository, jobs TaskJobRepository) *TaskService {
	return &TaskService{tasks: tasks, jobs: jobs}
}

func (service *TaskService) Add(companyID uint, jobID uint, rawTitle string, rawDueDate string, rawAssignedTo string) (models.Task, error) {
	title := strings.TrimSpace(rawTitle)
	if title == "" {
		return models.Task{}, ErrTitleRequired
	}

	if _, err := service.jobs.FindByID(companyID, jobID); err != nil {
		return models.Task{}, asNotFound(err)
	}

	task := models.Task{
		CompanyID:  companyID,
		JobID:      jobID,
		Title:      title,
		Status:     models.TaskStatusTodo,
		DueDate:    ParseOptionalDate(rawDueDate),
		AssignedTo: OptionalText(rawAssignedTo),
		CreatedAt:  time.Now(),
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Toggle flips the task between todo and done. Any status other than
// done counts as todo and flips to done.
func (service *TaskService) Toggle(companyID uint, taskID uint) (string, error) {
	task, err := service.tasks.FindByID(companyID, taskID)
	if err != nil {
		return "", asNotFound(err)
	}

	next := models.TaskStatusDone
	if task.Status == models.TaskStatusDone {
		next = models.TaskStatusTodo
	}
	if err := service.tasks.UpdateStatus(companyID, taskID, next); err != nil {
		return "", err
	}
	return next, nil
}
