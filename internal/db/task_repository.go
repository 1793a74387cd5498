package db

import (
	"github.com/fieldopshq/fieldops/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) FindByID(companyID uint, taskID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.Scopes(forCompany(companyID)).First(&task, taskID).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (repo *TaskRepository) UpdateStatus(companyID uint, taskID uint, status string) error {
	return repo.database.Model(&models.Task{}).
		Scopes(forCompany(companyID)).
		Where("id = ?", taskID).
		Update("status", status).Error
}

func (repo *TaskRepository) ListNewestFirst(companyID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Scopes(forCompany(companyID)).
		Order("id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
