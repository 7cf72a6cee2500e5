package services

import (
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

// Board is the kanban view: tasks grouped by column.
type Board struct {
	Todo       []models.KanbanTask `json:"todo"`
	InProgress []models.KanbanTask `json:"in_progress"`
	Review     []models.KanbanTask `json:"review"`
	Done       []models.KanbanTask `json:"done"`
}

// MoveResult carries the outcome of a board move plus the status the task
// had before, so a client holding an optimistic snapshot can restore it if
// a later request fails.
type MoveResult struct {
	Task           *models.KanbanTask `json:"task"`
	PreviousStatus string             `json:"previous_status"`
}

type TaskService interface {
	CreateTask(task *models.KanbanTask) error
	GetTaskByID(id uint) (*models.KanbanTask, error)
	GetTasksByAssignee(userID uint) ([]models.KanbanTask, error)
	GetBoard() (*Board, error)
	MoveTask(taskID uint, toStatus string, movedBy uint) (*MoveResult, error)
	GetActivity(taskID uint) ([]models.TaskActivity, error)
	UpdateTask(task *models.KanbanTask) error
	DeleteTask(id uint) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) CreateTask(task *models.KanbanTask) error {
	if task.Status == "" {
		task.Status = string(models.TaskTodo)
	}
	if !validTaskStatus(task.Status) {
		return ErrInvalidTransition
	}
	return s.taskRepo.Create(task)
}

func (s *taskService) GetTaskByID(id uint) (*models.KanbanTask, error) {
	return s.taskRepo.GetByID(id)
}

func (s *taskService) GetTasksByAssignee(userID uint) ([]models.KanbanTask, error) {
	return s.taskRepo.GetByAssignee(userID)
}

func (s *taskService) GetBoard() (*Board, error) {
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}

	board := &Board{}
	for _, t := range tasks {
		switch models.TaskStatus(t.Status) {
		case models.TaskInProgress:
			board.InProgress = append(board.InProgress, t)
		case models.TaskReview:
			board.Review = append(board.Review, t)
		case models.TaskDone:
			board.Done = append(board.Done, t)
		default:
			board.Todo = append(board.Todo, t)
		}
	}
	return board, nil
}

// MoveTask validates the target column and records the transition. On a
// rejected move the task keeps its column and the error response includes
// nothing to roll back.
func (s *taskService) MoveTask(taskID uint, toStatus string, movedBy uint) (*MoveResult, error) {
	if !validTaskStatus(toStatus) {
		return nil, ErrInvalidTransition
	}

	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	previous := task.Status
	if previous == toStatus {
		return &MoveResult{Task: task, PreviousStatus: previous}, nil
	}

	if err := s.taskRepo.MoveStatus(taskID, previous, toStatus, movedBy); err != nil {
		return nil, err
	}

	moved, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	return &MoveResult{Task: moved, PreviousStatus: previous}, nil
}

func (s *taskService) GetActivity(taskID uint) ([]models.TaskActivity, error) {
	return s.taskRepo.GetActivity(taskID)
}

func (s *taskService) UpdateTask(task *models.KanbanTask) error {
	return s.taskRepo.Update(task)
}

func (s *taskService) DeleteTask(id uint) error {
	return s.taskRepo.Delete(id)
}

func validTaskStatus(status string) bool {
	switch models.TaskStatus(status) {
	case models.TaskTodo, models.TaskInProgress, models.TaskReview, models.TaskDone:
		return true
	}
	return false
}
