package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

// QuestionRow is a question joined with its author's display fields.
// The join is LEFT so questions whose author was deleted still list.
type QuestionRow struct {
	model.Question
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
}

// MyQuestionRow is a question with its answer count, for profile pages.
type MyQuestionRow struct {
	model.Question
	AnswerCount int64 `json:"answer_count"`
}

const questionSelect = "questions.*, users.name AS author_name, users.role AS author_role"

func (r *QuestionRepository) List() ([]QuestionRow, error) {
	var rows []QuestionRow
	err := r.DB.Table("questions").
		Select(questionSelect).
		Joins("LEFT JOIN users ON users.id = questions.user_id").
		Order("questions.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepository) Search(term string) ([]QuestionRow, error) {
	like := "%" + term + "%"
	var rows []QuestionRow
	err := r.DB.Table("questions").
		Select(questionSelect).
		Joins("LEFT JOIN users ON users.id = questions.user_id").
		Where("questions.title LIKE ? OR questions.details LIKE ?", like, like).
		Order("questions.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepository) FindByID(id uint64) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// FindRowByID scans into a zero row when the id is absent; callers treat
// row.ID == 0 as not found.
func (r *QuestionRepository) FindRowByID(id uint64) (*QuestionRow, error) {
	var row QuestionRow
	err := r.DB.Table("questions").
		Select(questionSelect).
		Joins("LEFT JOIN users ON users.id = questions.user_id").
		Where("questions.id = ?", id).
		Scan(&row).Error
	return &row, err
}

func (r *QuestionRepository) ListByUser(userID uint64) ([]MyQuestionRow, error) {
	var rows []MyQuestionRow
	err := r.DB.Table("questions").
		Select("questions.*, (SELECT COUNT(*) FROM answers a WHERE a.question_id = questions.id) AS answer_count").
		Where("questions.user_id = ?", userID).
		Order("questions.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) UpdateStatus(id uint64, status string) error {
	return r.DB.Model(&model.Question{}).Where("id = ?", id).Update("status", status).Error
}

func (r *QuestionRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
