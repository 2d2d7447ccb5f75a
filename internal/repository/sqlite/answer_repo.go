package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type AnswerRepository struct {
	DB *gorm.DB
}

type AnswerRow struct {
	model.Answer
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
}

// MyAnswerRow is an answer with its question's title, for profile pages.
type MyAnswerRow struct {
	model.Answer
	QuestionTitle string `json:"question_title"`
}

// ListByQuestion returns official answers first, then chronological.
func (r *AnswerRepository) ListByQuestion(questionID uint64) ([]AnswerRow, error) {
	var rows []AnswerRow
	err := r.DB.Table("answers").
		Select("answers.*, users.name AS author_name, users.role AS author_role").
		Joins("LEFT JOIN users ON users.id = answers.user_id").
		Where("answers.question_id = ?", questionID).
		Order("answers.is_official DESC, answers.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnswerRepository) ListByUser(userID uint64) ([]MyAnswerRow, error) {
	var rows []MyAnswerRow
	err := r.DB.Table("answers").
		Select("answers.*, questions.title AS question_title").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ?", userID).
		Order("answers.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *AnswerRepository) Create(a *model.Answer) error {
	return r.DB.Create(a).Error
}
