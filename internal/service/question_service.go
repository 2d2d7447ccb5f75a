package service

import (
	"errors"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

type QuestionService struct {
	repo       *sqlite.QuestionRepository
	answerRepo *sqlite.AnswerRepository
	userRepo   *sqlite.UserRepository
	catRepo    *sqlite.CategoryRepository
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{
		repo:       &sqlite.QuestionRepository{DB: db},
		answerRepo: &sqlite.AnswerRepository{DB: db},
		userRepo:   &sqlite.UserRepository{DB: db},
		catRepo:    &sqlite.CategoryRepository{DB: db},
	}
}

func (s *QuestionService) List() ([]sqlite.QuestionRow, error) {
	return s.repo.List()
}

func (s *QuestionService) Search(term string) ([]sqlite.QuestionRow, error) {
	return s.repo.Search(term)
}

// Get returns the question with its answers, official first.
func (s *QuestionService) Get(id uint64) (*sqlite.QuestionRow, []sqlite.AnswerRow, error) {
	row, err := s.repo.FindRowByID(id)
	if err != nil {
		return nil, nil, err
	}
	if row.ID == 0 {
		return nil, nil, ErrNotFound
	}
	answers, err := s.answerRepo.ListByQuestion(id)
	if err != nil {
		return nil, nil, err
	}
	return row, answers, nil
}

type AskInput struct {
	Title    string
	Details  string
	Email    string
	Name     string
	Category string
}

// Ask posts a question. Anonymous callers are resolved to a user row by
// email; an unknown email creates a login-incapable guest row. This is
// the only place identity is established outside registration.
func (s *QuestionService) Ask(userID uint64, in AskInput) (*model.Question, error) {
	if userID == 0 {
		if in.Email == "" {
			return nil, ErrEmailRequired
		}
		existing, err := s.userRepo.FindByEmail(in.Email)
		switch {
		case err == nil:
			userID = existing.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			name := in.Name
			if name == "" {
				name = "Guest"
			}
			guest := &model.User{
				Name:    name,
				Email:   in.Email,
				IsGuest: true,
			}
			if err := s.userRepo.Create(guest); err != nil {
				return nil, err
			}
			userID = guest.ID
		default:
			return nil, err
		}
	}

	q := &model.Question{
		Title:   in.Title,
		Details: in.Details,
		UserID:  &userID,
	}
	if in.Category != "" {
		if cat, err := s.catRepo.FindBySlugOrName(in.Category); err == nil {
			q.CategoryID = &cat.ID
		}
	}

	if err := s.repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Delete allows the owner or an admin.
func (s *QuestionService) Delete(actorID uint64, role string, id uint64) error {
	q, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	isOwner := q.UserID != nil && *q.UserID == actorID
	if !isOwner && role != model.RoleAdmin {
		return ErrForbidden
	}
	return s.repo.Delete(id)
}

func (s *QuestionService) SetStatus(id uint64, status string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *QuestionService) Answers(questionID uint64) ([]sqlite.AnswerRow, error) {
	if _, err := s.repo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.answerRepo.ListByQuestion(questionID)
}

// AddAnswer records an answer. Admin and executive answers are official
// and flip the question to answered.
func (s *QuestionService) AddAnswer(questionID, userID uint64, role, content string) (*model.Answer, error) {
	if _, err := s.repo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	answer := &model.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
		IsOfficial: role == model.RoleAdmin || role == model.RoleExecutive,
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}
	if answer.IsOfficial {
		if err := s.repo.UpdateStatus(questionID, model.QuestionAnswered); err != nil {
			logger.Warn().Err(err).Uint64("question_id", questionID).Msg("status not updated after official answer")
		}
	}
	return answer, nil
}

func (s *QuestionService) ListByUser(userID uint64) ([]sqlite.MyQuestionRow, error) {
	return s.repo.ListByUser(userID)
}

func (s *QuestionService) AnswersByUser(userID uint64) ([]sqlite.MyAnswerRow, error) {
	return s.answerRepo.ListByUser(userID)
}
