package service

import (
	"errors"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/repository/sqlite"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo *sqlite.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{repo: &sqlite.UserRepository{DB: db}}
}

// Register creates a pending account with the base role. Duplicate emails
// surface as gorm.ErrDuplicatedKey.
func (s *UserService) Register(name, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           model.RoleUser,
		ApprovalStatus: model.ApprovalPending,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a token. Guest rows have no
// password and can never log in, regardless of what is submitted.
func (s *UserService) Login(email, password string) (string, *model.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.IsGuest {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.IsBanned {
		return "", nil, ErrBanned
	}

	token, err := pkg.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) Get(id uint64) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *UserService) List() ([]model.User, error) {
	return s.repo.List()
}

// CreateUser is the admin path: any role, immediately approved.
func (s *UserService) CreateUser(name, email, password, role string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		ApprovalStatus: model.ApprovalApproved,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

type ProfileUpdate struct {
	Name         *string
	Bio          *string
	LinkedinURL  *string
	TwitterURL   *string
	WebsiteURL   *string
	ProfileImage *string
}

func (s *UserService) UpdateProfile(id uint64, upd ProfileUpdate) (*model.User, error) {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Bio != nil {
		fields["bio"] = *upd.Bio
	}
	if upd.LinkedinURL != nil {
		fields["linkedin_url"] = *upd.LinkedinURL
	}
	if upd.TwitterURL != nil {
		fields["twitter_url"] = *upd.TwitterURL
	}
	if upd.WebsiteURL != nil {
		fields["website_url"] = *upd.WebsiteURL
	}
	if upd.ProfileImage != nil {
		fields["profile_image"] = *upd.ProfileImage
	}
	if len(fields) > 0 {
		if err := s.repo.UpdateProfile(id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// ChangeRole rejects an admin demoting themselves.
func (s *UserService) ChangeRole(actorID, targetID uint64, role string) error {
	if actorID == targetID {
		return ErrSelfAction
	}
	if err := s.mustExist(targetID); err != nil {
		return err
	}
	return s.repo.UpdateRole(targetID, role)
}

func (s *UserService) SetApprovalStatus(targetID uint64, status string) error {
	if err := s.mustExist(targetID); err != nil {
		return err
	}
	return s.repo.UpdateApprovalStatus(targetID, status)
}

// SetBan rejects an admin banning themselves.
func (s *UserService) SetBan(actorID, targetID uint64, banned bool) error {
	if actorID == targetID {
		return ErrSelfAction
	}
	if err := s.mustExist(targetID); err != nil {
		return err
	}
	return s.repo.UpdateBan(targetID, banned)
}

// Delete rejects an admin deleting themselves. Owned questions, answers
// and reviews follow the foreign-key policy.
func (s *UserService) Delete(actorID, targetID uint64) error {
	if actorID == targetID {
		return ErrSelfAction
	}
	if err := s.mustExist(targetID); err != nil {
		return err
	}
	return s.repo.Delete(targetID)
}

func (s *UserService) mustExist(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
