package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"AIGov_Community/internal/config"
	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/repository/sqlite"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	db, err := sqlite.Open(filepath.Join(dir, "test.sqlite"))
	require.NoError(t, err)
	require.NoError(t, sqlite.AutoMigrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })

	pkg.SetSecret("test_secret")
	cfg := &config.Config{
		Port:           "0",
		JWTSecret:      "test_secret",
		AllowedOrigins: []string{"http://localhost:5173"},
		UploadDir:      filepath.Join(dir, "uploads"),
	}
	require.NoError(t, pkg.EnsureDir(cfg.UploadDir))

	return InitRouter(db, cfg), db, cfg
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Name:           strings.Split(email, "@")[0],
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		ApprovalStatus: model.ApprovalApproved,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func tokenFor(t *testing.T, u *model.User) string {
	t.Helper()
	tok, err := pkg.GenerateToken(u.ID, u.Role)
	require.NoError(t, err)
	return tok
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, method, path string, form url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestRegisterAndLogin(t *testing.T) {
	r, db, _ := newTestEnv(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name": "New User", "email": "new@example.com", "password": "longenough",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var u model.User
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&u).Error)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.Equal(t, model.ApprovalPending, u.ApprovalStatus)

	// duplicate email comes back as a conflict, not a 500
	w = doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Other", "email": "new@example.com", "password": "longenough",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// short password is rejected by binding
	w = doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Short", "email": "short@example.com", "password": "tiny",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "new@example.com", "password": "longenough",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email)

	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "new@example.com", "password": "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBannedUserCannotLogin(t *testing.T) {
	r, db, _ := newTestEnv(t)

	u := createUser(t, db, "banned@example.com", model.RoleMember)
	require.NoError(t, db.Model(u).Update("is_banned", true).Error)

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "banned@example.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMe(t *testing.T) {
	r, db, _ := newTestEnv(t)
	u := createUser(t, db, "me@example.com", model.RoleMember)

	w := doJSON(r, http.MethodGet, "/api/auth/me", nil, tokenFor(t, u))
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	decode(t, w, &got)
	assert.Equal(t, "me@example.com", got.Email)
	assert.NotContains(t, w.Body.String(), "password_hash")

	w = doJSON(r, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/auth/me", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func seedResources(t *testing.T, db *gorm.DB) (pub, membersOnly, pending model.Resource) {
	t.Helper()
	pub = model.Resource{Title: "Public Guide", Description: "d", Type: "guide", Access: model.AccessPublic, Status: model.ResourceStatusApproved}
	membersOnly = model.Resource{Title: "Members Brief", Description: "d", Type: "article", Access: model.AccessMembersOnly, Status: model.ResourceStatusApproved}
	pending = model.Resource{Title: "Pending Paper", Description: "d", Type: "whitepaper", Access: model.AccessPublic, Status: model.ResourceStatusPending}
	require.NoError(t, db.Create(&pub).Error)
	require.NoError(t, db.Create(&membersOnly).Error)
	require.NoError(t, db.Create(&pending).Error)
	return
}

func listTitles(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var rows []model.Resource
	decode(t, w, &rows)
	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	return titles
}

func TestResourceVisibility(t *testing.T) {
	r, db, _ := newTestEnv(t)
	_, membersOnly, pending := seedResources(t, db)

	member := createUser(t, db, "member@example.com", model.RoleMember)
	plain := createUser(t, db, "plain@example.com", model.RoleUser)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	// anonymous listing: approved public rows only
	w := doJSON(r, http.MethodGet, "/api/resources", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	titles := listTitles(t, w)
	assert.Contains(t, titles, "Public Guide")
	assert.NotContains(t, titles, "Members Brief")
	assert.NotContains(t, titles, "Pending Paper")

	// members also see the members-only tier
	w = doJSON(r, http.MethodGet, "/api/resources", nil, tokenFor(t, member))
	titles = listTitles(t, w)
	assert.Contains(t, titles, "Members Brief")
	assert.NotContains(t, titles, "Pending Paper")

	// admins see everything
	w = doJSON(r, http.MethodGet, "/api/resources", nil, tokenFor(t, admin))
	titles = listTitles(t, w)
	assert.Contains(t, titles, "Members Brief")
	assert.Contains(t, titles, "Pending Paper")

	// per-id gate matches the listing gate
	moPath := "/api/resources/" + itoa(membersOnly.ID)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, moPath, nil, "").Code)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, moPath, nil, tokenFor(t, plain)).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, moPath, nil, tokenFor(t, member)).Code)

	pendPath := "/api/resources/" + itoa(pending.ID)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, pendPath, nil, tokenFor(t, member)).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, pendPath, nil, tokenFor(t, admin)).Code)
}

func TestResourceDownloadGateAndCount(t *testing.T) {
	r, db, _ := newTestEnv(t)
	pub, membersOnly, _ := seedResources(t, db)
	member := createUser(t, db, "member@example.com", model.RoleMember)

	w := doJSON(r, http.MethodPost, "/api/resources/"+itoa(pub.ID)+"/download", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/api/resources/"+itoa(pub.ID)+"/download", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Resource
	require.NoError(t, db.First(&got, pub.ID).Error)
	assert.EqualValues(t, 2, got.DownloadCount)

	// the gate runs before the counter
	w = doJSON(r, http.MethodPost, "/api/resources/"+itoa(membersOnly.ID)+"/download", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	got = model.Resource{}
	require.NoError(t, db.First(&got, membersOnly.ID).Error)
	assert.EqualValues(t, 0, got.DownloadCount)

	w = doJSON(r, http.MethodPost, "/api/resources/"+itoa(membersOnly.ID)+"/download", nil, tokenFor(t, member))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResourceSubmissionPolicy(t *testing.T) {
	r, db, _ := newTestEnv(t)

	uni := createUser(t, db, "uni@example.edu", model.RoleUniversity)
	company := createUser(t, db, "co@example.com", model.RoleCompany)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	plain := createUser(t, db, "plain@example.com", model.RoleUser)

	form := url.Values{"title": {"Study"}, "description": {"desc"}, "type": {"article"}}

	w := doForm(r, http.MethodPost, "/api/resources", form, tokenFor(t, uni))
	require.Equal(t, http.StatusCreated, w.Code)
	var res model.Resource
	decode(t, w, &res)
	assert.Equal(t, "whitepaper", res.Type)
	assert.Equal(t, model.ResourceStatusPending, res.Status)
	require.NotNil(t, res.SubmittedBy)
	assert.Equal(t, uni.ID, *res.SubmittedBy)

	w = doForm(r, http.MethodPost, "/api/resources", form, tokenFor(t, company))
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &res)
	assert.Equal(t, "product", res.Type)
	assert.Equal(t, model.ResourceStatusPending, res.Status)

	w = doForm(r, http.MethodPost, "/api/resources", form, tokenFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &res)
	assert.Equal(t, "article", res.Type)
	assert.Equal(t, model.ResourceStatusApproved, res.Status)

	w = doForm(r, http.MethodPost, "/api/resources", form, tokenFor(t, plain))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doForm(r, http.MethodPost, "/api/resources", form, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResourceApproveRoundTrip(t *testing.T) {
	r, db, _ := newTestEnv(t)
	uni := createUser(t, db, "uni@example.edu", model.RoleUniversity)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	form := url.Values{"title": {"Bias Audit"}, "description": {"campus study"}}
	w := doForm(r, http.MethodPost, "/api/resources", form, tokenFor(t, uni))
	require.Equal(t, http.StatusCreated, w.Code)
	var res model.Resource
	decode(t, w, &res)

	// invisible to the public until approved
	path := "/api/resources/" + itoa(res.ID)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, path, nil, "").Code)

	w = doJSON(r, http.MethodPatch, path+"/approve", nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &res)
	assert.Equal(t, "Bias Audit", res.Title)
	assert.Equal(t, model.ResourceStatusApproved, res.Status)
}

func TestResourceDeleteRemovesFile(t *testing.T) {
	r, db, cfg := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	diskName := "123-report.pdf"
	diskPath := filepath.Join(cfg.UploadDir, diskName)
	require.NoError(t, os.WriteFile(diskPath, []byte("pdf bytes"), 0o644))

	res := model.Resource{Title: "With File", Description: "d", Type: "guide", Access: model.AccessPublic, Status: model.ResourceStatusApproved, FilePath: "/uploads/" + diskName}
	require.NoError(t, db.Create(&res).Error)

	w := doJSON(r, http.MethodDelete, "/api/resources/"+itoa(res.ID), nil, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	_, err := os.Stat(diskPath)
	assert.True(t, os.IsNotExist(err))
	assert.ErrorIs(t, db.First(&model.Resource{}, res.ID).Error, gorm.ErrRecordNotFound)

	// deleting a row whose file is already gone still succeeds
	res2 := model.Resource{Title: "Ghost File", Description: "d", Type: "guide", Access: model.AccessPublic, Status: model.ResourceStatusApproved, FilePath: "/uploads/never-existed.pdf"}
	require.NoError(t, db.Create(&res2).Error)
	w = doJSON(r, http.MethodDelete, "/api/resources/"+itoa(res2.ID), nil, tokenFor(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuestQuestionFlow(t *testing.T) {
	r, db, _ := newTestEnv(t)

	// no auth and no email
	w := doJSON(r, http.MethodPost, "/api/questions", gin.H{"title": "Anonymous?"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/questions", gin.H{
		"title": "What counts as high risk?", "details": "EU AI Act annex III", "email": "guest@example.com", "name": "Guest One",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var guest model.User
	require.NoError(t, db.Where("email = ?", "guest@example.com").First(&guest).Error)
	assert.True(t, guest.IsGuest)
	assert.Empty(t, guest.PasswordHash)

	// a second question reuses the same guest row
	w = doJSON(r, http.MethodPost, "/api/questions", gin.H{
		"title": "Follow-up question", "email": "guest@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Model(&model.User{}).Where("email = ?", "guest@example.com").Count(&count)
	assert.EqualValues(t, 1, count)

	// guest accounts cannot log in
	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "guest@example.com", "password": "",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email": "guest@example.com", "password": "anything",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQuestionAnswersAndStatus(t *testing.T) {
	r, db, _ := newTestEnv(t)
	member := createUser(t, db, "member@example.com", model.RoleMember)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	w := doJSON(r, http.MethodPost, "/api/questions", gin.H{"title": "Scoping an inventory"}, tokenFor(t, member))
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint64 `json:"id"`
	}
	decode(t, w, &created)

	// member answer is not official and leaves the question open
	w = doJSON(r, http.MethodPost, "/api/questions/"+itoa(created.ID)+"/answers", gin.H{"content": "Start narrow."}, tokenFor(t, member))
	require.Equal(t, http.StatusCreated, w.Code)
	var ans model.Answer
	decode(t, w, &ans)
	assert.False(t, ans.IsOfficial)

	var q model.Question
	require.NoError(t, db.First(&q, created.ID).Error)
	assert.Equal(t, model.QuestionOpen, q.Status)

	// admin answer is official and flips the question to answered
	w = doJSON(r, http.MethodPost, "/api/questions/"+itoa(created.ID)+"/answers", gin.H{"content": "Official guidance."}, tokenFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &ans)
	assert.True(t, ans.IsOfficial)

	require.NoError(t, db.First(&q, created.ID).Error)
	assert.Equal(t, model.QuestionAnswered, q.Status)

	// detail embeds answers, official first
	w = doJSON(r, http.MethodGet, "/api/questions/"+itoa(created.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Answers []model.Answer `json:"answers"`
	}
	decode(t, w, &detail)
	require.Len(t, detail.Answers, 2)
	assert.True(t, detail.Answers[0].IsOfficial)
}

func TestQuestionDeleteOwnership(t *testing.T) {
	r, db, _ := newTestEnv(t)
	owner := createUser(t, db, "owner@example.com", model.RoleMember)
	other := createUser(t, db, "other@example.com", model.RoleMember)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	ask := func() uint64 {
		w := doJSON(r, http.MethodPost, "/api/questions", gin.H{"title": "Delete me"}, tokenFor(t, owner))
		require.Equal(t, http.StatusCreated, w.Code)
		var created struct {
			ID uint64 `json:"id"`
		}
		decode(t, w, &created)
		return created.ID
	}

	id := ask()
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodDelete, "/api/questions/"+itoa(id), nil, tokenFor(t, other)).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/api/questions/"+itoa(id), nil, tokenFor(t, owner)).Code)

	id = ask()
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/api/questions/"+itoa(id), nil, tokenFor(t, admin)).Code)
}

func TestQuestionSearchTooShort(t *testing.T) {
	r, _, _ := newTestEnv(t)
	w := doJSON(r, http.MethodGet, "/api/questions/search?q=a", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewUpsert(t *testing.T) {
	r, db, _ := newTestEnv(t)
	member := createUser(t, db, "member@example.com", model.RoleMember)
	plain := createUser(t, db, "plain@example.com", model.RoleUser)

	p := model.Product{Name: "GovernanceOS", Company: "Nordic AI Labs"}
	require.NoError(t, db.Create(&p).Error)
	path := "/api/products/" + itoa(p.ID) + "/reviews"

	w := doJSON(r, http.MethodPost, path, gin.H{"stars": 5, "review_text": "Great"}, tokenFor(t, member))
	require.Equal(t, http.StatusCreated, w.Code)

	// a repeat submission replaces, never duplicates
	w = doJSON(r, http.MethodPost, path, gin.H{"stars": 3, "review_text": "Revised"}, tokenFor(t, member))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&model.ProductReview{}).Where("product_id = ?", p.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var rev model.ProductReview
	require.NoError(t, db.Where("product_id = ? AND user_id = ?", p.ID, member.ID).First(&rev).Error)
	assert.Equal(t, 3, rev.Stars)
	assert.Equal(t, "Revised", rev.ReviewText)

	// stars outside 1..5 never reach the database
	for _, stars := range []int{0, 6} {
		w = doJSON(r, http.MethodPost, path, gin.H{"stars": stars}, tokenFor(t, member))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// unpaid users cannot review
	w = doJSON(r, http.MethodPost, path, gin.H{"stars": 4}, tokenFor(t, plain))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// missing product
	w = doJSON(r, http.MethodPost, "/api/products/99999/reviews", gin.H{"stars": 4}, tokenFor(t, member))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductAggregates(t *testing.T) {
	r, db, _ := newTestEnv(t)
	m1 := createUser(t, db, "m1@example.com", model.RoleMember)
	m2 := createUser(t, db, "m2@example.com", model.RoleExecutive)

	p := model.Product{Name: "AuditTrail"}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&model.ProductReview{ProductID: p.ID, UserID: m1.ID, Stars: 5}).Error)
	require.NoError(t, db.Create(&model.ProductReview{ProductID: p.ID, UserID: m2.ID, Stars: 4}).Error)

	w := doJSON(r, http.MethodGet, "/api/products/"+itoa(p.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		AvgRating   float64 `json:"avg_rating"`
		ReviewCount int64   `json:"review_count"`
	}
	decode(t, w, &detail)
	assert.InDelta(t, 4.5, detail.AvgRating, 0.001)
	assert.EqualValues(t, 2, detail.ReviewCount)
}

func TestAdminSelfActionsBlocked(t *testing.T) {
	r, db, _ := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	tok := tokenFor(t, admin)
	id := itoa(admin.ID)

	w := doJSON(r, http.MethodPatch, "/api/users/"+id+"/role", gin.H{"role": model.RoleUser}, tok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/users/"+id+"/ban", gin.H{"is_banned": true}, tok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/users/"+id, nil, tok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var got model.User
	require.NoError(t, db.First(&got, admin.ID).Error)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.False(t, got.IsBanned)
}

func TestUserManagement(t *testing.T) {
	r, db, _ := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	target := createUser(t, db, "target@example.com", model.RoleUser)
	plain := createUser(t, db, "plain@example.com", model.RoleUser)
	tok := tokenFor(t, admin)

	// listing is admin-only
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, "/api/users", nil, tokenFor(t, plain)).Code)
	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/api/users", nil, tok).Code)

	w := doJSON(r, http.MethodPatch, "/api/users/"+itoa(target.ID)+"/role", gin.H{"role": model.RoleMember}, tok)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.User
	require.NoError(t, db.First(&got, target.ID).Error)
	assert.Equal(t, model.RoleMember, got.Role)

	w = doJSON(r, http.MethodPatch, "/api/users/"+itoa(target.ID)+"/role", gin.H{"role": "superuser"}, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/users/"+itoa(target.ID)+"/approval_status", gin.H{"status": model.ApprovalRejected}, tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&got, target.ID).Error)
	assert.Equal(t, model.ApprovalRejected, got.ApprovalStatus)

	w = doJSON(r, http.MethodPatch, "/api/users/"+itoa(target.ID)+"/ban", gin.H{"is_banned": true}, tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&got, target.ID).Error)
	assert.True(t, got.IsBanned)

	w = doJSON(r, http.MethodDelete, "/api/users/"+itoa(target.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.ErrorIs(t, db.First(&model.User{}, target.ID).Error, gorm.ErrRecordNotFound)

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/api/users/99999", nil, tok).Code)
}

func TestAdminCreateUser(t *testing.T) {
	r, db, _ := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	w := doJSON(r, http.MethodPost, "/api/admin/users", gin.H{
		"name": "Exec", "email": "exec@example.com", "password": "longenough", "role": model.RoleExecutive,
	}, tokenFor(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	var u model.User
	require.NoError(t, db.Where("email = ?", "exec@example.com").First(&u).Error)
	assert.Equal(t, model.RoleExecutive, u.Role)
	assert.Equal(t, model.ApprovalApproved, u.ApprovalStatus)
}

func TestProfileUpdate(t *testing.T) {
	r, db, _ := newTestEnv(t)
	u := createUser(t, db, "profile@example.com", model.RoleMember)
	tok := tokenFor(t, u)

	w := doJSON(r, http.MethodPut, "/api/users/me/profile", gin.H{
		"bio": "Governance nerd", "linkedin_url": "https://linkedin.com/in/profile",
	}, tok)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.User
	require.NoError(t, db.First(&got, u.ID).Error)
	assert.Equal(t, "Governance nerd", got.Bio)
	// omitted fields are left alone
	assert.Equal(t, "profile", got.Name)
}

func TestEventLifecycle(t *testing.T) {
	r, db, _ := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	plain := createUser(t, db, "plain@example.com", model.RoleUser)
	tok := tokenFor(t, admin)

	w := doJSON(r, http.MethodPost, "/api/events", gin.H{
		"title": "Summit", "date": "2026-10-15", "location": "Online", "teams_link": "https://teams.example.com/x",
	}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var ev model.Event
	decode(t, w, &ev)
	assert.Equal(t, model.EventUpcoming, ev.Type)

	// missing required fields
	w = doJSON(r, http.MethodPost, "/api/events", gin.H{"title": "No date"}, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// non-admins cannot write
	w = doJSON(r, http.MethodPost, "/api/events", gin.H{
		"title": "Rogue", "date": "2026-01-01", "location": "Nowhere",
	}, tokenFor(t, plain))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// update preserves fields the caller omits
	w = doJSON(r, http.MethodPut, "/api/events/"+itoa(ev.ID), gin.H{"location": "Berlin"}, tok)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.Event
	require.NoError(t, db.First(&got, ev.ID).Error)
	assert.Equal(t, "Berlin", got.Location)
	assert.Equal(t, "Summit", got.Title)
	assert.Equal(t, "https://teams.example.com/x", got.TeamsLink)

	// listing orders by the date string ascending
	w = doJSON(r, http.MethodPost, "/api/events", gin.H{
		"title": "Earlier", "date": "2026-01-05", "location": "Online",
	}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/events", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var events []model.Event
	decode(t, w, &events)
	require.Len(t, events, 2)
	assert.Equal(t, "Earlier", events[0].Title)

	w = doJSON(r, http.MethodDelete, "/api/events/"+itoa(ev.ID), nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/api/events/"+itoa(ev.ID), nil, tok).Code)
}

func TestCategoryLifecycle(t *testing.T) {
	r, db, _ := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	tok := tokenFor(t, admin)

	w := doJSON(r, http.MethodPost, "/api/categories", gin.H{
		"name": "Risk Management", "slug": "risk-management",
	}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/categories", gin.H{
		"name": "Other Name", "slug": "risk-management",
	}, tok)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cats []model.Category
	decode(t, w, &cats)
	require.Len(t, cats, 1)

	w = doJSON(r, http.MethodDelete, "/api/categories/"+itoa(cats[0].ID), nil, tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeamRoutes(t *testing.T) {
	r, db, _ := newTestEnv(t)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	tok := tokenFor(t, admin)

	w := doJSON(r, http.MethodPost, "/api/team", gin.H{
		"name": "Dana Whitfield", "role": "Executive Director", "category": model.TeamLeadership,
	}, tok)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/team", gin.H{
		"name": "Ira Solanki", "role": "Security Advisor", "category": model.TeamSecurity,
	}, tok)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/team?category=security", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var members []model.TeamMember
	decode(t, w, &members)
	require.Len(t, members, 1)
	assert.Equal(t, "Ira Solanki", members[0].Name)

	w = doJSON(r, http.MethodGet, "/api/team?category=board", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaybookDownload(t *testing.T) {
	r, db, cfg := newTestEnv(t)
	member := createUser(t, db, "member@example.com", model.RoleMember)
	tok := tokenFor(t, member)

	dir := filepath.Join(cfg.UploadDir, "playbooks")
	require.NoError(t, pkg.EnsureDir(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rmf.pdf"), []byte("pdf bytes"), 0o644))

	pb := model.Playbook{Title: "RMF Starter", Framework: "NIST AI RMF", Category: "Guide", FilePath: "/uploads/playbooks/rmf.pdf", FileName: "rmf.pdf", FileType: "pdf"}
	require.NoError(t, db.Create(&pb).Error)

	// downloads require a login
	w := doJSON(r, http.MethodGet, "/api/playbooks/"+itoa(pb.ID)+"/download", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/playbooks/"+itoa(pb.ID)+"/download", nil, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pdf bytes", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "rmf.pdf")

	var got model.Playbook
	require.NoError(t, db.First(&got, pb.ID).Error)
	assert.EqualValues(t, 1, got.DownloadCount)

	// row without a backing file
	orphan := model.Playbook{Title: "Orphan", Framework: "ISO 42001", Category: "Guide", FilePath: "/uploads/playbooks/gone.pdf", FileName: "gone.pdf", FileType: "pdf"}
	require.NoError(t, db.Create(&orphan).Error)
	w = doJSON(r, http.MethodGet, "/api/playbooks/"+itoa(orphan.ID)+"/download", nil, tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestEnv(t)
	w := doJSON(r, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
