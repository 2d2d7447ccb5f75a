package main

import (
	"os"

	"AIGov_Community/internal/config"
	"AIGov_Community/internal/model"
	"AIGov_Community/internal/repository/sqlite"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	cfg := config.Load()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := sqlite.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	seedUsers(db)
	seedCategories(db)
	seedTeam(db)
	seedEvents(db)
	seedResources(db)
	seedQuestions(db)
	seedPlaybooks(db)
	seedProducts(db)

	if err := sqlite.Close(db); err != nil {
		logger.Error().Err(err).Msg("close database")
	}
	logger.Info().Msg("seed complete")
}

func hash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash password")
	}
	return string(h)
}

// upsertBy inserts rows, skipping any that collide on a unique column.
func upsertBy(db *gorm.DB, rows any) {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
		logger.Fatal().Err(err).Msg("seed insert")
	}
}

func seedUsers(db *gorm.DB) {
	upsertBy(db, &[]model.User{
		{Name: "Admin", Email: "admin@aigov.community", PasswordHash: hash("admin12345"), Role: model.RoleAdmin, ApprovalStatus: model.ApprovalApproved},
		{Name: "Morgan Reyes", Email: "morgan@aigov.community", PasswordHash: hash("member12345"), Role: model.RoleMember, ApprovalStatus: model.ApprovalApproved},
		{Name: "Dana Whitfield", Email: "dana@aigov.community", PasswordHash: hash("exec12345"), Role: model.RoleExecutive, ApprovalStatus: model.ApprovalApproved},
		{Name: "Prof. Elena Vasquez", Email: "elena@stateuni.edu", PasswordHash: hash("uni12345"), Role: model.RoleUniversity, ApprovalStatus: model.ApprovalApproved},
		{Name: "Nordic AI Labs", Email: "contact@nordicailabs.io", PasswordHash: hash("company12345"), Role: model.RoleCompany, ApprovalStatus: model.ApprovalApproved},
		{Name: "Sam Porter", Email: "sam@example.com", PasswordHash: hash("user12345"), Role: model.RoleUser, ApprovalStatus: model.ApprovalPending},
	})
}

func seedCategories(db *gorm.DB) {
	upsertBy(db, &[]model.Category{
		{Name: "Risk Management", Slug: "risk-management", Description: "Frameworks and practices for managing AI risk"},
		{Name: "Compliance", Slug: "compliance", Description: "Regulatory compliance and audit readiness"},
		{Name: "Ethics", Slug: "ethics", Description: "Responsible and ethical AI"},
		{Name: "Policy", Slug: "policy", Description: "AI policy and regulation updates"},
	})
}

func seedTeam(db *gorm.DB) {
	upsertBy(db, &[]model.TeamMember{
		{Name: "Dana Whitfield", Role: "Executive Director", Category: model.TeamLeadership, Description: "Leads the community's strategic direction."},
		{Name: "Morgan Reyes", Role: "Industrial Liaison", Category: model.TeamIndustrial, Description: "Connects member companies with governance practice."},
		{Name: "Ira Solanki", Role: "Security Advisor", Category: model.TeamSecurity, Description: "Advises on AI security and assurance."},
	})
}

func seedEvents(db *gorm.DB) {
	upsertBy(db, &[]model.Event{
		{Title: "AI Governance Summit 2026", Date: "Thursday, 15th October, 2026", Location: "Online", Type: model.EventUpcoming, Category: "summit", IsFeatured: true, TeamsLink: "https://teams.example.com/summit-2026"},
		{Title: "EU AI Act Readiness Workshop", Date: "Sunday, 20th September, 2026", Location: "Brussels", Type: model.EventUpcoming, Category: "workshop", Link: "https://events.example.com/eu-ai-act-workshop"},
		{Title: "Model Risk Roundtable", Date: "Tuesday, 12th May, 2026", Location: "Online", Type: model.EventPast, Category: "roundtable", RecordingURL: "https://videos.example.com/model-risk-roundtable"},
	})
}

func seedResources(db *gorm.DB) {
	var cat model.Category
	db.Where("slug = ?", "risk-management").First(&cat)

	var uni model.User
	db.Where("email = ?", "elena@stateuni.edu").First(&uni)

	rows := []model.Resource{
		{Title: "AI Risk Taxonomy", Description: "A shared vocabulary for classifying AI risks.", Type: "guide", Access: model.AccessPublic, Status: model.ResourceStatusApproved, ExternalLink: "https://docs.example.com/risk-taxonomy"},
		{Title: "Board Briefing: Generative AI", Description: "Executive briefing for board-level discussion.", Type: "article", Access: model.AccessMembersOnly, Status: model.ResourceStatusApproved},
		{Title: "Campus Bias Audit Study", Description: "University-submitted whitepaper awaiting review.", Type: "whitepaper", Access: model.AccessPublic, Status: model.ResourceStatusPending},
	}
	if cat.ID != 0 {
		for i := range rows {
			id := cat.ID
			rows[i].CategoryID = &id
		}
	}
	if uni.ID != 0 {
		id := uni.ID
		rows[2].SubmittedBy = &id
	}
	upsertBy(db, &rows)
}

func seedQuestions(db *gorm.DB) {
	var admin, member model.User
	db.Where("email = ?", "admin@aigov.community").First(&admin)
	db.Where("email = ?", "morgan@aigov.community").First(&member)

	var cat model.Category
	db.Where("slug = ?", "compliance").First(&cat)

	q := model.Question{Title: "How do we scope an AI inventory?", Details: "We are starting our EU AI Act gap analysis and are unsure which systems belong in scope.", Status: model.QuestionAnswered}
	if member.ID != 0 {
		id := member.ID
		q.UserID = &id
	}
	if cat.ID != 0 {
		id := cat.ID
		q.CategoryID = &id
	}
	if err := db.Create(&q).Error; err != nil {
		logger.Fatal().Err(err).Msg("seed question")
	}

	a := model.Answer{QuestionID: q.ID, UserID: admin.ID, Content: "Start with any system that makes or supports decisions about people, then widen from there.", IsOfficial: true}
	if err := db.Create(&a).Error; err != nil {
		logger.Fatal().Err(err).Msg("seed answer")
	}
}

func seedPlaybooks(db *gorm.DB) {
	upsertBy(db, &[]model.Playbook{
		{Title: "NIST AI RMF Starter Playbook", Brief: "Step-by-step adoption guide for the NIST AI Risk Management Framework.", Framework: "NIST AI RMF", Category: "Guide", FilePath: "/uploads/playbooks/nist-ai-rmf-starter.pdf", FileName: "nist-ai-rmf-starter.pdf", FileType: "pdf"},
		{Title: "ISO 42001 Gap Checklist", Brief: "Readiness checklist for an AI management system audit.", Framework: "ISO/IEC 42001", Category: "Checklist", FilePath: "/uploads/playbooks/iso-42001-gap-checklist.xlsx", FileName: "iso-42001-gap-checklist.xlsx", FileType: "xlsx"},
	})
}

func seedProducts(db *gorm.DB) {
	p := model.Product{Name: "GovernanceOS", Company: "Nordic AI Labs", Description: "Policy lifecycle and model registry platform.", DownloadLink: "https://nordicailabs.io/governanceos"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
		logger.Fatal().Err(err).Msg("seed product")
	}
	if p.ID == 0 {
		return
	}

	var member, exec model.User
	db.Where("email = ?", "morgan@aigov.community").First(&member)
	db.Where("email = ?", "dana@aigov.community").First(&exec)

	upsertBy(db, &[]model.ProductReview{
		{ProductID: p.ID, UserID: member.ID, Stars: 5, ReviewText: "The model registry saved us weeks of audit prep."},
		{ProductID: p.ID, UserID: exec.ID, Stars: 4, ReviewText: "Strong reporting, onboarding could be smoother."},
	})
}
