package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/notalone-dev/notalone/internal/domain"
)

// Fixed valid UUIDs for route params.
const (
	testStoryId   = "b2f7c8d0-4f1e-4e2a-9a3b-5c6d7e8f9a0b"
	testCommentId = "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
)

// Shared function-field mocks for the handler tests.

type MockStoryService struct {
	MockList   func(ctx context.Context) ([]domain.Story, error)
	MockCreate func(ctx context.Context, content string, isAnonymous bool, authorName string) (*domain.Story, error)
	MockDelete func(ctx context.Context, id, deletionToken string, isAdmin bool) error
}

func (m *MockStoryService) List(ctx context.Context) ([]domain.Story, error) {
	if m.MockList != nil {
		return m.MockList(ctx)
	}
	return nil, nil
}

func (m *MockStoryService) Create(ctx context.Context, content string, isAnonymous bool, authorName string) (*domain.Story, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, content, isAnonymous, authorName)
	}
	return &domain.Story{}, nil
}

func (m *MockStoryService) Delete(ctx context.Context, id, deletionToken string, isAdmin bool) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id, deletionToken, isAdmin)
	}
	return nil
}

type MockCommentService struct {
	MockList   func(ctx context.Context, storyId string) ([]domain.Comment, error)
	MockCreate func(ctx context.Context, storyId, content string, isAnonymous bool, authorName string) (*domain.Comment, error)
	MockDelete func(ctx context.Context, id string) error
}

func (m *MockCommentService) List(ctx context.Context, storyId string) ([]domain.Comment, error) {
	if m.MockList != nil {
		return m.MockList(ctx, storyId)
	}
	return nil, nil
}

func (m *MockCommentService) Create(ctx context.Context, storyId, content string, isAnonymous bool, authorName string) (*domain.Comment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, storyId, content, isAnonymous, authorName)
	}
	return &domain.Comment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id string) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id)
	}
	return nil
}

type MockReactionService struct {
	MockGet    func(ctx context.Context, storyId, userToken string) (*domain.ReactionSummary, error)
	MockToggle func(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error)
}

func (m *MockReactionService) Get(ctx context.Context, storyId, userToken string) (*domain.ReactionSummary, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, storyId, userToken)
	}
	return &domain.ReactionSummary{Counts: domain.ReactionCounts{}, UserReactions: []domain.ReactionKind{}}, nil
}

func (m *MockReactionService) Toggle(ctx context.Context, storyId, reactionType, userToken string) (string, domain.ReactionCounts, string, error) {
	if m.MockToggle != nil {
		return m.MockToggle(ctx, storyId, reactionType, userToken)
	}
	return "added", domain.ReactionCounts{}, userToken, nil
}

type MockAdminService struct {
	MockValidate func(candidate string) bool
}

func (m *MockAdminService) ValidatePassword(candidate string) bool {
	if m.MockValidate != nil {
		return m.MockValidate(candidate)
	}
	return false
}

type MockSession struct {
	MockNewToken func() (string, error)
	MockValidate func(tokenStr string) bool
}

func (m *MockSession) NewToken() (string, error) {
	if m.MockNewToken != nil {
		return m.MockNewToken()
	}
	return "session-token", nil
}

func (m *MockSession) Validate(tokenStr string) bool {
	if m.MockValidate != nil {
		return m.MockValidate(tokenStr)
	}
	return false
}

type MockHealthStorage struct {
	MockPing  func(ctx context.Context) error
	MockCount func(ctx context.Context) (int64, error)
}

func (m *MockHealthStorage) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

func (m *MockHealthStorage) CountStories(ctx context.Context) (int64, error) {
	if m.MockCount != nil {
		return m.MockCount(ctx)
	}
	return 0, nil
}

// passwordAdmin accepts exactly one password.
func passwordAdmin(password string) *MockAdminService {
	return &MockAdminService{MockValidate: func(candidate string) bool {
		return candidate != "" && candidate == password
	}}
}

// newTestRouter wires the handler's routes the way the production router does.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Post("/admin/verify", h.VerifyAdmin)
	r.Route("/stories", func(r chi.Router) {
		r.Get("/", h.GetStories)
		r.Post("/", h.CreateStory)
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", h.DeleteStory)
			r.Get("/comments", h.GetComments)
			r.Post("/comments", h.CreateComment)
			r.Get("/reactions", h.GetReactions)
			r.Post("/reactions", h.ToggleReaction)
		})
	})
	r.Delete("/comments/{id}", h.DeleteComment)
	return r
}
