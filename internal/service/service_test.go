package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pokercds/pokercds/internal/repo"
	"github.com/pokercds/pokercds/internal/service/authservice"
	"github.com/pokercds/pokercds/internal/service/gameservice"
	"github.com/pokercds/pokercds/internal/service/memberservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthRepo := authservice.NewMockRepo(ctrl)
	mockMemberRepo := memberservice.NewMockRepo(ctrl)
	mockGameRepo := gameservice.NewMockGameRepo(ctrl)
	mockSessionRepo := gameservice.NewMockSessionRepo(ctrl)
	mockGameMembers := gameservice.NewMockMemberRepo(ctrl)

	repos := &repo.Repositories{
		AuthRepo:    mockAuthRepo,
		MemberRepo:  mockMemberRepo,
		GameRepo:    mockGameRepo,
		SessionRepo: mockSessionRepo,
		GameMembers: mockGameMembers,
	}

	services := New(repos)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.MemberService)
	assert.NotNil(t, services.GameService)
	assert.NotNil(t, services.SessionService)

	// games and sessions share the one game service instance
	assert.Same(t, services.GameService, services.SessionService)
}
