package service

import (
	"github.com/pokercds/pokercds/internal/handlers/auth"
	"github.com/pokercds/pokercds/internal/handlers/games"
	"github.com/pokercds/pokercds/internal/handlers/members"
	"github.com/pokercds/pokercds/internal/handlers/sessions"

	pkgauth "github.com/pokercds/pokercds/pkg/auth"

	"github.com/pokercds/pokercds/internal/repo"
	authservice "github.com/pokercds/pokercds/internal/service/authservice"
	gameservice "github.com/pokercds/pokercds/internal/service/gameservice"
	memberservice "github.com/pokercds/pokercds/internal/service/memberservice"
)

type Services struct {
	AuthService    auth.Service
	MemberService  members.Service
	GameService    games.Service
	SessionService sessions.Service
}

func New(repo *repo.Repositories) *Services {
	authService := authservice.New(repo.AuthRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	memberService := memberservice.New(repo.MemberRepo, &pkgauth.HashService{})
	gameService := gameservice.New(repo.GameRepo, repo.SessionRepo, repo.GameMembers)

	return &Services{
		AuthService:    authService,
		MemberService:  memberService,
		GameService:    gameService,
		SessionService: gameService,
	}
}
