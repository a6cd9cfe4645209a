package repo

import (
	"github.com/pokercds/pokercds/internal/pg"
	"github.com/pokercds/pokercds/internal/reconcile"
	gamerepo "github.com/pokercds/pokercds/internal/repo/game-repo"
	memberrepo "github.com/pokercds/pokercds/internal/repo/member-repo"
	sessionrepo "github.com/pokercds/pokercds/internal/repo/session-repo"
	"github.com/pokercds/pokercds/internal/service/authservice"
	"github.com/pokercds/pokercds/internal/service/gameservice"
	"github.com/pokercds/pokercds/internal/service/memberservice"
)

type Repositories struct {
	AuthRepo    authservice.Repo
	MemberRepo  memberservice.Repo
	GameRepo    gameservice.GameRepo
	SessionRepo gameservice.SessionRepo
	GameMembers gameservice.MemberRepo

	RecentGames  reconcile.GameRepo
	GameSessions reconcile.SessionRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	memberRepo := memberrepo.New(conn)
	gameRepo := gamerepo.New(conn)
	sessionRepo := sessionrepo.New(conn, txManager)

	return &Repositories{
		AuthRepo:     memberRepo,
		MemberRepo:   memberRepo,
		GameRepo:     gameRepo,
		SessionRepo:  sessionRepo,
		GameMembers:  memberRepo,
		RecentGames:  gameRepo,
		GameSessions: sessionRepo,
	}
}
