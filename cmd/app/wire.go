//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/leetstats/internal/bootstrap"
	"github.com/yanqian/leetstats/internal/domain/profilestats"
	"github.com/yanqian/leetstats/internal/infra/config"
	"github.com/yanqian/leetstats/internal/infra/leetcode"
	httpiface "github.com/yanqian/leetstats/internal/interface/http"
	"github.com/yanqian/leetstats/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideLeetCodeClient,
		profilestats.NewService,
		wire.Bind(new(profilestats.Client), new(*leetcode.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
