package service

import (
	"strings"

	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
)

const ServiceName = "advisor"

// Init 注册缓存模块以及前后端组件
func Init(app pitaya.Pitaya, advisor *Advisor) error {
	if advisor.cache != nil {
		if err := app.RegisterModule(advisor.cache, "analysisCache"); err != nil {
			return err
		}
	}
	app.Register(NewHandler(advisor),
		component.WithName(ServiceName),
		component.WithNameFunc(strings.ToLower),
	)
	app.RegisterRemote(NewRemote(advisor),
		component.WithName(ServiceName),
		component.WithNameFunc(strings.ToLower),
	)
	return nil
}
