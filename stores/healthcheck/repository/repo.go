package repository

import (
	"github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/domain"
	hcdomain "github.com/estatemint/goapi/domain/healthcheck"
)

type impl struct {
	backend domain.EthBackend
}

// New creates the repository layer of healthcheck backed by the rpc node
func New(backend domain.EthBackend) hcdomain.HealthCheckRepo {
	return &impl{
		backend: backend,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	if _, err := im.backend.BlockNumber(context); err != nil {
		context.WithField("err", err).Error("backend.BlockNumber failed")
		return err
	}
	return nil
}
