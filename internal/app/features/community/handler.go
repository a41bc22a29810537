// internal/app/features/community/handler.go
package community

import (
	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/forum"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"go.uber.org/zap"
)

type Handler struct {
	Forum    *forum.Store
	Identity *identity.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(f *forum.Store, ids *identity.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Forum:    f,
		Identity: ids,
		ErrLog:   errLog,
		Log:      logger,
	}
}
