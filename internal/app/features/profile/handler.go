// internal/app/features/profile/handler.go
package profile

import (
	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"go.uber.org/zap"
)

type Handler struct {
	Identity *identity.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(ids *identity.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Identity: ids,
		ErrLog:   errLog,
		Log:      logger,
	}
}
