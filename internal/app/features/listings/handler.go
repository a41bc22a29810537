// internal/app/features/listings/handler.go
package listings

import (
	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/catalog"
	"github.com/dalemusser/wandernext/internal/app/store/travellog"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog   *catalog.Store
	TravelLog *travellog.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(cat *catalog.Store, tl *travellog.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:   cat,
		TravelLog: tl,
		ErrLog:    errLog,
		Log:       logger,
	}
}
