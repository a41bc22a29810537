package about_test

import (
	"testing"

	"github.com/dalemusser/wandernext/internal/app/features/about"
	"github.com/dalemusser/wandernext/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	if about.NewHandler(zap.NewNop()) == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeAbout_Renders(t *testing.T) {
	handler := about.NewHandler(zap.NewNop())

	req := testutil.NewRequest("GET", "/about")
	rec := testutil.NewRecorder()

	testutil.ServeWithRecover(handler.ServeAbout, rec, req)
}
