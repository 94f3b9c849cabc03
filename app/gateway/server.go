package gateway

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vknowable/namada-ping-middleware/app/gateway/controller"
	"github.com/vknowable/namada-ping-middleware/app/gateway/types"
	"github.com/vknowable/namada-ping-middleware/pkg/utils"
)

// NewServer builds the HTTP server for app and stores it on app.Server.
func NewServer(app *types.App) error {
	ctler := controller.NewController(app)
	router, err := ctler.NewRouter()
	if err != nil {
		return err
	}

	// use <ip>:<port> to bind to a specific interface or :<port> to bind to all interfaces
	addr := utils.Env("ADDR", ":1317")

	app.Server = &http.Server{Addr: addr, Handler: controller.WithCORS(router)}
	app.Logger.Info("Starting server", zap.String("addr", addr))

	return nil
}
