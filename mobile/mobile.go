package mobile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/server/game"
	httpserver "github.com/rybergy/apollo/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets, may be empty
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	h := httpserver.NewHandler(game.NewManager(), config.DefaultConfig().Play)
	router := httpserver.NewRouter(h, webDir)

	// Run in background so it doesn't block the host's UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, router); err != nil {
			log.Error().Err(err).Msg("mobile server")
		}
	}()
}
