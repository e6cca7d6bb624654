package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rybergy/apollo/internal/config"
	"github.com/rybergy/apollo/internal/server/game"
	httpserver "github.com/rybergy/apollo/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start()
}

func runServe(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	webDir := fs.String("web", "", "directory with a web client to serve under /web/")
	open := fs.Bool("open", false, "open the web client in a browser")
	if err := fs.Parse(args); err != nil {
		return err
	}

	h := httpserver.NewHandler(game.NewManager(), cfg.Play)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewRouter(h, *webDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", *addr).Str("web", *webDir).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	if *open && *webDir != "" {
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr + "/web/")
		}()
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
