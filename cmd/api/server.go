package main

import (
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	app.Logger.Sugar().Infow("starting server", "addr", server.Addr, "env", app.Config.Env)

	return server.ListenAndServe()
}
