package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trezcool/shule/api"
	"github.com/trezcool/shule/core"
)

// devserver runs the reference backend with the demo fixture accounts.
// Point the client at it with DEV_BASEURL=http://localhost:8000/v1.
func main() {
	app := api.NewServer(
		&api.Options{
			Addr:     core.Conf.ServerAddr,
			Accounts: api.DemoAccounts(),
		},
	)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			log.Fatal(err)
		}
	}()

	app.Start()
}
