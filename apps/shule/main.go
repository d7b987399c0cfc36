package main

import (
	"log"
	"os"

	"github.com/trezcool/shule/client"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/services/logger"
	"github.com/trezcool/shule/storage/filestore"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stderr, "SHULE : ", log.LstdFlags)
	if core.Conf.Debug || core.Conf.RollbarToken == "" {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up local storage
	store, err := filestore.Open(core.Conf.DataDir)
	errAndDie(err)
	deviceID, err := store.DeviceID()
	errAndDie(err)

	// set up API client
	c, err := client.New(&client.Options{
		Store:    store,
		Logger:   logger,
		DeviceID: deviceID,
		OnAuthFailure: func() {
			logger.Warn("session expired; please login again")
		},
	})
	errAndDie(err)

	// start CLI
	cli := commandLine{
		client: c,
		store:  store,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
