package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kv-go/internal/config"
	"kv-go/internal/server"
	"kv-go/internal/store"
)

var (
	configFile = flag.String("config-file", "", "Optional TOML config file")
	addr       = flag.String("addr", "", "Host and port to listen on (overrides the config file, default \":8080\")")
)

func loadConfig() config.Config {
	c := config.Default()
	if *configFile != "" {
		var err error
		c, err = config.ParseFile(*configFile)
		if err != nil {
			log.Fatalf("Error parsing config %q: %v", *configFile, err)
		}
	}
	if *addr != "" {
		c.Addr = *addr
	}
	if err := c.Validate(); err != nil {
		log.Fatal(err)
	}
	return c
}

func main() {
	flag.Parse()
	c := loadConfig()

	kv := store.NewKeyValueStore()
	srv := server.New(c.Addr, kv)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Printf("received %v, shutting down with %d keys in memory", sig, kv.Len())
		srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, server.ErrServerClosed) {
		log.Fatal("error listening:", err)
	}
}
