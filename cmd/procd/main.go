package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	srv, err := NewServer()
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		// Mirrors the desktop shell's own exit hook: on shutdown, every
		// tracked process is killed rather than left orphaned.
		log.Printf("shutdown signal received, killing all tracked processes")
		srv.controller.Shutdown(defaultShutdownGrace)
		srv.Stop()
	}()

	log.Printf("procd listening at %v", srv.Addr())
	if err := srv.Serve(); err != nil && !isUseOfClosedConn(err) {
		log.Fatalf("failed to serve: %v", err)
	}
}

func isUseOfClosedConn(err error) bool {
	return strings.Contains(err.Error(), "use of closed network connection")
}
