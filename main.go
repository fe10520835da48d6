/*
Headless demo entrypoint: runs the testbed game, which renders the rotating
tile scene through the software pipeline and writes PNG frames.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/eabellows/chickpea/engine"
	"github.com/eabellows/chickpea/testbed"
)

func main() {
	tb := testbed.NewTestGame()

	if cfg, err := engine.LoadApplicationConfig("chickpea.toml"); err == nil {
		tb.ApplicationConfig = cfg
	}

	eng, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = eng.Shutdown()
	}()

	// run engine
	if err := eng.Run(); err != nil {
		panic(err)
	}

	_ = eng.Shutdown()
}
