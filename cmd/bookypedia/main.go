package main

import (
	"context"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("bookypedia: %s", err)
	}
}
