package handlers

import (
	"context"
	"time"
)

const apiTimeout = 15 * time.Second

func withAPITimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}
