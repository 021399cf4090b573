// Package shutdown предоставляет корректное завершение приложения
// по сигналам SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"goodnotes/pkg/logger"
)

// Hook освобождает один ресурс при остановке.
type Hook func(ctx context.Context) error

const (
	logShutdownStarted  = "shutdown started"
	logShutdownTimedOut = "shutdown timed out"
	logHookFailed       = "shutdown hook failed"
)

// Wait блокируется до SIGINT/SIGTERM или отмены ctx,
// затем выполняет хуки параллельно в пределах timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()
	Run(ctx, timeout, hooks...)
}

// Run выполняет хуки параллельно и ждет их завершения не дольше timeout.
// Возвращает false, если timeout истек раньше.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) bool {
	log := logger.Log(ctx)
	log.Info(ctx, logShutdownStarted, zap.Int("hooks", len(hooks)))

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(ctx, logHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-hookCtx.Done():
		log.Warn(ctx, logShutdownTimedOut, zap.Duration("timeout", timeout))
		return false
	}
}
