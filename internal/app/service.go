package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"time"

	"github.com/vibe-cart/internal/logger"

	"go.uber.org/zap"
)

// Service 可运行服务（HTTP 接口、队列 worker）
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 按注册顺序启动服务；任一服务退出或上下文取消后，
// 逆序停止全部服务再返回。
type Runner struct {
	services    []Service
	log         *zap.SugaredLogger
	stopTimeout time.Duration
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// RunWithOptions 安装信号处理并运行到所有服务停止
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	runner.log = opts.Logger
	runner.stopTimeout = opts.ShutdownTimeout

	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx)
}

// Run 运行全部服务，返回首个非取消错误
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	log := r.log
	if log == nil {
		log = logger.S()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		if svc == nil {
			return errors.New("service is nil")
		}
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			log.Infow("service_start", "service", svc.Name())
			if err := svc.Start(runCtx); err != nil {
				errCh <- fmt.Errorf("%s: %w", svc.Name(), err)
				return
			}
			log.Infow("service_exit", "service", svc.Name())
			errCh <- nil
		}(svc)
	}

	var runErr error
	select {
	case <-runCtx.Done():
		runErr = runCtx.Err()
	case err := <-errCh:
		runErr = err
	}
	cancel()

	stopTimeout := r.stopTimeout
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	// 逆序停止：先停外层接口，再停内层消费者
	for i := len(r.services) - 1; i >= 0; i-- {
		svc := r.services[i]
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
	wg.Wait()

	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}
