// ABOUTME: URL launcher opening navigation views via the host platform
// ABOUTME: Default-handler attempt first, then a bounded process fallback
package maps

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Launcher opens a URL on the local host. Implementations must return
// an error rather than block; the provider turns launch failure into a
// manual_required outcome.
type Launcher interface {
	OpenURL(ctx context.Context, url string) error
}

// SystemLauncher opens URLs with the platform's default handler. The
// first attempt fires the handler without waiting; if the handler
// cannot even be started, a second attempt runs it under a bounded
// timeout so a hung helper can never stall the request.
type SystemLauncher struct {
	timeout time.Duration
	logger  *zap.Logger
	goos    string
}

// NewSystemLauncher creates a launcher with the given fallback timeout.
func NewSystemLauncher(timeout time.Duration, logger *zap.Logger) *SystemLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemLauncher{timeout: timeout, logger: logger, goos: runtime.GOOS}
}

func (l *SystemLauncher) OpenURL(ctx context.Context, url string) error {
	name, args := l.handlerCommand(url)

	// Default-handler attempt: start and detach, like a browser open.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err == nil {
		go func() { _ = cmd.Wait() }()
		return nil
	} else {
		l.logger.Debug("default handler start failed, trying bounded run",
			zap.String("handler", name), zap.Error(err))
	}

	// Process fallback: same handler, but supervised with a timeout.
	runCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	fallback := exec.CommandContext(runCtx, name, args...)
	if err := fallback.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("launch timed out after %s", l.timeout)
		}
		return fmt.Errorf("launch failed: %w", err)
	}
	return nil
}

// handlerCommand selects the platform launcher invocation.
func (l *SystemLauncher) handlerCommand(url string) (string, []string) {
	switch l.goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default: // linux and the BSDs
		return "xdg-open", []string{url}
	}
}
