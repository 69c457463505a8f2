// ABOUTME: Pipeline orchestrator sequencing oracle, validation, and dispatch
// ABOUTME: Every exit is a fully formed envelope; failure is data, not control flow
package nav

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/interpreter"
	"github.com/Z0909/heiha/internal/models"
)

// Oracle is the language-model boundary: best-effort structured intent
// and address validation, both fail-soft.
type Oracle interface {
	AnalyzeIntent(ctx context.Context, userInput string) *models.Intent
	ValidateAddress(ctx context.Context, address string) *models.AddressValidation
}

// Navigator dispatches a resolved request to a mapping provider.
type Navigator interface {
	ExecuteNavigation(ctx context.Context, id models.ProviderID, origin, destination string, mode models.TransportMode) *models.NavigationOutcome
}

// Orchestrator runs the request pipeline: intent analysis, address
// validation, provider dispatch. Dependencies are injected so tests
// can substitute stub oracles and navigators per case.
type Orchestrator struct {
	oracle    Oracle
	navigator Navigator
	logger    *zap.Logger
}

// NewOrchestrator wires the pipeline. A nil oracle is allowed: requests
// then take the heuristic interpreter path with no validation step.
func NewOrchestrator(oracle Oracle, navigator Navigator, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{oracle: oracle, navigator: navigator, logger: logger}
}

// OracleClient exposes the configured oracle; nil when none is set.
func (o *Orchestrator) OracleClient() Oracle {
	return o.oracle
}

// ProcessRequest runs the full pipeline for one free-text request.
// The returned envelope is always fully formed; early stops carry a
// step tag naming where the pipeline terminated.
func (o *Orchestrator) ProcessRequest(ctx context.Context, userInput string) *models.Envelope {
	requestID := uuid.New().String()
	logger := o.logger.With(zap.String("request_id", requestID))
	logger.Info("processing navigation request", zap.String("input", userInput))

	env := &models.Envelope{
		RequestID: requestID,
		UserInput: userInput,
	}

	if o.oracle == nil {
		return o.processDirect(ctx, env, logger, models.DefaultProvider, models.DefaultMode)
	}

	// Step 1: intent analysis.
	intent := o.oracle.AnalyzeIntent(ctx, userInput)
	env.IntentAnalysis = intent
	if intent.Error != "" {
		logger.Warn("pipeline stopped", zap.String("step", string(models.StepIntentAnalysis)), zap.String("cause", intent.Error))
		env.Step = models.StepIntentAnalysis
		env.Error = fmt.Sprintf("意图分析失败: %s", intent.Error)
		return env
	}

	// Step 2: both addresses must have been extracted. This is a
	// different stop from step 1: the oracle answered but came up empty.
	if intent.Origin == "" || intent.Destination == "" {
		logger.Warn("pipeline stopped", zap.String("step", string(models.StepAddressExtraction)))
		env.Step = models.StepAddressExtraction
		env.Error = "无法识别起点或终点地址"
		return env
	}

	if stopped := o.cancelled(ctx, env, logger); stopped {
		return env
	}

	// Step 3: validate both addresses.
	originValidation := o.oracle.ValidateAddress(ctx, intent.Origin)
	destinationValidation := o.oracle.ValidateAddress(ctx, intent.Destination)
	env.AddressValidation = &models.ValidationPair{
		Origin:      originValidation,
		Destination: destinationValidation,
	}

	if !originValidation.IsValid {
		logger.Warn("pipeline stopped", zap.String("step", string(models.StepAddressValidation)), zap.String("address", intent.Origin))
		env.Step = models.StepAddressValidation
		env.Error = fmt.Sprintf("起点地址无效: %s", intent.Origin)
		return env
	}
	if !destinationValidation.IsValid {
		logger.Warn("pipeline stopped", zap.String("step", string(models.StepAddressValidation)), zap.String("address", intent.Destination))
		env.Step = models.StepAddressValidation
		env.Error = fmt.Sprintf("终点地址无效: %s", intent.Destination)
		return env
	}

	if stopped := o.cancelled(ctx, env, logger); stopped {
		return env
	}

	// Steps 4-5: resolve provider and mode, dispatch with the
	// standardized addresses, never the raw extractions.
	provider := intent.Provider()
	mode := intent.Mode()
	origin := originValidation.StandardizedAddress
	destination := destinationValidation.StandardizedAddress

	logger.Info("dispatching navigation",
		zap.String("provider", string(provider)),
		zap.String("mode", string(mode)))

	outcome := o.navigator.ExecuteNavigation(ctx, provider, origin, destination, mode)

	// Step 6: assemble.
	env.NavigationExecution = outcome
	env.Success = outcome.Success
	env.Summary = &models.Summary{
		Origin:        origin,
		Destination:   destination,
		MapService:    provider,
		TransportMode: mode,
	}
	if !outcome.Success {
		if outcome.Error != "" {
			env.Error = outcome.Error
		} else {
			env.Error = "导航执行失败"
		}
	}

	logger.Info("navigation request finished", zap.Bool("success", env.Success))
	return env
}

// ProcessDirect skips the oracle entirely: the heuristic interpreter
// extracts the route and the provider is dispatched as-is. Used by the
// CLI --direct path and whenever no oracle is configured.
func (o *Orchestrator) ProcessDirect(ctx context.Context, userInput string, provider models.ProviderID, mode models.TransportMode) *models.Envelope {
	requestID := uuid.New().String()
	logger := o.logger.With(zap.String("request_id", requestID))

	env := &models.Envelope{
		RequestID: requestID,
		UserInput: userInput,
	}
	return o.processDirect(ctx, env, logger, provider, mode)
}

func (o *Orchestrator) processDirect(ctx context.Context, env *models.Envelope, logger *zap.Logger, provider models.ProviderID, mode models.TransportMode) *models.Envelope {
	route, err := interpreter.Parse(env.UserInput)
	if err != nil {
		logger.Warn("pipeline stopped", zap.String("step", string(models.StepAddressExtraction)), zap.Error(err))
		env.Step = models.StepAddressExtraction
		env.Error = "无法识别起点或终点地址"
		return env
	}

	if stopped := o.cancelled(ctx, env, logger); stopped {
		return env
	}

	logger.Info("dispatching navigation (direct)",
		zap.String("provider", string(provider)),
		zap.String("mode", string(mode)))

	outcome := o.navigator.ExecuteNavigation(ctx, provider, route.Origin, route.Destination, mode)

	env.NavigationExecution = outcome
	env.Success = outcome.Success
	env.Summary = &models.Summary{
		Origin:        route.Origin,
		Destination:   route.Destination,
		MapService:    provider,
		TransportMode: mode,
	}
	if !outcome.Success {
		if outcome.Error != "" {
			env.Error = outcome.Error
		} else {
			env.Error = "导航执行失败"
		}
	}
	return env
}

// cancelled checks the caller's context at a step boundary. Once the
// caller is gone the pipeline stops issuing outbound calls.
func (o *Orchestrator) cancelled(ctx context.Context, env *models.Envelope, logger *zap.Logger) bool {
	if err := ctx.Err(); err != nil {
		logger.Warn("request cancelled mid-pipeline", zap.Error(err))
		env.Success = false
		env.Error = fmt.Sprintf("请求已取消: %v", err)
		return true
	}
	return false
}

// ServiceStatus reports per-service health for the status surface.
type ServiceStatus struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
	Error    string            `json:"error,omitempty"`
}

// Status probes the oracle with a throwaway request and reports the
// result per service. Providers have no cheap health check; they are
// reported as configured.
func (o *Orchestrator) Status(ctx context.Context) *ServiceStatus {
	status := &ServiceStatus{
		Status: "正常",
		Services: map[string]string{
			"deepseek":  "未配置",
			"baidu_map": "配置完成",
			"amap":      "配置完成",
		},
	}

	if o.oracle == nil {
		status.Status = "降级"
		return status
	}

	probe := o.oracle.AnalyzeIntent(ctx, "测试连接")
	if probe.Error != "" {
		status.Status = "异常"
		status.Services["deepseek"] = "异常"
		status.Error = probe.Error
	} else {
		status.Services["deepseek"] = "正常"
	}
	return status
}
