package verifier

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/oshokin/plist-version-verifier/internal/config"
	"github.com/oshokin/plist-version-verifier/internal/domain/verification"
	"github.com/oshokin/plist-version-verifier/internal/logger"
	"github.com/oshokin/plist-version-verifier/internal/repository/output"
	"github.com/oshokin/plist-version-verifier/internal/service/common"
	"github.com/oshokin/plist-version-verifier/internal/workspace"
)

// Options contains inputs for the verifier entry point.
type Options struct {
	// ConfigPath is an optional YAML file overriding the default layout.
	ConfigPath string
	// Config, when set, is used instead of loading ConfigPath.
	Config *config.Config
	// Root is an explicit repository root; empty means locate it from WorkDir.
	Root string
	// WorkDir is where root location starts; empty means the process working directory.
	WorkDir string
}

var (
	// ErrPlaceholdersRemain is returned when the written file still contains placeholders.
	ErrPlaceholdersRemain = errors.New("placeholders remain unsubstituted")
	// ErrMalformedDocument is returned when the written file is not well-formed XML.
	ErrMalformedDocument = errors.New("invalid XML")
	// ErrDictMissing is returned when the document root has no dict element.
	ErrDictMissing = errors.New("no dict element")
	// ErrFieldMissing is returned when a required field is absent from the dict.
	ErrFieldMissing = errors.New("not found")
	// ErrFieldMismatch is returned when a required field does not equal the version.
	ErrFieldMismatch = errors.New("has wrong value")
)

// Run executes one verification and returns its report.
// The report is never nil; its Err equals the returned error.
func Run(ctx context.Context, opts *Options) (*verification.Report, error) {
	runID := uuid.NewString()

	// Set context with logger name and run id for tracking.
	ctx = logger.WithName(ctx, "verifier")
	ctx = logger.WithKV(ctx, "run_id", runID)

	report := verification.NewReport(runID)

	logger.Info(ctx, "Info.plist Version Substitution Verification")

	cfg, err := loadConfig(opts)
	if err != nil {
		return report, failRun(ctx, report, verification.StepLoadConfig, opts.ConfigPath,
			fmt.Errorf("load configuration: %w", err))
	}

	root, err := resolveRoot(opts, cfg)
	if err != nil {
		return report, failRun(ctx, report, verification.StepLocateRoot, "", err)
	}

	report.Root = root
	report.Add(verification.StepLocateRoot, root, "Working directory: "+root)
	logger.Infof(ctx, "Working directory: %s", root)

	warnOtherInstances(ctx)

	v := &verifier{
		cfg:    cfg,
		root:   root,
		report: report,
		output: output.NewFileRepository(workspace.Resolve(root, cfg.OutputPath)),
	}

	if err = v.run(ctx); err != nil {
		resultLogger(ctx).Errorf("Verification failed: %v", err)
		return report, err
	}

	resultLogger(ctx).Info("SUCCESS: All checks passed!")

	return report, nil
}

// loadConfig returns the injected configuration or loads it from disk.
func loadConfig(opts *Options) (*config.Config, error) {
	if opts.Config == nil {
		return config.Load(opts.ConfigPath)
	}

	if err := config.Validate(opts.Config); err != nil {
		return nil, err
	}

	return opts.Config, nil
}

// resolveRoot picks the explicit root or locates it from the working directory.
func resolveRoot(opts *Options, cfg *config.Config) (string, error) {
	if opts.Root != "" {
		return workspace.Explicit(opts.Root)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}

		workDir = wd
	}

	return workspace.Locate(workDir, cfg)
}

// warnOtherInstances logs a warning when another verifier could overwrite the same output.
func warnOtherInstances(ctx context.Context) {
	pids, err := common.OtherInstances(common.ExecutableName())
	if err != nil {
		logger.DebugKV(ctx, "Unable to list running processes", "error", err)
		return
	}

	if len(pids) > 0 {
		logger.WarnKV(ctx, "Another verifier is running and shares the generated file", "pids", pids)
	}
}

// failRun records and logs a failure that happens before the pipeline starts.
func failRun(ctx context.Context, report *verification.Report, step verification.Step, subject string, err error) error {
	logger.Errorf(ctx, "ERROR: %v", err)
	resultLogger(ctx).Errorf("Verification failed: %v", err)

	return report.Fail(step, subject, err)
}
