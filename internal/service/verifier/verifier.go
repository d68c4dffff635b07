package verifier

import (
	"context"
	"errors"
	"fmt"
	"path"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/plist-version-verifier/internal/config"
	"github.com/oshokin/plist-version-verifier/internal/domain/verification"
	"github.com/oshokin/plist-version-verifier/internal/header"
	"github.com/oshokin/plist-version-verifier/internal/logger"
	"github.com/oshokin/plist-version-verifier/internal/plist"
	"github.com/oshokin/plist-version-verifier/internal/repository/output"
	"github.com/oshokin/plist-version-verifier/internal/template"
	"github.com/oshokin/plist-version-verifier/internal/workspace"
)

// verifier runs the pipeline against one resolved repository root.
type verifier struct {
	// cfg holds the file layout and required fields.
	cfg *config.Config
	// root is the absolute repository root all configured paths are joined onto.
	root string
	// report collects the step outcomes.
	report *verification.Report
	// output stores the generated manifest.
	output output.Repository
}

// run executes the steps in order and stops at the first failure.
// The generated file is removed on every exit path, including panics.
func (v *verifier) run(ctx context.Context) (err error) {
	defer v.cleanup(ctx, &err)

	logger.Info(ctx, "=== Simulating xmake build process ===")

	version := v.extractVersion(ctx)
	v.report.Version = version

	content, err := v.loadTemplate(ctx)
	if err != nil {
		return err
	}

	result := template.Substitute(content, v.cfg.Placeholder, version)
	v.pass(ctx, verification.StepSubstitute, v.cfg.TemplatePath,
		"3. Found %d version placeholders in template", result.Placeholders)

	if err = v.checkContext(ctx, verification.StepWrite); err != nil {
		return err
	}

	if err = v.output.Save(ctx, result.Content); err != nil {
		return v.fail(ctx, verification.StepWrite, v.cfg.OutputPath, err)
	}

	v.pass(ctx, verification.StepWrite, v.cfg.OutputPath,
		"4. Generated %s with version %s", v.outputName(), version)

	return v.validate(ctx, version)
}

// extractVersion reads version.h, falling back to the configured default.
func (v *verifier) extractVersion(ctx context.Context) string {
	// Validated by config.Validate.
	fallback, _ := header.ParseString(v.cfg.FallbackVersion)

	version := header.ExtractVersionOr(workspace.Resolve(v.root, v.cfg.HeaderPath), fallback).String()
	v.pass(ctx, verification.StepExtract, v.cfg.HeaderPath, "1. Extracted version: %s", version)

	return version
}

// loadTemplate reads the template or fails the run when it is absent.
func (v *verifier) loadTemplate(ctx context.Context) (string, error) {
	content, err := template.Load(workspace.Resolve(v.root, v.cfg.TemplatePath))
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			err = fmt.Errorf("%w: %s", template.ErrTemplateNotFound, v.cfg.TemplatePath)
		}

		return "", v.fail(ctx, verification.StepFindTemplate, v.cfg.TemplatePath, err)
	}

	v.pass(ctx, verification.StepFindTemplate, v.cfg.TemplatePath, "2. Found template file: %s", v.cfg.TemplatePath)

	return content, nil
}

// validate reads the written file back and runs the checks in order.
func (v *verifier) validate(ctx context.Context, version string) error {
	if err := v.checkContext(ctx, verification.StepPlaceholders); err != nil {
		return err
	}

	written, err := v.output.Load(ctx)
	if err != nil {
		return v.fail(ctx, verification.StepPlaceholders, v.cfg.OutputPath, err)
	}

	if remaining := template.Count(written, v.cfg.Placeholder); remaining > 0 {
		return v.fail(ctx, verification.StepPlaceholders, v.cfg.OutputPath,
			fmt.Errorf("%d %w", remaining, ErrPlaceholdersRemain))
	}

	doc, err := plist.Parse([]byte(written))
	if err != nil {
		return v.fail(ctx, verification.StepParse, v.cfg.OutputPath, fmt.Errorf("%w: %w", ErrMalformedDocument, err))
	}

	v.pass(ctx, verification.StepParse, v.cfg.OutputPath, "5. Generated %s is valid XML", v.outputName())

	dict, err := doc.Dict()
	if err != nil {
		return v.fail(ctx, verification.StepParse, v.cfg.OutputPath,
			fmt.Errorf("%w under <%s> in %s", ErrDictMissing, doc.Root.Name, v.outputName()))
	}

	for _, field := range v.cfg.RequiredFields {
		if err = v.checkField(ctx, dict, field, version); err != nil {
			return err
		}
	}

	return nil
}

// checkField compares one required field with the expected version.
func (v *verifier) checkField(ctx context.Context, dict *plist.Dict, field, version string) error {
	value, ok, isString := dict.String(field)

	switch {
	case !ok:
		return v.fail(ctx, verification.StepField, field,
			fmt.Errorf("%s %w in %s", field, ErrFieldMissing, v.outputName()))
	case !isString:
		return v.fail(ctx, verification.StepField, field,
			fmt.Errorf("%s %w: %s (expected %s)", field, ErrFieldMismatch, describeValue(dict, field), version))
	case value != version:
		return v.fail(ctx, verification.StepField, field,
			fmt.Errorf("%s %w: %s (expected %s)", field, ErrFieldMismatch, value, version))
	}

	v.pass(ctx, verification.StepField, field, "6. %s: %s", field, value)

	return nil
}

// cleanup removes the generated file and turns a failed removal into a run failure.
func (v *verifier) cleanup(ctx context.Context, errp *error) {
	removed, err := v.output.Remove(ctx)
	if err != nil {
		failure := v.fail(ctx, verification.StepCleanup, v.cfg.OutputPath, err)
		if *errp == nil {
			*errp = failure
		}

		return
	}

	if removed {
		v.pass(ctx, verification.StepCleanup, v.cfg.OutputPath, "Cleaned up generated file: %s", v.cfg.OutputPath)
	}
}

// checkContext fails the step when the run was interrupted.
func (v *verifier) checkContext(ctx context.Context, step verification.Step) error {
	if err := ctx.Err(); err != nil {
		return v.fail(ctx, step, "", fmt.Errorf("interrupted: %w", err))
	}

	return nil
}

// pass logs a progress line and records it.
func (v *verifier) pass(ctx context.Context, step verification.Step, subject, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	logger.Info(ctx, message)
	v.report.Add(step, subject, message)
}

// fail logs an error line and records it.
func (v *verifier) fail(ctx context.Context, step verification.Step, subject string, err error) error {
	logger.Errorf(ctx, "ERROR: %v", err)

	return v.report.Fail(step, subject, err)
}

func (v *verifier) outputName() string {
	return path.Base(v.cfg.OutputPath)
}

// describeValue renders a non-string value element for error messages.
func describeValue(dict *plist.Dict, field string) string {
	element, _ := dict.Lookup(field)
	if element == nil {
		return "no value"
	}

	return "<" + element.Name + ">"
}

// resultLogger returns the context logger pinned to info so the final line
// is printed whatever the configured level is.
func resultLogger(ctx context.Context) *zap.SugaredLogger {
	return logger.FromContext(ctx).WithOptions(logger.WithLevel(zapcore.InfoLevel))
}
