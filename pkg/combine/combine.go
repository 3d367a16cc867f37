package combine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"foldersnap/pkg/ignore"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RunCombine scans args.Directory, renders its tree, collects file contents
// and writes the assembled document. Per-file read failures are logged and
// counted in the Result; only an unreadable root or an output write failure
// is returned.
func RunCombine(args *Arguments, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	profile, err := LookupProfile(args.Profile)
	if err != nil {
		return nil, err
	}

	root, err := resolveRoot(args.Directory)
	if err != nil {
		logger.Error("Failed to resolve root directory", zap.String("directory", args.Directory), zap.Error(err))
		return nil, err
	}
	folder := filepath.Base(root)
	logger.Info("Starting snapshot", zap.String("directory", root), zap.String("profile", profile.Name))

	outputPath := args.Output
	if outputPath == "" {
		outputPath = filepath.Join(root, profile.Layout.FileName(folder))
	} else if outputPath, err = filepath.Abs(outputPath); err != nil {
		return nil, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	rules, err := structureRules(root, profile, args, logger)
	if err != nil {
		return nil, err
	}
	filter := ignore.NewFilter(root, rules, []string{filepath.Base(outputPath), args.SelfName}, logger)
	if args.UseGitignore {
		gi, err := ignore.LoadGitIgnore(root, logger)
		if err != nil {
			logger.Warn("Ignoring unreadable .gitignore", zap.Error(err))
		} else if gi != nil {
			filter.With(gi)
		}
	}

	logger.Debug("Structural filter ready", zap.String("root", filter.Root()), zap.Int("patterns", filter.Rules().Len()))

	walker := NewWalker(root, filter, args.MaxWorkers, logger)
	items, err := walker.Walk()
	if err != nil {
		logger.Error("Failed to walk directory", zap.Error(err))
		return nil, err
	}
	treeText := RenderTree(items)

	collector := NewCollector(root,
		ignore.NewRuleSet(pick(args.ContentIgnore, profile.ContentIgnore)...),
		pick(args.ContentIgnoredExtensions, profile.ContentIgnoredExtensions),
		args.MaxWorkers, logger)
	records, readErr := collector.Collect(items)
	failed := multierr.Errors(readErr)
	if len(failed) > 0 {
		logger.Warn("Some files were left out of the content dump", zap.Int("failedFiles", len(failed)))
	}

	document := Assemble(profile.Layout, folder, treeText, records)
	if err := WriteDocument(outputPath, document, logger); err != nil {
		return nil, err
	}

	logger.Info("Snapshot completed",
		zap.String("outputFile", outputPath),
		zap.Int("entries", len(items)),
		zap.Int("files", len(records)),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return &Result{
		OutputPath:  outputPath,
		Entries:     len(items),
		Files:       len(records),
		FailedFiles: len(failed),
		Document:    document,
	}, nil
}

// resolveRoot returns the absolute form of dir after checking it is a directory.
func resolveRoot(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("cannot access directory '%s': %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", root)
	}
	return root, nil
}

// structureRules merges the profile or overridden structural patterns, the
// extra patterns and the ignore file.
func structureRules(root string, profile Profile, args *Arguments, logger *zap.Logger) (*ignore.RuleSet, error) {
	rules := ignore.NewRuleSet(pick(args.StructureIgnore, profile.StructureIgnore)...)
	rules.Add(args.ExtraIgnore...)

	ignoreFile := args.IgnoreFile
	explicit := ignoreFile != ""
	if !explicit {
		ignoreFile = filepath.Join(root, DefaultIgnoreFile)
	}
	if err := rules.CompileIgnoreFile(ignoreFile); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			logger.Error("Failed to load ignore file", zap.String("file", ignoreFile), zap.Error(err))
			return nil, err
		}
		logger.Debug("No ignore file found", zap.String("file", ignoreFile))
	} else {
		logger.Debug("Loaded ignore file", zap.String("file", ignoreFile))
	}

	logger.Debug("Structural ignore patterns", zap.Strings("patterns", rules.Patterns()))
	return rules, nil
}

// pick returns override when set, otherwise a copy of the default.
func pick(override, def []string) []string {
	if override != nil {
		return override
	}
	return append([]string(nil), def...)
}
