// File: pkg/combine/helpers.go
package combine

import (
	"bufio"
	"os"

	"go.uber.org/zap"
)

// WriteDocument writes the final document to outputPath. Any failure is
// returned as an *OutputWriteError.
func WriteDocument(outputPath, document string, logger *zap.Logger) (err error) {
	logger.Debug("Writing document to output file", zap.String("file", outputPath), zap.Int("bytes", len(document)))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return &OutputWriteError{Path: outputPath, Err: err}
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = &OutputWriteError{Path: outputPath, Err: closeErr}
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(document); err != nil {
		logger.Error("Failed to write document", zap.String("file", outputPath), zap.Error(err))
		return &OutputWriteError{Path: outputPath, Err: err}
	}
	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return &OutputWriteError{Path: outputPath, Err: err}
	}
	return nil
}
