// =============================================================================
// CSV/Excel Converter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the converter, including:
//   - File discovery (expanding directories given on the command line)
//   - Filtering a selection by conversion mode extension
//   - Output file naming
//   - Atomic output writes (temporary file + rename)
//   - Selection display lists
//   - Processing summary logs
//
// WRITE STRATEGY:
//   - Output is written to a hidden temporary file next to the destination
//   - The temporary file is renamed over the destination on success
//   - On failure the temporary file is removed, so no partial output remains
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverFiles expands a list of paths into absolute file paths.
//
// PARAMETERS:
//   - paths: Files or directories. Directories are walked recursively.
//
// RETURNS:
//   - The regular files found, in argument order (directory entries sorted
//     lexically, as filepath.Walk visits them). Symbolic links to regular
//     files inside a directory are followed; linked directories are not
//     descended into.
//   - An error if a path cannot be read. Every argument must exist, so a
//     mistyped path stops the run before any file is converted.
func DiscoverFiles(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}

		if !info.IsDir() {
			files = append(files, abs)
			continue
		}

		err = filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.Mode()&os.ModeSymlink != 0 {
				target, err := os.Stat(path)
				if err != nil {
					// Dangling link.
					return nil
				}
				info = target
			}

			// Skip directories and anything that is not a plain file.
			if info.IsDir() || !info.Mode().IsRegular() {
				return nil
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}

	return files, nil
}

// FilterByExtension keeps the paths whose final extension equals ext
// (without the dot, case-insensitive). Order is preserved.
func FilterByExtension(paths []string, ext string) []string {
	if ext == "" {
		return nil
	}
	var matched []string
	for _, p := range paths {
		if strings.EqualFold(strings.TrimPrefix(filepath.Ext(p), "."), ext) {
			matched = append(matched, p)
		}
	}
	return matched
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// OutputPath returns "<destDir>/<source base name without extension>.<ext>".
//
// EXAMPLE:
//   OutputPath("/out", "/in/report.2024.csv", "xlsx") -> "/out/report.2024.xlsx"
func OutputPath(destDir, source, ext string) string {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(destDir, name+"."+ext)
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteAtomic writes a file through a temporary file in the same directory.
//
// PARAMETERS:
//   - path: The final file path. An existing file is replaced.
//   - write: Produces the file content.
//
// RETURNS:
//   - An error if the content cannot be produced or the file cannot be
//     moved into place. The temporary file never survives an error.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	buffered := bufio.NewWriter(tmp)
	if err = write(buffered); err != nil {
		return err
	}
	if err = buffered.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// =============================================================================
// DISPLAY LIST
// =============================================================================

// maxDisplayFiles is the number of paths shown before summarizing.
const maxDisplayFiles = 3

// FormatFileList shortens a selection for display.
//
// Up to three paths are returned unchanged. Longer lists keep the first three
// paths followed by "..." and "and N more files.". The input is never
// modified.
func FormatFileList(paths []string) []string {
	if len(paths) <= maxDisplayFiles {
		return slices.Clone(paths)
	}

	display := make([]string, 0, maxDisplayFiles+2)
	display = append(display, paths[:maxDisplayFiles]...)
	display = append(display, "...")
	display = append(display, fmt.Sprintf("and %d more files.", len(paths)-maxDisplayFiles))
	return display
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary contains summary information about a batch run.
type ProcessingSummary struct {
	RunID           string
	Mode            string
	StartTime       time.Time
	EndTime         time.Time
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	Cancelled       bool
	ProcessedFiles  []ProcessedFileInfo
	FailedFilesList []FailedFileInfo
}

// ProcessedFileInfo contains information about a successfully converted file.
type ProcessedFileInfo struct {
	InputFile   string
	OutputFile  string
	Rows        int
	Columns     int
	ProcessTime time.Duration
}

// FailedFileInfo contains information about a failed file.
type FailedFileInfo struct {
	InputFile    string
	ErrorMessage string
}

// WriteSummaryLog writes a processing summary to a log file.
//
// PARAMETERS:
//   - summary: The processing summary.
//   - outputDir: The directory to write the summary file.
//
// RETURNS:
//   - The path to the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary ProcessingSummary, outputDir string) (string, error) {
	// Generate summary file name.
	timestamp := summary.StartTime.Format("20060102_150405")
	summaryFileName := fmt.Sprintf("processing_summary_%s.txt", timestamp)
	summaryPath := filepath.Join(outputDir, summaryFileName)

	err := WriteAtomic(summaryPath, func(w io.Writer) error {
		duration := summary.EndTime.Sub(summary.StartTime)
		fmt.Fprintf(w, "CSV/Excel Converter - Processing Summary\n"+
			"================================================================================\n\n"+
			"Run Information:\n"+
			"  Run ID:         %s\n"+
			"  Mode:           %s\n"+
			"  Start Time:     %s\n"+
			"  End Time:       %s\n"+
			"  Duration:       %s\n"+
			"  Cancelled:      %t\n\n"+
			"Statistics:\n"+
			"  Total Files:    %d\n"+
			"  Successful:     %d\n"+
			"  Failed:         %d\n\n",
			summary.RunID,
			summary.Mode,
			summary.StartTime.Format("2006-01-02 15:04:05"),
			summary.EndTime.Format("2006-01-02 15:04:05"),
			duration.String(),
			summary.Cancelled,
			summary.TotalFiles,
			summary.SuccessfulFiles,
			summary.FailedFiles)

		if len(summary.ProcessedFiles) > 0 {
			fmt.Fprint(w, "Successful Files:\n")
			fmt.Fprint(w, "--------------------------------------------------------------------------------\n")
			for _, pf := range summary.ProcessedFiles {
				fmt.Fprintf(w, "  Input:        %s\n", pf.InputFile)
				fmt.Fprintf(w, "  Output:       %s\n", pf.OutputFile)
				fmt.Fprintf(w, "  Rows:         %d\n", pf.Rows)
				fmt.Fprintf(w, "  Columns:      %d\n", pf.Columns)
				fmt.Fprintf(w, "  Process Time: %s\n\n", pf.ProcessTime.String())
			}
		}

		if len(summary.FailedFilesList) > 0 {
			fmt.Fprint(w, "Failed Files:\n")
			fmt.Fprint(w, "--------------------------------------------------------------------------------\n")
			for _, ff := range summary.FailedFilesList {
				fmt.Fprintf(w, "  File:  %s\n", ff.InputFile)
				fmt.Fprintf(w, "  Error: %s\n\n", ff.ErrorMessage)
			}
		}

		_, err := fmt.Fprint(w, "================================================================================\n"+
			"End of Summary\n")
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to write summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// IsDir checks if a path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
