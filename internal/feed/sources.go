package feed

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"kokofeed/internal/domain"

	"mvdan.cc/xurls/v2"
)

// ReadSourceList reads a line-delimited feed list. Blank lines and "#"
// comments are skipped silently, lines that are not a single http(s) URL
// are skipped with a warning, and duplicates keep their first position.
func ReadSourceList(ctx context.Context, path string, log *slog.Logger) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.ConfigError{Reason: fmt.Sprintf("open feed list %s", path), Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.ErrorContext(ctx, "Failed to close feed list",
				"error", closeErr,
				"path", path)
		}
	}()

	urlRe, err := xurls.StrictMatchingScheme(`https?://`)
	if err != nil {
		return nil, &domain.ConfigError{Reason: "create URL regexp", Err: err}
	}

	var feedURLs []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if urlRe.FindString(line) != line {
			log.WarnContext(ctx, "Skipping feed list line that is not a URL",
				"path", path,
				"line", line)

			continue
		}

		if _, ok := seen[line]; ok {
			continue
		}

		feedURLs = append(feedURLs, line)
		seen[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, &domain.ConfigError{Reason: fmt.Sprintf("read feed list %s", path), Err: err}
	}

	return feedURLs, nil
}
