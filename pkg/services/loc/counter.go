package loc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"

	"github.com/de-tools/cost-compass/pkg/models/domain"
)

const (
	// DefaultMaxFileSizeMB caps individual file downloads
	DefaultMaxFileSizeMB = 1.0

	// fetchConcurrency bounds parallel file downloads per repository
	fetchConcurrency = 10
)

// ParseRepoURL extracts owner and repository name from a GitHub URL
func ParseRepoURL(raw string) (domain.Repo, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return domain.Repo{}, fmt.Errorf("failed to parse repo URL %q: %w", raw, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return domain.Repo{}, fmt.Errorf("invalid GitHub repository URL: %q", raw)
	}
	return domain.Repo{Owner: segments[0], Name: segments[1]}, nil
}

// gitignoreRule pairs a compiled .gitignore with the directory it governs
type gitignoreRule struct {
	dir     string
	matcher *ignore.GitIgnore
}

// Counter walks a GitHub repository and tallies lines of code per extension
type Counter struct {
	client  *Client
	repo    domain.Repo
	opts    domain.LocOptions
	exclude map[string]struct{}

	mu     sync.Mutex
	counts map[string]int
	total  int
}

func NewCounter(client *Client, repo domain.Repo, opts domain.LocOptions) *Counter {
	if opts.MaxFileSizeMB <= 0 {
		opts.MaxFileSizeMB = DefaultMaxFileSizeMB
	}

	exclude := make(map[string]struct{}, len(opts.ExcludeExtensions))
	for _, ext := range opts.ExcludeExtensions {
		ext = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		if ext != "" {
			exclude[ext] = struct{}{}
		}
	}

	return &Counter{
		client:  client,
		repo:    repo,
		opts:    opts,
		exclude: exclude,
		counts:  make(map[string]int),
	}
}

// Run walks the repository tree and returns the per-extension line counts
func (c *Counter) Run(ctx context.Context) (*domain.LocReport, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := c.walk(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list repository files: %w", err)
	}

	rules, err := c.compileGitignores(ctx, entries)
	if err != nil {
		return nil, err
	}

	files := c.filter(ctx, entries, rules)
	logger.Info().
		Str("repo", c.repo.String()).
		Int("files", len(files)).
		Msg("counting lines")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for _, entry := range files {
		entry := entry
		g.Go(func() error {
			return c.countFile(gctx, entry)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	report := &domain.LocReport{
		Total:       c.total,
		ByExtension: make(map[string]int, len(c.counts)),
	}
	for ext, count := range c.counts {
		report.ByExtension[ext] = count
	}
	return report, nil
}

func (c *Counter) walk(ctx context.Context, dir string) ([]Entry, error) {
	entries, err := c.client.ListContents(ctx, c.repo.Owner, c.repo.Name, dir)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var all []Entry
	for _, entry := range entries {
		switch entry.Type {
		case "dir":
			children, err := c.walk(ctx, entry.Path)
			if err != nil {
				return nil, err
			}
			all = append(all, children...)
		case "file":
			all = append(all, entry)
		}
	}
	return all, nil
}

func (c *Counter) compileGitignores(ctx context.Context, entries []Entry) ([]gitignoreRule, error) {
	logger := zerolog.Ctx(ctx)

	var rules []gitignoreRule
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Path, ".gitignore") {
			continue
		}

		content, err := c.client.GetFile(ctx, c.repo.Owner, c.repo.Name, entry.Path)
		if err != nil {
			logger.Warn().Err(err).Str("path", entry.Path).Msg("failed to fetch .gitignore")
			continue
		}

		matcher := ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
		rules = append(rules, gitignoreRule{
			dir:     path.Dir(entry.Path),
			matcher: matcher,
		})
	}
	return rules, nil
}

func (c *Counter) filter(ctx context.Context, entries []Entry, rules []gitignoreRule) []Entry {
	logger := zerolog.Ctx(ctx)

	var files []Entry
	for _, entry := range entries {
		if strings.HasSuffix(entry.Path, ".gitignore") {
			continue
		}
		if !c.opts.IncludeTests && isTestPath(entry.Path) {
			logger.Debug().Str("path", entry.Path).Msg("skipped test file")
			continue
		}
		if isIgnored(entry.Path, rules) {
			logger.Debug().Str("path", entry.Path).Msg("ignored")
			continue
		}
		files = append(files, entry)
	}
	return files
}

func (c *Counter) countFile(ctx context.Context, entry Entry) error {
	logger := zerolog.Ctx(ctx)

	ext := extensionOf(entry.Path)
	if _, excluded := c.exclude[ext]; excluded {
		logger.Debug().Str("path", entry.Path).Msg("excluded by extension")
		return nil
	}

	maxBytes := int64(c.opts.MaxFileSizeMB * 1_000_000)
	if entry.Size > maxBytes {
		logger.Warn().
			Str("path", entry.Path).
			Int64("size", entry.Size).
			Msg("skipping large file")
		return nil
	}

	content, err := c.client.GetFile(ctx, c.repo.Owner, c.repo.Name, entry.Path)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) {
		logger.Warn().Err(err).Str("path", entry.Path).Msg("skipping file")
		return nil
	}
	if err != nil {
		return err
	}

	if !isTextContent(entry.Path, content) {
		logger.Debug().Str("path", entry.Path).Msg("skipping non-text file")
		return nil
	}

	lines := countLines(content)
	if ext == "php" && looksLikeHTML(content) {
		ext = "php_html"
	}

	c.mu.Lock()
	c.counts[ext] += lines
	c.total += lines
	c.mu.Unlock()
	return nil
}

func extensionOf(p string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
	if ext == "" {
		return "no_extension"
	}
	return ext
}

func isTestPath(p string) bool {
	return strings.Contains(strings.ToLower("/"+p+"/"), "/tests/")
}

func isIgnored(p string, rules []gitignoreRule) bool {
	for _, rule := range rules {
		rel := p
		if rule.dir != "." {
			if !strings.HasPrefix(p, rule.dir+"/") {
				continue
			}
			rel = strings.TrimPrefix(p, rule.dir+"/")
		}
		if rule.matcher.MatchesPath(rel) {
			return true
		}
	}
	return false
}

func isTextContent(p string, content []byte) bool {
	mime := mimetype.Detect(content)
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	switch mime.String() {
	case "application/json", "application/xml", "application/x-yaml", "application/javascript":
		return true
	}

	sample := content
	if len(sample) > 1024 {
		sample = sample[:1024]
	}
	return utf8.Valid(sample)
}

// countLines matches the splitlines tally the breakdown is defined in terms
// of: a trailing newline does not start an extra line.
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	s := string(content)
	lines := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		lines++
	}
	return lines
}

func looksLikeHTML(content []byte) bool {
	lowered := strings.ToLower(string(content))
	return strings.Contains(lowered, "<html") || strings.Contains(lowered, "<!doctype html")
}
