// Package app implements the application layer for symex.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/symex/internal/adapters/api"
	"go.trai.ch/symex/internal/adapters/cache"
	"go.trai.ch/symex/internal/adapters/config"
	"go.trai.ch/symex/internal/adapters/tui"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
	"go.trai.ch/symex/internal/engine/expander"
	"go.trai.ch/symex/internal/render"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Auth carries credential overrides from the command line. Empty fields
// fall through to the credential source chain.
type Auth struct {
	Username string
	Password string
}

// App wires the model client, cache, expander and generators together
// for the CLI commands. The client is constructed per invocation because
// credentials may arrive as command line flags.
type App struct {
	cfg        config.Config
	creds      ports.CredentialSource
	logger     ports.Logger
	telemetry  ports.Telemetry
	newClient  func(ports.Credentials) ports.ModelClient
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(cfg config.Config, creds ports.CredentialSource, log ports.Logger, tel ports.Telemetry) *App {
	return &App{
		cfg:       cfg,
		creds:     creds,
		logger:    log,
		telemetry: tel,
		newClient: func(c ports.Credentials) ports.ModelClient {
			return api.New(cfg.ServerURL, c, time.Duration(cfg.TimeoutSeconds)*time.Second, log)
		},
	}
}

// WithClientFactory replaces the model client constructor.
// This is primarily used for testing.
func (a *App) WithClientFactory(factory func(ports.Credentials) ports.ModelClient) *App {
	a.newClient = factory
	return a
}

// WithTeaOptions adds bubbletea program options to the explorer.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

func (a *App) client(auth Auth) (ports.ModelClient, error) {
	creds, err := a.creds.Resolve(auth.Username, auth.Password)
	if err != nil {
		return nil, err
	}
	return a.newClient(creds), nil
}

// ListProjects prints every project on the server, one per line. With
// check set, an accessibility probe fans one cheap request per project
// out over the bounded worker pool and marks projects that do not
// answer.
func (a *App) ListProjects(ctx context.Context, out io.Writer, auth Auth, check bool) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	projects, err := client.Projects(ctx)
	if err != nil {
		return err
	}

	var status []string
	if check {
		status = a.probeProjects(ctx, client, projects)
	}

	for i, p := range projects {
		fields := []string{p.ID, p.Name}
		if check {
			fields = append(fields, status[i])
		}
		if p.Description != "" {
			fields = append(fields, p.Description)
		}
		fmt.Fprintln(out, strings.Join(fields, "\t"))
	}
	return nil
}

// probeProjects checks accessibility by listing each project's commits,
// bounded by the configured parallelism. Probe failures are reported in
// the result, never fatal.
func (a *App) probeProjects(ctx context.Context, client ports.ModelClient, projects []domain.Project) []string {
	limit := a.cfg.Parallelism
	if limit <= 0 {
		limit = expander.DefaultParallelism
	}

	results := make([]string, len(projects))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, p := range projects {
		g.Go(func() error {
			if _, err := client.Commits(ctx, p.ID); err != nil {
				a.logger.Warn("project probe failed", "project", p.ID, "error", err)
				results[i] = "unavailable"
				return nil
			}
			results[i] = "ok"
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ListCommits prints the commits of a project, newest first.
func (a *App) ListCommits(ctx context.Context, out io.Writer, auth Auth, projectRef string) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	project, err := a.resolveProject(ctx, client, projectRef)
	if err != nil {
		return err
	}
	commits, err := client.Commits(ctx, project.ID)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		return zerr.With(domain.ErrNoCommits, "project", project.ID)
	}
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Created > commits[j].Created
	})
	for _, c := range commits {
		fmt.Fprintf(out, "%s\t%s\t%s\n", c.ID, c.Created, c.Description)
	}
	return nil
}

// Tree loads the full displayable subtree of a commit and writes the
// textual notation to out. A non-empty elementID narrows the output to
// the subtree rooted at that element.
func (a *App) Tree(ctx context.Context, out io.Writer, auth Auth, projectRef, commitRef, elementID string) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	session, err := a.resolveSession(ctx, client, projectRef, commitRef)
	if err != nil {
		return err
	}
	store, roots, err := a.loadSubtrees(ctx, client, session)
	if err != nil {
		return err
	}
	if elementID != "" {
		el, ok := store.Get(elementID)
		if !ok {
			return zerr.With(domain.ErrNotFoundInCache, "id", elementID)
		}
		roots = []domain.Element{el}
	}
	_, err = io.WriteString(out, render.NewTextRenderer().Render(store.Snapshot(), roots))
	return err
}

// Export writes the textual notation and a complete JSON dump of a
// commit into the output directory.
func (a *App) Export(ctx context.Context, auth Auth, projectRef, commitRef string) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	session, err := a.resolveSession(ctx, client, projectRef, commitRef)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "dir", a.cfg.OutputDir)
	}

	store, roots, err := a.loadSubtrees(ctx, client, session)
	if err != nil {
		return err
	}
	textPath := a.outputPath(session, "sysml")
	text := render.NewTextRenderer().Render(store.Snapshot(), roots)
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", textPath)
	}
	a.logger.Info("wrote notation export", "path", textPath)

	// The JSON dump covers the whole commit, enumerated page by page,
	// not just the displayable subtrees.
	dump := make([]map[string]any, 0)
	vctx, vertex := a.telemetry.Record(ctx, fmt.Sprintf("enumerate %s@%s", session.ProjectID, session.CommitID))
	err = client.Elements(vctx, session, a.cfg.PageSize, func(el domain.Element) error {
		dump = append(dump, el.Data)
		return nil
	})
	vertex.Complete(err)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrExportWriteFailed.Error())
	}
	jsonPath := a.outputPath(session, "json")
	if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportWriteFailed.Error()), "path", jsonPath)
	}
	a.logger.Info("wrote json export", "path", jsonPath, "elements", len(dump))
	return nil
}

// Report renders the HTML report of a commit into the output directory.
func (a *App) Report(ctx context.Context, auth Auth, projectRef, commitRef string) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	session, err := a.resolveSession(ctx, client, projectRef, commitRef)
	if err != nil {
		return err
	}
	store, roots, err := a.loadSubtrees(ctx, client, session)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "dir", a.cfg.OutputDir)
	}
	path := filepath.Join(a.cfg.OutputDir, fmt.Sprintf("report-%s-%s.html", session.ProjectID, session.CommitID))
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	defer f.Close()

	if err := render.NewHTMLReport().Render(f, session, store.Snapshot(), roots); err != nil {
		return zerr.With(err, "path", path)
	}
	a.logger.Info("wrote report", "path", path)
	return nil
}

// Diff loads two commits of the same project and writes the change
// classification to out.
func (a *App) Diff(ctx context.Context, out io.Writer, auth Auth, projectRef, beforeRef, afterRef string, unified bool) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	project, err := a.resolveProject(ctx, client, projectRef)
	if err != nil {
		return err
	}

	load := func(commitID string) (map[string]domain.Element, error) {
		session := domain.Session{ProjectID: project.ID, CommitID: commitID}
		store, _, err := a.loadSubtrees(ctx, client, session)
		if err != nil {
			return nil, err
		}
		return store.Snapshot(), nil
	}

	before, err := load(beforeRef)
	if err != nil {
		return err
	}
	after, err := load(afterRef)
	if err != nil {
		return err
	}

	text, err := render.NewDiffRenderer(unified).Render(render.Compare(before, after))
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

// Explore opens the interactive tree explorer for a commit. Only root
// elements are fetched up front; children load as the user expands.
func (a *App) Explore(ctx context.Context, auth Auth, projectRef, commitRef string) error {
	client, err := a.client(auth)
	if err != nil {
		return err
	}
	session, err := a.resolveSession(ctx, client, projectRef, commitRef)
	if err != nil {
		return err
	}
	roots, err := client.Roots(ctx, session)
	if err != nil {
		return err
	}

	store := cache.New(session, client, a.logger)
	for _, root := range roots {
		store.Set(root)
	}
	exp := expander.New(store, a.logger, a.cfg.Parallelism)

	model := tui.NewModel(session, exp, roots)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, a.teaOptions...)
	_, err = tea.NewProgram(model, opts...).Run()
	return err
}

// resolveProject accepts either a project id or a project name.
func (a *App) resolveProject(ctx context.Context, client ports.ModelClient, ref string) (domain.Project, error) {
	if ref == "" {
		return domain.Project{}, domain.ErrProjectRequired
	}
	projects, err := client.Projects(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range projects {
		if p.ID == ref {
			return p, nil
		}
	}
	for _, p := range projects {
		if p.Name == ref {
			return p, nil
		}
	}
	return domain.Project{}, zerr.With(domain.ErrProjectNotFound, "project", ref)
}

// resolveSession turns project and commit references into a session.
// An empty commit reference selects the newest commit.
func (a *App) resolveSession(ctx context.Context, client ports.ModelClient, projectRef, commitRef string) (domain.Session, error) {
	project, err := a.resolveProject(ctx, client, projectRef)
	if err != nil {
		return domain.Session{}, err
	}
	if commitRef != "" {
		return domain.Session{ProjectID: project.ID, CommitID: commitRef}, nil
	}

	commits, err := client.Commits(ctx, project.ID)
	if err != nil {
		return domain.Session{}, err
	}
	if len(commits) == 0 {
		return domain.Session{}, zerr.With(domain.ErrNoCommits, "project", project.ID)
	}
	latest := commits[0]
	for _, c := range commits[1:] {
		if c.Created > latest.Created {
			latest = c
		}
	}
	return domain.Session{ProjectID: project.ID, CommitID: latest.ID}, nil
}

// loadSubtrees fetches the root elements and materializes their full
// displayable subtrees into a fresh session cache.
func (a *App) loadSubtrees(ctx context.Context, client ports.ModelClient, session domain.Session) (*cache.Store, []domain.Element, error) {
	roots, err := client.Roots(ctx, session)
	if err != nil {
		return nil, nil, err
	}

	store := cache.New(session, client, a.logger)
	for _, root := range roots {
		store.Set(root)
	}

	exp := expander.New(store, a.logger, a.cfg.Parallelism)
	walker := expander.NewWalker(exp, a.cfg.MaxDepth)

	vctx, vertex := a.telemetry.Record(ctx, fmt.Sprintf("load %s@%s", session.ProjectID, session.CommitID))
	count, err := walker.Load(vctx, roots)
	vertex.Complete(err)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("loaded commit", "project", session.ProjectID, "commit", session.CommitID, "elements", count)
	return store, roots, nil
}

func (a *App) outputPath(session domain.Session, ext string) string {
	return filepath.Join(a.cfg.OutputDir, fmt.Sprintf("%s-%s.%s", session.ProjectID, session.CommitID, ext))
}
