// Package api implements the ModelClient port against the REST API of a
// SysML v2 model server.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxErrorBody bounds how much of an error response body is carried in
// the returned error metadata.
const maxErrorBody = 512

// Client talks to the model server over authenticated HTTPS GETs.
// There is no automatic retry; callers decide how to handle failures.
type Client struct {
	baseURL    string
	creds      ports.Credentials
	httpClient *http.Client
	logger     ports.Logger
}

// New creates a Client with a fixed request timeout.
func New(baseURL string, creds ports.Credentials, timeout time.Duration, log ports.Logger) *Client {
	return NewWithHTTPClient(baseURL, creds, &http.Client{Timeout: timeout}, log)
}

// NewWithHTTPClient creates a Client with a custom http.Client (used for testing).
func NewWithHTTPClient(baseURL string, creds ports.Credentials, httpClient *http.Client, log ports.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: httpClient,
		logger:     log,
	}
}

// Projects lists the projects visible to the authenticated user.
func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	body, err := c.get(ctx, c.baseURL+"/projects")
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrElementDecode.Error())
	}

	projects := make([]domain.Project, 0, len(raw))
	for _, entry := range raw {
		id, _ := entry["@id"].(string)
		if id == "" {
			continue
		}
		name, _ := entry["name"].(string)
		desc, _ := entry["description"].(string)
		projects = append(projects, domain.Project{ID: id, Name: name, Description: desc})
	}
	return projects, nil
}

// Commits lists the commits of a project in server order.
func (c *Client) Commits(ctx context.Context, projectID string) ([]domain.Commit, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/projects/%s/commits", c.baseURL, url.PathEscape(projectID)))
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrElementDecode.Error())
	}

	commits := make([]domain.Commit, 0, len(raw))
	for _, entry := range raw {
		id, _ := entry["@id"].(string)
		if id == "" {
			continue
		}
		created, _ := entry["created"].(string)
		desc, _ := entry["description"].(string)
		commits = append(commits, domain.Commit{ID: id, Created: created, Description: desc})
	}
	return commits, nil
}

// Roots fetches the root elements of the session's commit.
func (c *Client) Roots(ctx context.Context, session domain.Session) ([]domain.Element, error) {
	body, err := c.get(ctx, c.commitURL(session)+"/roots")
	if err != nil {
		return nil, err
	}
	return decodeElementList(body)
}

// Element fetches a single element by id within the session.
func (c *Client) Element(ctx context.Context, session domain.Session, id string) (domain.Element, error) {
	body, err := c.get(ctx, c.commitURL(session)+"/elements/"+url.PathEscape(id))
	if err != nil {
		return domain.Element{}, err
	}
	return domain.DecodeElement(body)
}

// Elements enumerates every element of the session's commit, honoring
// page[size] and following the Link rel="next" header until exhausted.
func (c *Client) Elements(ctx context.Context, session domain.Session, pageSize int, fn func(domain.Element) error) error {
	next := fmt.Sprintf("%s/elements?page[size]=%d", c.commitURL(session), pageSize)

	for next != "" {
		if err := ctx.Err(); err != nil {
			return err
		}

		body, header, err := c.getWithHeader(ctx, next)
		if err != nil {
			return err
		}

		elements, err := decodeElementList(body)
		if err != nil {
			return err
		}
		for _, el := range elements {
			if err := fn(el); err != nil {
				return err
			}
		}

		next = nextLink(header.Get("Link"))
	}
	return nil
}

func (c *Client) commitURL(session domain.Session) string {
	return fmt.Sprintf("%s/projects/%s/commits/%s",
		c.baseURL, url.PathEscape(session.ProjectID), url.PathEscape(session.CommitID))
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	body, _, err := c.getWithHeader(ctx, rawURL)
	return body, err
}

// getWithHeader performs one authenticated GET, logging endpoint,
// status, payload size and duration.
func (c *Client) getWithHeader(ctx context.Context, rawURL string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrTransport.Error())
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "url", rawURL, "error", err)
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrTransport.Error()), "url", rawURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrTransport.Error()), "url", rawURL)
	}

	c.logger.Info("GET", "url", rawURL, "status", resp.StatusCode,
		"bytes", len(body), "duration", time.Since(start).Round(time.Millisecond).String())

	if resp.StatusCode >= http.StatusBadRequest {
		remoteErr := zerr.With(domain.ErrRemote, "status", resp.StatusCode)
		remoteErr = zerr.With(remoteErr, "url", rawURL)
		return nil, nil, zerr.With(remoteErr, "body", truncate(string(body), maxErrorBody))
	}

	return body, resp.Header, nil
}

func decodeElementList(body []byte) ([]domain.Element, error) {
	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrElementDecode.Error())
	}

	elements := make([]domain.Element, 0, len(raw))
	for _, entry := range raw {
		el, err := domain.ElementFromMap(entry)
		if err != nil {
			// Entries without an id cannot be cached or referenced.
			continue
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// nextLink extracts the rel="next" target from a Link header value.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		section := strings.Split(part, ";")
		if len(section) < 2 {
			continue
		}
		target := strings.Trim(strings.TrimSpace(section[0]), "<>")
		for _, param := range section[1:] {
			if strings.TrimSpace(param) == `rel="next"` {
				return target
			}
		}
	}
	return ""
}

// truncate cuts s down to at most limit bytes, backing up to the
// nearest rune boundary so multibyte characters are never split.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}

var _ ports.ModelClient = (*Client)(nil)
